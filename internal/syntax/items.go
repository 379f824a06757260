package syntax

import (
	"strings"

	"github.com/rautio/cpbundle/internal/parser"
)

// Kind classifies a top-level or module-level item for the purposes
// of Phase A/B/C traversal.
type Kind int

const (
	KindOther Kind = iota
	KindMod
	KindUse
)

// Item pairs a parsed node with the leading attributes and comments
// that precede it in source order, plus its derived classification.
// attribute_item nodes and the item they decorate are always
// siblings in the grammar, never parent/child, so this pairing has
// to be reconstructed by scanning a list in order.
type Item struct {
	Node    *parser.Node
	Attrs   []*parser.Node // attribute_item siblings immediately preceding Node
	Trivia  []*parser.Node // line_comment/block_comment siblings immediately preceding Node
	Public  bool
	Kind    Kind
}

// Items walks the named children of a file or declaration_list,
// pairing each real item with the attributes/comments leading it.
func Items(list *parser.Node) []*Item {
	if list == nil {
		return nil
	}

	var items []*Item
	var pendingAttrs []*parser.Node
	var pendingTrivia []*parser.Node

	for _, child := range list.NamedChildren() {
		switch child.Type() {
		case "attribute_item":
			pendingAttrs = append(pendingAttrs, child)
			continue
		case "line_comment", "block_comment":
			pendingTrivia = append(pendingTrivia, child)
			continue
		}

		it := &Item{
			Node:   child,
			Attrs:  pendingAttrs,
			Trivia: pendingTrivia,
		}
		pendingAttrs = nil
		pendingTrivia = nil

		it.Public = hasPubVisibility(child)
		switch child.Type() {
		case "mod_item":
			it.Kind = KindMod
		case "use_declaration":
			it.Kind = KindUse
		default:
			it.Kind = KindOther
		}
		items = append(items, it)
	}
	return items
}

func hasPubVisibility(n *parser.Node) bool {
	children := n.NamedChildren()
	if len(children) == 0 {
		return false
	}
	first := children[0]
	return first.Type() == "visibility_modifier" && strings.TrimSpace(first.Text()) == "pub"
}

// ModuleName returns a mod_item's identifier, skipping any leading
// visibility modifier.
func (it *Item) ModuleName() (string, bool) {
	for _, c := range it.Node.NamedChildren() {
		if c.Type() == "identifier" {
			return c.Text(), true
		}
	}
	return "", false
}

// ModuleBody returns the mod_item's inline declaration_list, if it
// has one. Its absence means the module is declared-only and must be
// resolved through the Source-Tree Loader.
func (it *Item) ModuleBody() (*parser.Node, bool) {
	for _, c := range it.Node.NamedChildren() {
		if c.Type() == "declaration_list" {
			return c, true
		}
	}
	return nil, false
}

// UseArgumentText returns the raw text of a use_declaration's
// argument, i.e. everything between `use` and the trailing `;`,
// skipping any leading visibility modifier.
func (it *Item) UseArgumentText() string {
	for _, c := range it.Node.NamedChildren() {
		if c.Type() == "visibility_modifier" {
			continue
		}
		return c.Text()
	}
	return ""
}

// IsTestModule reports whether a mod_item's leading attributes carry
// exactly #[cfg(test)].
func IsTestModule(it *Item) bool {
	for _, a := range it.Attrs {
		if attrInner(a.Text()) == "cfg(test)" {
			return true
		}
	}
	return false
}

// attrInner strips the #[ ... ] (or #! variant) wrapper from an
// attribute_item's raw text and trims surrounding whitespace.
func attrInner(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "#")
	text = strings.TrimPrefix(text, "!")
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	return strings.TrimSpace(text)
}

// attrTopSegment returns the identifier immediately following the
// attribute's opening bracket, e.g. "cfg" for "#[cfg(test)]" or "doc"
// for "#[doc = \"...\"]".
func attrTopSegment(text string) string {
	inner := attrInner(text)
	end := len(inner)
	for i, r := range inner {
		if r == '(' || r == '=' || r == ' ' || r == '[' {
			end = i
			break
		}
	}
	return inner[:end]
}

// cfg_attr is stripped alongside the four categories §4.7 names
// (doc/allow/cfg/warn) since it's the same conditional-compilation
// concern spelled with an attached attribute list; see DESIGN.md.
var strippedAttrSegments = map[string]bool{
	"doc":      true,
	"allow":    true,
	"cfg":      true,
	"cfg_attr": true,
	"warn":     true,
}

// StripAttrs filters a leading-attribute list down to the ones that
// survive Phase C's attribute stripping: everything except
// documentation, allow, conditional-compilation and warning
// attributes. Leading comments are always dropped by the caller
// separately; they carry no information a judge needs.
func StripAttrs(attrs []*parser.Node) []*parser.Node {
	var kept []*parser.Node
	for _, a := range attrs {
		if strippedAttrSegments[attrTopSegment(a.Text())] {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// RenderAttrs renders a surviving attribute list back to source text,
// one attribute per line.
func RenderAttrs(attrs []*parser.Node) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(a.Text())
		b.WriteString("\n")
	}
	return b.String()
}
