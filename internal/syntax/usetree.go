// Package syntax classifies and decomposes Rust items on top of the
// read-only parser.Node tree: flattening use-trees into leaf paths,
// re-wrapping leaves as standalone use-imports, and recognising test
// modules and public re-exports. Nothing here mutates a tree-sitter
// node; every transformation works by slicing or recombining text.
package syntax

import "strings"

// Leaf is one terminal of a use-tree: a plain path, a rename ("as"),
// or a glob. Segments never includes the alias.
type Leaf struct {
	Segments []string
	Alias    string
	Wildcard bool
}

// ParseUseArgument decomposes the text between `use` and `;` of a
// use-declaration (everything after an optional leading visibility
// modifier) into its leaf paths. This is a hand-rolled recursive
// descent over the raw text rather than a walk of the tree-sitter
// use-tree node types, grounded in the brace-aware Rust text parsing
// the retrieval pack's lopper rust adapter and rpg rust_analyzer use
// for the same job (use-clause splitting, manifest scanning) without
// a full grammar.
func ParseUseArgument(text string) []Leaf {
	return parseUseTree(strings.TrimSpace(text), nil)
}

func parseUseTree(text string, prefix []string) []Leaf {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if text == "*" {
		return []Leaf{{Segments: clonePrefix(prefix), Wildcard: true}}
	}

	if idx, ok := indexTopLevelAs(text); ok {
		base := strings.TrimSpace(text[:idx])
		alias := strings.TrimSpace(text[idx+len(" as "):])
		if base == "self" {
			return []Leaf{{Segments: clonePrefix(prefix), Alias: alias}}
		}
		leaves := parseUseTree(base, prefix)
		for i := range leaves {
			leaves[i].Alias = alias
		}
		return leaves
	}

	if idx, ok := indexTopLevel(text, "::"); ok {
		head := strings.TrimSpace(text[:idx])
		rest := strings.TrimSpace(text[idx+2:])
		nextPrefix := appendSeg(prefix, head)

		if strings.HasPrefix(rest, "{") && strings.HasSuffix(rest, "}") {
			inner := rest[1 : len(rest)-1]
			var leaves []Leaf
			for _, part := range splitTopLevel(inner, ',') {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				leaves = append(leaves, parseUseTree(part, nextPrefix)...)
			}
			return leaves
		}
		return parseUseTree(rest, nextPrefix)
	}

	if text == "self" {
		return []Leaf{{Segments: clonePrefix(prefix)}}
	}
	return []Leaf{{Segments: appendSeg(prefix, text)}}
}

// RenderSingleUse re-wraps one leaf as a standalone use-import, the
// operation flatten_group performs per leaf of a grouped import.
func RenderSingleUse(leaf Leaf, public bool) string {
	var b strings.Builder
	if public {
		b.WriteString("pub ")
	}
	b.WriteString("use ")
	b.WriteString(strings.Join(leaf.Segments, "::"))
	if leaf.Wildcard {
		if len(leaf.Segments) > 0 {
			b.WriteString("::")
		}
		b.WriteString("*")
	}
	if leaf.Alias != "" {
		b.WriteString(" as ")
		b.WriteString(leaf.Alias)
	}
	b.WriteString(";\n")
	return b.String()
}

func clonePrefix(prefix []string) []string {
	if len(prefix) == 0 {
		return nil
	}
	out := make([]string, len(prefix))
	copy(out, prefix)
	return out
}

func appendSeg(prefix []string, seg string) []string {
	out := make([]string, 0, len(prefix)+1)
	out = append(out, prefix...)
	out = append(out, seg)
	return out
}

// indexTopLevel finds the first occurrence of sep not nested inside
// braces, returning false if sep never appears outside a group.
func indexTopLevel(text, sep string) (int, bool) {
	depth := 0
	for i := 0; i+len(sep) <= len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 && text[i:i+len(sep)] == sep {
			return i, true
		}
	}
	return 0, false
}

// indexTopLevelAs finds a top-level " as " rename keyword, which must
// sit outside any group and cannot be the first token.
func indexTopLevelAs(text string) (int, bool) {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 && i > 0 && strings.HasPrefix(text[i:], " as ") {
			return i, true
		}
	}
	return 0, false
}

// splitTopLevel splits on sep, ignoring occurrences nested inside
// braces. A trailing separator (Rust group lists tolerate a trailing
// comma) leaves an empty last fragment, which the caller skips.
func splitTopLevel(text string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, text[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, text[start:])
	return parts
}
