package bundler

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rautio/cpbundle/internal/parser"
	"github.com/rautio/cpbundle/internal/syntax"
)

// crateRewrite matches a `crate::` path prefix only where `crate`
// starts a word, so a path such as `mycrate::x` is left alone. It is
// applied once to each crate's text; a second pass over already
// rewritten text would match `crate::` again and insert the crate
// name a second time.
var crateRewrite = regexp.MustCompile(`\bcrate::`)

// runPhaseC expands every crate whose root path was marked used in
// the Path Index: it reads the library root, recursively transforms
// surviving items, wraps the result in a named module, rewrites
// crate:: prefixes, and appends the text to the output sink. Crates
// are processed in sorted (deterministic) order.
func runPhaseC(c *Context) error {
	for _, name := range c.Crates.SortedNames() {
		if !c.Index.ContainsPath(name) {
			c.logf("ignoring unused crate %s", name)
			continue
		}

		dir := c.Crates[name]
		libPath := filepath.Join(dir, "src", "lib.rs")

		data, err := os.ReadFile(libPath)
		if os.IsNotExist(err) {
			c.logf("skipping crate %s: no library root at %s", name, libPath)
			continue
		} else if err != nil {
			return newError(KindIoError, libPath, err)
		}

		c.logf("processing crate %s", name)

		ast, err := c.parseFile(libPath, data)
		if err != nil {
			return err
		}
		body, err := transformList(c, ast.Root, filepath.Join(dir, "src"), name)
		ast.Close()
		if err != nil {
			return err
		}

		wrapped := wrapCrate(name, body)
		rewritten := crateRewrite.ReplaceAllString(wrapped, "crate::"+name+"::")
		c.emit(rewritten)
		c.emit("\n")
	}
	return nil
}

// wrapCrate installs the transformed items as the body of a single
// inlined module named after the crate, carrying the three blanket
// allow attributes Phase C always adds.
func wrapCrate(name, body string) string {
	var b strings.Builder
	b.WriteString("#[allow(dead_code)]\n#[allow(unused_imports)]\n#[allow(unused_macros)]\nmod ")
	b.WriteString(name)
	b.WriteString(" {\n")
	b.WriteString(indent(body))
	b.WriteString("}\n")
	return b.String()
}

// transformList implements the mutating visitor of spec §4.7: item
// filtering first, then recursion into surviving items. It returns
// the rendered text of every surviving item, concatenated.
func transformList(c *Context, list *parser.Node, dir, importPath string) (string, error) {
	var out strings.Builder

	for _, it := range syntax.Items(list) {
		switch it.Kind {
		case syntax.KindMod:
			name, ok := it.ModuleName()
			if !ok {
				continue
			}
			childPath := importPath + "/" + name
			if syntax.IsTestModule(it) || !c.Index.ContainsPath(childPath) {
				continue
			}

			var bodyText string
			var err error
			if body, inline := it.ModuleBody(); inline {
				bodyText, err = transformList(c, body, dir, childPath)
			} else {
				var childDir string
				var source []byte
				childDir, source, err = Load(dir, name)
				if err == nil {
					var ast *parser.AST
					ast, err = c.parseFile(filepath.Join(dir, name), source)
					if err == nil {
						bodyText, err = transformList(c, ast.Root, childDir, childPath)
						ast.Close()
					}
				}
			}
			if err != nil {
				return "", err
			}

			out.WriteString(syntax.RenderAttrs(syntax.StripAttrs(it.Attrs)))
			if it.Public {
				out.WriteString("pub mod ")
			} else {
				out.WriteString("mod ")
			}
			out.WriteString(name)
			out.WriteString(" {\n")
			out.WriteString(indent(bodyText))
			out.WriteString("}\n")

		case syntax.KindUse:
			if !it.Public {
				out.WriteString(it.Node.Text())
				out.WriteString("\n")
				continue
			}
			for _, leaf := range syntax.ParseUseArgument(it.UseArgumentText()) {
				if c.Index.IsAliasUsed(aliasKey(importPath, leaf)) {
					out.WriteString(syntax.RenderSingleUse(leaf, true))
				}
			}

		default:
			out.WriteString(syntax.RenderAttrs(syntax.StripAttrs(it.Attrs)))
			out.WriteString(it.Node.Text())
			out.WriteString("\n")
		}
	}

	return out.String(), nil
}

// indent prefixes every non-empty line of text with one tab, for the
// module-wrapping nesting Phase C performs at each level.
func indent(text string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = "\t" + line
	}
	if text == "" {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
