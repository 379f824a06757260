package bundler

import (
	"os"
	"path/filepath"

	"github.com/rautio/cpbundle/internal/parser"
	"github.com/rautio/cpbundle/internal/syntax"
)

// runPhaseA walks every discovered crate's library root, recording
// every public use-import's alias into the Path Index. It never
// writes to the output sink.
func runPhaseA(c *Context) error {
	for _, name := range c.Crates.SortedNames() {
		dir := c.Crates[name]
		libPath := filepath.Join(dir, "src", "lib.rs")

		data, err := os.ReadFile(libPath)
		if os.IsNotExist(err) {
			c.logf("skipping crate %s: no library root at %s", name, libPath)
			continue
		} else if err != nil {
			return newError(KindIoError, libPath, err)
		}

		ast, err := c.parseFile(libPath, data)
		if err != nil {
			return err
		}
		if err := indexReexports(c, ast.Root, filepath.Join(dir, "src"), name); err != nil {
			ast.Close()
			return err
		}
		ast.Close()
	}
	return nil
}

// indexReexports implements the mutually-recursive visit_file /
// visit_mod pair for Phase A: modules recurse (loading declared-only
// ones through the Source-Tree Loader), public use-imports register
// their alias/target pair, everything else is ignored.
func indexReexports(c *Context, list *parser.Node, dir, importPath string) error {
	for _, it := range syntax.Items(list) {
		switch it.Kind {
		case syntax.KindMod:
			if syntax.IsTestModule(it) {
				continue
			}
			name, ok := it.ModuleName()
			if !ok {
				continue
			}
			childPath := importPath + "/" + name

			if body, inline := it.ModuleBody(); inline {
				if err := indexReexports(c, body, dir, childPath); err != nil {
					return err
				}
				continue
			}

			childDir, source, err := Load(dir, name)
			if err != nil {
				return err
			}
			ast, err := c.parseFile(filepath.Join(dir, name), source)
			if err != nil {
				return err
			}
			err = indexReexports(c, ast.Root, childDir, childPath)
			ast.Close()
			if err != nil {
				return err
			}

		case syntax.KindUse:
			if !it.Public {
				continue
			}
			for _, leaf := range syntax.ParseUseArgument(it.UseArgumentText()) {
				if len(leaf.Segments) == 0 {
					continue
				}
				alias := aliasKey(importPath, leaf)
				tgt := targetPath(importPath, leaf.Segments)
				c.Index.InsertAlias(alias, tgt)
			}
		}
	}
	return nil
}
