package bundler

import (
	"os"
	"strings"

	"github.com/rautio/cpbundle/internal/syntax"
)

// runPhaseB parses the problem entrypoint, records every top-level
// use-import rooted at a known crate into the Path Index, then
// pretty-prints the entrypoint AST unchanged as the first segment of
// the output.
func runPhaseB(c *Context) error {
	data, err := os.ReadFile(c.SourcePath)
	if os.IsNotExist(err) {
		return newError(KindPathNotFound, c.SourcePath, nil)
	} else if err != nil {
		return newError(KindIoError, c.SourcePath, err)
	}

	ast, err := c.parseFile(c.SourcePath, data)
	if err != nil {
		return err
	}
	defer ast.Close()

	for _, it := range syntax.Items(ast.Root) {
		if it.Kind != syntax.KindUse {
			continue
		}
		for _, leaf := range syntax.ParseUseArgument(it.UseArgumentText()) {
			if len(leaf.Segments) == 0 {
				continue
			}
			if _, known := c.Crates[leaf.Segments[0]]; !known {
				continue
			}
			c.Index.InsertPath(strings.Join(leaf.Segments, "/"))
		}
	}

	c.emit(ast.Root.Text())
	c.emit("\n")
	return nil
}
