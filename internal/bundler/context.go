package bundler

import (
	"bytes"
	"log"

	"github.com/rautio/cpbundle/internal/parser"
)

// Context is the Bundler Context from spec §3: the single record
// shared by exclusive reference across Phase A, B and C. It owns the
// Path Index, the parser, and the append-only output sink.
type Context struct {
	ProblemID   string
	Crates      CrateIndex
	Index       *PathIndex
	ProjectRoot string
	SourcePath  string
	DestPath    string

	sink   bytes.Buffer
	parser *parser.TreeSitterParser
	Logger *log.Logger
}

// NewContext builds a fresh Bundler Context. The Path Index starts
// empty and is populated by the phases that follow.
func NewContext(problemID, projectRoot, sourcePath, destPath string, crates CrateIndex, logger *log.Logger) (*Context, error) {
	p, err := parser.NewParser()
	if err != nil {
		return nil, newError(KindInternal, "tree-sitter init", err)
	}
	return &Context{
		ProblemID:   problemID,
		Crates:      crates,
		Index:       NewPathIndex(),
		ProjectRoot: projectRoot,
		SourcePath:  sourcePath,
		DestPath:    destPath,
		parser:      p,
		Logger:      logger,
	}, nil
}

// parseFile reads and parses one Rust source file, wrapping any
// failure as a contextual bundler.Error.
func (c *Context) parseFile(path string, data []byte) (*parser.AST, error) {
	ast, err := c.parser.ParseFile(path, data)
	if err != nil {
		return nil, newError(KindParseError, path, err)
	}
	return ast, nil
}

// emit appends text to the output sink.
func (c *Context) emit(text string) {
	c.sink.WriteString(text)
}

// Output returns the accumulated sink contents. Valid only after a
// successful Driver run.
func (c *Context) Output() []byte {
	return c.sink.Bytes()
}

// logf writes an informational progress line if a Logger was
// configured; it is a no-op otherwise (tests construct bare Contexts).
func (c *Context) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

// Close releases the underlying parser.
func (c *Context) Close() {
	if c.parser != nil {
		c.parser.Close()
	}
}
