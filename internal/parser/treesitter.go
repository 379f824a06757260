package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// TreeSitterParser implements Parser using tree-sitter's Rust grammar.
type TreeSitterParser struct {
	parser   *sitter.Parser
	language *sitter.Language
}

// NewParser creates a tree-sitter parser configured for Rust.
func NewParser() (*TreeSitterParser, error) {
	p := sitter.NewParser()
	lang := rust.GetLanguage()

	p.SetLanguage(lang)

	return &TreeSitterParser{
		parser:   p,
		language: lang,
	}, nil
}

// ParseFile parses a Rust source file and returns its AST.
func (p *TreeSitterParser) ParseFile(filePath string, content []byte) (*AST, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("parse %s: tree-sitter returned no tree", filePath)
	}

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse %s: no root node", filePath)
	}

	if root.HasError() {
		return nil, fmt.Errorf("parse %s: syntax error", filePath)
	}

	return &AST{
		Root:     wrapNode(root, content),
		FilePath: filePath,
		Source:   content,
		tree:     tree,
	}, nil
}

// Close releases parser resources.
func (p *TreeSitterParser) Close() error {
	p.parser.Close()
	return nil
}

// Close releases the underlying tree-sitter tree.
func (ast *AST) Close() {
	if ast.tree != nil {
		ast.tree.Close()
		ast.tree = nil
	}
}
