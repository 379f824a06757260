// Package parser wraps tree-sitter's Rust grammar behind the same thin
// Node facade the rest of the toolchain expects: Type, Text, Children,
// Walk. The bundler never mutates a parsed tree — item pruning and
// rewriting happen by slicing source text at node boundaries (see
// internal/syntax) — so AST here is a read-only view of one file.
package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Parser parses Rust source text into an AST.
type Parser interface {
	ParseFile(filePath string, content []byte) (*AST, error)
	Close() error
}

// AST represents one parsed Rust source file.
type AST struct {
	Root     *Node
	FilePath string
	Source   []byte
	tree     *sitter.Tree // kept for cleanup
}

// Node wraps a tree-sitter node together with the source bytes needed
// to recover its text.
type Node struct {
	tsNode  *sitter.Node
	content []byte
}
