// Package pysyntax reports Python syntax errors in routing-configuration
// files. It only diagnoses; route resolution never consults the syntax tree.
package pysyntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Problem locates the first syntax error in a file. Line and Column are 1-based.
type Problem struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Message string `json:"message" yaml:"message"`
}

// Checker wraps a tree-sitter parser configured for Python. A Checker is not
// safe for concurrent use.
type Checker struct {
	parser *sitter.Parser
}

func NewChecker() *Checker {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Checker{parser: p}
}

// Check parses content and returns the first syntax problem, or nil when the
// file parses cleanly.
func (c *Checker) Check(ctx context.Context, filename string, content []byte) (*Problem, error) {
	tree, err := c.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil, nil
	}

	node := firstErrorNode(root)
	if node == nil {
		node = root
	}
	message := "syntax error"
	if node.IsMissing() {
		message = fmt.Sprintf("missing %s", node.Type())
	}
	point := node.StartPoint()
	return &Problem{
		File:    filename,
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
		Message: message,
	}, nil
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}
