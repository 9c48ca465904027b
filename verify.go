package main

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	treesitterc "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// SyntaxError lists where the C grammar failed to parse generated code.
type SyntaxError struct {
	Issues []string
}

func (e *SyntaxError) Error() string {
	if len(e.Issues) == 0 {
		return "verify: generated C has syntax errors"
	}
	var b strings.Builder
	b.WriteString("verify: generated C has syntax errors:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// VerifyC parses src as C. It is a diagnostic: an unbalanced Brainfuck loop
// shows up here as a missing or unexpected brace.
func VerifyC(src []byte) error {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(sitter.NewLanguage(treesitterc.Language())); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return fmt.Errorf("verify: parser returned no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("verify: empty syntax tree")
	}
	if !root.HasError() {
		return nil
	}

	syntaxErr := &SyntaxError{}
	collectSyntaxIssues(root, syntaxErr)
	return syntaxErr
}

func collectSyntaxIssues(node *sitter.Node, syntaxErr *SyntaxError) {
	pos := node.StartPosition()
	switch {
	case node.IsMissing():
		syntaxErr.Issues = append(syntaxErr.Issues, fmt.Sprintf("%d:%d: missing %q", pos.Row+1, pos.Column+1, node.Kind()))
		return
	case node.IsError():
		syntaxErr.Issues = append(syntaxErr.Issues, fmt.Sprintf("%d:%d: unexpected input", pos.Row+1, pos.Column+1))
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && (child.HasError() || child.IsMissing()) {
			collectSyntaxIssues(child, syntaxErr)
		}
	}
}
