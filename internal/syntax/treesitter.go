// Package syntax provides the concrete syntax and forbidden-pattern
// checkers consumed by the validator. Syntax checking uses tree-sitter;
// pattern checking is a tagged table of forbidden constructs.
package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"

	"uismith/internal/logging"
)

// TreeChecker reports well-formedness of generated fragments using
// tree-sitter. ERROR and MISSING nodes become error strings with line
// positions.
type TreeChecker struct {
	parser *sitter.Parser
}

// NewTreeChecker creates a checker for the given framework dialect.
// TSX covers react fragments; javascript covers everything else the
// generator emits (vue SFC scripts, plain web-component usage).
func NewTreeChecker(framework string) *TreeChecker {
	parser := sitter.NewParser()
	switch framework {
	case "react":
		parser.SetLanguage(tsx.GetLanguage())
	default:
		parser.SetLanguage(javascript.GetLanguage())
	}
	return &TreeChecker{parser: parser}
}

// Close releases parser resources.
func (c *TreeChecker) Close() {
	c.parser.Close()
}

// CheckSyntax parses the code and collects every syntax error.
func (c *TreeChecker) CheckSyntax(code string) (bool, []string) {
	tree, err := c.parser.ParseCtx(context.Background(), nil, []byte(code))
	if err != nil {
		return false, []string{fmt.Sprintf("parse failed: %v", err)}
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return true, nil
	}

	var errs []string
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.IsError() {
			errs = append(errs, fmt.Sprintf("line %d: unexpected syntax near %q",
				n.StartPoint().Row+1, clip(n.Content([]byte(code)), 40)))
			return
		}
		if n.IsMissing() {
			errs = append(errs, fmt.Sprintf("line %d: missing %s",
				n.StartPoint().Row+1, n.Type()))
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	if len(errs) == 0 {
		// HasError was set but no ERROR/MISSING node surfaced in the walk.
		errs = append(errs, "line 1: malformed fragment")
	}
	logging.ValidateDebug("syntax check found %d errors", len(errs))
	return false, errs
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
