// Package verify parses JavaScript source with the tree-sitter grammar and
// reports regions the parser could not make sense of. It is a safety net for
// the text-level rewriter, not part of the matching itself.
package verify

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Issue points at an unparseable region of a document, 1-based.
type Issue struct {
	Line   uint32
	Column uint32
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// Checker parses JavaScript source and reports syntax errors.
type Checker struct{}

// New creates a Checker
func New() *Checker {
	return &Checker{}
}

// Verify parses source with the JavaScript grammar and returns an error
// listing every region the parser flagged as invalid or incomplete.
func (c *Checker) Verify(ctx context.Context, source []byte) error {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}
	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	issues := collectIssues(root)
	locations := make([]string, 0, len(issues))
	for _, issue := range issues {
		locations = append(locations, issue.String())
	}
	return fmt.Errorf("document has %v syntax error(s) at %v", len(issues), strings.Join(locations, ", "))
}

// collectIssues walks only subtrees that carry errors and records the
// outermost ERROR or missing node of each.
func collectIssues(node *sitter.Node) []Issue {
	var issues []Issue
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "ERROR" || n.IsMissing() {
			point := n.StartPoint()
			issues = append(issues, Issue{Line: point.Row + 1, Column: point.Column + 1})
			return
		}
		if !n.HasError() {
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(node)
	return issues
}
