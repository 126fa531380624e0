package analyzer

import (
	"strings"

	"github.com/augurhq/augur/pkg/parser"
	sitter "github.com/smacker/go-tree-sitter"
)

// countLinesOfCode counts non-blank lines that are not comment-only.
// Floored at 1; callers handle genuinely empty input before this.
func countLinesOfCode(source string) int {
	loc := 0
	for _, line := range strings.Split(source, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped != "" && !strings.HasPrefix(stripped, "#") {
			loc++
		}
	}
	if loc < 1 {
		loc = 1
	}
	return loc
}

// moduleDocstring extracts the module-level docstring: the first
// top-level statement, when it is an expression statement wrapping a
// string literal. Comment tokens are skipped without counting as
// "first". Any other first statement means there is no docstring, and
// nothing after the first expression statement is considered.
func moduleDocstring(root *sitter.Node, source []byte) *string {
	for i := range int(root.ChildCount()) {
		child := root.Child(i)
		switch child.Type() {
		case "comment":
			continue
		case "expression_statement":
			for j := range int(child.ChildCount()) {
				sub := child.Child(j)
				if sub.Type() == "string" {
					if text := parser.GetNodeText(sub, source); text != "" {
						s := stripQuotes(text)
						return &s
					}
				}
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

// stripQuotes removes one matching pair of enclosing quote delimiters.
// Triple quotes must be checked before single-character quotes: a
// naive single-quote strip on a triple-quoted string corrupts the text.
func stripQuotes(text string) string {
	switch {
	case len(text) >= 6 && strings.HasPrefix(text, `"""`) && strings.HasSuffix(text, `"""`):
		return strings.TrimSpace(text[3 : len(text)-3])
	case len(text) >= 6 && strings.HasPrefix(text, "'''") && strings.HasSuffix(text, "'''"):
		return strings.TrimSpace(text[3 : len(text)-3])
	case len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`):
		return strings.TrimSpace(text[1 : len(text)-1])
	case len(text) >= 2 && strings.HasPrefix(text, "'") && strings.HasSuffix(text, "'"):
		return strings.TrimSpace(text[1 : len(text)-1])
	}
	return strings.TrimSpace(text)
}
