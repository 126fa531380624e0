package analyzer

import (
	"math"

	"github.com/augurhq/augur/pkg/parser"
	sitter "github.com/smacker/go-tree-sitter"
)

// halsteadCounts accumulates operator and operand occurrences for one
// traversal. Operators are keyed by node kind (or keyword text for bare
// keyword tokens); operands are keyed by token text, so repeated uses
// of the same identifier collapse into one distinct operand.
type halsteadCounts struct {
	operators map[string]int
	operands  map[string]int
}

// halsteadVolume computes (N1+N2) * log2(n1+n2) over a single
// traversal of the tree. Returns 0 when no operators or operands are
// found.
func halsteadVolume(root *sitter.Node, source []byte) float64 {
	counts := halsteadCounts{
		operators: make(map[string]int),
		operands:  make(map[string]int),
	}
	counts.walk(root, source)

	vocabulary := len(counts.operators) + len(counts.operands)
	if vocabulary == 0 {
		return 0
	}

	length := 0
	for _, n := range counts.operators {
		length += n
	}
	for _, n := range counts.operands {
		length += n
	}

	return float64(length) * math.Log2(float64(vocabulary))
}

func (h *halsteadCounts) walk(node *sitter.Node, source []byte) {
	if node == nil {
		return
	}

	kind := node.Type()
	switch {
	case classify(kind) == RoleOperator:
		h.operators[kind]++
	case node.ChildCount() == 0 && operatorKeywords[kind]:
		// Bare keyword token: anonymous leaves carry their text as the
		// node kind.
		h.operators[kind]++
	}

	if classify(kind) == RoleOperand {
		text := parser.GetNodeText(node, source)
		if text == "" {
			text = kind
		}
		h.operands[text]++
	}

	for i := range int(node.ChildCount()) {
		h.walk(node.Child(i), source)
	}
}
