package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// cognitiveComplexity computes the nesting-weighted control-flow score
// for the whole tree. Each control-flow node adds 1 plus the current
// nesting depth. Depth is threaded down the recursion rather than held
// in shared state, so sibling subtrees never observe each other's
// depth adjustments.
func cognitiveComplexity(root *sitter.Node) int {
	return walkCognitive(root, 0)
}

func walkCognitive(node *sitter.Node, depth int) int {
	kind := node.Type()
	role := classify(kind)

	total := 0
	if role == RoleControlFlow {
		total += 1 + depth
	}

	for i := range int(node.ChildCount()) {
		child := node.Child(i)
		// Indented bodies increment nesting, except the body of a
		// function, class, or module: those establish scope, not
		// nesting, and code inside them starts back at depth zero.
		if child.Type() == blockKind && role != RoleEncapsulation {
			total += walkCognitive(child, depth+1)
		} else {
			total += walkCognitive(child, depth)
		}
	}

	return total
}
