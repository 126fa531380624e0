package analyzer

// Role classifies a tree-sitter node kind for metric collection. The
// classification is resolved once into a lookup table at package init
// rather than compared as strings throughout the walks.
type Role uint8

const (
	RoleNone Role = iota
	RoleControlFlow
	RoleOperator
	RoleOperand
	RoleEncapsulation
)

// blockKind is the node kind for an indented statement body. Descending
// into a block increments cognitive nesting depth unless its parent is
// an encapsulation construct.
const blockKind = "block"

// controlFlowKinds are the constructs that contribute to both the
// cyclomatic proxy and cognitive complexity. Alternate branches
// (else/elif) count at the depth of their opening clause.
var controlFlowKinds = []string{
	"if_statement",
	"for_statement",
	"while_statement",
	"try_statement",
	"except_clause",
	"with_statement",
	"match_statement",
	"else_clause",
	"elif_clause",
}

// operatorKinds are the node kinds counted as Halstead operators.
var operatorKinds = []string{
	"binary_operator",
	"unary_operator",
	"comparison_operator",
	"boolean_operator",
	"augmented_assignment",
	"assignment",
	"not_operator",
}

// operandKinds are identifier and literal leaf kinds counted as
// Halstead operands, keyed by token text.
var operandKinds = []string{
	"identifier",
	"integer",
	"float",
	"string",
	"true",
	"false",
	"none",
}

// encapsulationKinds are the scope boundaries whose bodies do not add
// cognitive nesting: complexity starts at zero inside every function
// and class, regardless of lexical nesting.
var encapsulationKinds = []string{
	"function_definition",
	"class_definition",
	"module",
}

// operatorKeywords are reserved words counted as Halstead operators
// when they appear as bare leaf tokens.
var operatorKeywords = makeSet([]string{
	"if", "else", "elif", "for", "while", "try", "except", "finally",
	"with", "return", "yield", "raise", "break", "continue", "pass",
	"import", "from", "as", "def", "class", "lambda", "and", "or", "not",
	"in", "is", "await", "async", "match", "case",
})

var roleByKind = buildRoleTable()

func buildRoleTable() map[string]Role {
	table := make(map[string]Role)
	for _, k := range controlFlowKinds {
		table[k] = RoleControlFlow
	}
	for _, k := range operatorKinds {
		table[k] = RoleOperator
	}
	for _, k := range operandKinds {
		table[k] = RoleOperand
	}
	for _, k := range encapsulationKinds {
		table[k] = RoleEncapsulation
	}
	return table
}

// classify returns the role for a node kind, RoleNone if unclassified.
func classify(kind string) Role {
	return roleByKind[kind]
}

// makeSet converts a slice to a map for O(1) lookups.
func makeSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
