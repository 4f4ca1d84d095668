package query

// QueryNode is one node of a boolean query expression tree, keyed by the
// wire vocabulary of whichever dialect it is written in. The alias keeps
// nodes interchangeable with decoded JSON (map[string]any) so trees can
// flow to and from the execution API without conversion.
type QueryNode = map[string]any

// Canonical-dialect compound keys. These are a wire-format contract with
// the search execution engine and must not be renamed.
const (
	// KeyConjuncts holds a list of child nodes combined with AND semantics.
	KeyConjuncts = "conjuncts"

	// KeyDisjuncts holds a list of child nodes combined with OR semantics.
	// A sibling "min" key may carry the minimum number of disjuncts that
	// must match.
	KeyDisjuncts = "disjuncts"

	// KeyMust wraps a sub-node whose constraints are required.
	KeyMust = "must"

	// KeyShould wraps a sub-node whose constraints are optional but scored.
	KeyShould = "should"

	// KeyMustNot wraps a sub-node whose constraints exclude matches. By
	// engine convention the wrapped node is a disjunction.
	KeyMustNot = "must_not"

	// KeyMin is the optional minimum-match count carried by a disjunction.
	KeyMin = "min"
)

// Simplified-dialect compound keys, as emitted by the query-generation
// agent. Canonicalize eliminates all of them.
const (
	keyAnd = "and"
	keyOr  = "or"
	keyNot = "not"
)

// DefaultMaxDepth is the recursion ceiling applied by Canonicalize.
// Nodes nested deeper than this degrade to empty objects. The bound caps
// worst-case stack growth on adversarial or runaway agent output; hitting
// it is not an error.
const DefaultMaxDepth = 50
