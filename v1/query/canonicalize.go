package query

// nodeShape tags the compound form governing a node, so the rewrite rules
// below are an exhaustive switch instead of scattered key probes. The
// wire stays flat-keyed JSON; the tagged form exists only inside one
// canonicalization step.
type nodeShape int

const (
	// shapePassthrough - no simplified compound key; leaf attributes and
	// already-canonical substructure.
	shapePassthrough nodeShape = iota
	shapeAnd
	shapeOr
	shapeNot
)

// decomposed is a simplified-dialect node split into its governing
// compound part and the remaining keys, which are preserved verbatim.
type decomposed struct {
	shape    nodeShape
	children []any          // shapeAnd, shapeOr
	inner    any            // shapeNot
	rest     QueryNode      // every key except the matched compound key
	node     map[string]any // original node, for shapePassthrough
}

// decompose classifies a node by the first matching compound key, in the
// fixed precedence and > or > not. A node carrying both a compound key
// and leaf attributes keeps the extra keys in rest; the canonical grammar
// does not officially sanction such hybrids, but they are preserved
// rather than repaired.
func decompose(m map[string]any) decomposed {
	if v, ok := m[keyAnd]; ok {
		children, _ := v.([]any)
		return decomposed{shape: shapeAnd, children: children, rest: restOf(m, keyAnd)}
	}
	if v, ok := m[keyOr]; ok {
		children, _ := v.([]any)
		return decomposed{shape: shapeOr, children: children, rest: restOf(m, keyOr)}
	}
	if v, ok := m[keyNot]; ok {
		return decomposed{shape: shapeNot, inner: v, rest: restOf(m, keyNot)}
	}
	return decomposed{shape: shapePassthrough, node: m}
}

// restOf copies every key of m except the matched compound key.
func restOf(m map[string]any, except string) QueryNode {
	rest := make(QueryNode, len(m)-1)
	for k, v := range m {
		if k != except {
			rest[k] = v
		}
	}
	return rest
}

// Canonicalize rewrites node into the canonical dialect, recursively.
// The returned tree contains no "and"/"or"/"not" keys; every compound key
// is one of "conjuncts", "disjuncts", "must", "should", "must_not".
//
// Any input shape is accepted. Non-object values (nil, arrays, scalars)
// normalize to an empty node, as do nodes nested beyond DefaultMaxDepth.
// Canonicalize never panics and never returns nil.
func Canonicalize(node any) QueryNode {
	return canonicalize(node, 0, DefaultMaxDepth)
}

// CanonicalizeWithDepth is Canonicalize with a caller-chosen recursion
// ceiling, for callers that face deeper (or enforce shallower) trees.
func CanonicalizeWithDepth(node any, maxDepth int) QueryNode {
	return canonicalize(node, 0, maxDepth)
}

func canonicalize(node any, depth, maxDepth int) QueryNode {
	if depth >= maxDepth {
		return QueryNode{}
	}

	m, ok := node.(map[string]any)
	if !ok {
		return QueryNode{}
	}

	d := decompose(m)
	switch d.shape {
	case shapeAnd:
		out := d.rest
		out[KeyConjuncts] = canonicalizeList(d.children, depth+1, maxDepth)
		return out

	case shapeOr:
		out := d.rest
		out[KeyDisjuncts] = canonicalizeList(d.children, depth+1, maxDepth)
		return out

	case shapeNot:
		// Negation is expressed as a one-element disjunction to exclude:
		// the engine expects must_not to wrap a disjunction.
		out := d.rest
		out[KeyMustNot] = QueryNode{
			KeyDisjuncts: []any{canonicalize(d.inner, depth+1, maxDepth)},
		}
		return out

	default:
		return canonicalizeCanonical(d.node, depth, maxDepth)
	}
}

// canonicalizeCanonical walks a node with no simplified keys, rewriting
// the children of recognized canonical compound keys in place. All other
// keys are copied unchanged; substructure below unrecognized keys is not
// descended into.
func canonicalizeCanonical(m map[string]any, depth, maxDepth int) QueryNode {
	out := make(QueryNode, len(m))
	for k, v := range m {
		switch k {
		case KeyConjuncts, KeyDisjuncts:
			if list, ok := v.([]any); ok {
				out[k] = canonicalizeList(list, depth+1, maxDepth)
			} else {
				out[k] = v
			}
		case KeyMust, KeyShould, KeyMustNot:
			out[k] = canonicalize(v, depth+1, maxDepth)
		default:
			out[k] = v
		}
	}
	return out
}

// canonicalizeList canonicalizes every element of a child list. A nil or
// non-list value yields an empty child list rather than an error.
func canonicalizeList(children []any, depth, maxDepth int) []any {
	out := make([]any, 0, len(children))
	for _, child := range children {
		out = append(out, canonicalize(child, depth, maxDepth))
	}
	return out
}
