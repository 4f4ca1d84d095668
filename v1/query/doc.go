// Package query implements the boolean query algebra used by the search
// execution engine, together with a canonicalizer that rewrites the
// simplified query grammar produced by the query-generation agent into
// that algebra.
//
// # Two dialects, one tree
//
// A query is an untyped tree of JSON objects (QueryNode). Two key
// vocabularies exist over the same conceptual tree:
//
//   - Simplified dialect: "and" (list), "or" (list), "not" (single node).
//     This is what the LLM-backed query agent emits.
//   - Canonical dialect: "conjuncts" (AND), "disjuncts" (OR, with an
//     optional minimum-match count), and "must"/"should"/"must_not"
//     wrappers. This is the wire format the execution engine expects.
//
// Leaf keys such as "term", "match", "field" or "boost" are engine
// attributes and pass through both dialects unchanged.
//
// # Canonicalization
//
// Canonicalize rewrites any JSON value into the canonical dialect:
//
//	node := map[string]any{
//	    "and": []any{
//	        map[string]any{"term": "x", "field": "f"},
//	        map[string]any{"not": map[string]any{"term": "y", "field": "f"}},
//	    },
//	}
//	canonical := query.Canonicalize(node)
//	// {"conjuncts": [{"term":"x","field":"f"},
//	//                {"must_not":{"disjuncts":[{"term":"y","field":"f"}]}}]}
//
// Canonicalize never fails. Malformed input (non-objects, wrong value
// types, pathological nesting) degrades to an empty node at the point of
// malformation; sibling branches are unaffected. Agent output is not
// validated against a formal grammar before it reaches this package, so
// best-effort degradation is the contract, not an edge case.
//
// Callers that want to skip a no-op rewrite can probe the input first:
//
//	if query.UsesSimplifiedDialect(node) {
//	    node = query.Canonicalize(node)
//	}
//
// # Building queries programmatically
//
// Constructors are provided for every leaf query kind the engine supports
// (term, match, ranges, geo, ...) and for boolean composition. They return
// plain canonical-dialect nodes and omit unset optional parameters
// entirely rather than serializing nulls:
//
//	q := query.NewBooleanQuery(
//	    query.Must(query.NewTermQuery("category", "reports")),
//	    query.MustNot(query.NewTermQuery("archived", "true")),
//	)
//
// The builder performs no validation of field names or values. The
// engine is authoritative on query validity; the builder only guarantees
// well-formed canonical shapes.
package query
