package query

import "time"

// ── Leaf Query Constructors ──────────────────────────────────────────────────
//
// Each constructor returns a plain canonical-dialect QueryNode. Optional
// parameters left nil are dropped from the output entirely, keeping
// produced trees minimal. No field-name or value validation is performed;
// the engine is authoritative on query validity.

// NewTermQuery matches documents whose field contains the exact term.
func NewTermQuery(field, term string) QueryNode {
	return QueryNode{"term": term, "field": field}
}

// NewMatchQuery matches documents whose field matches the analyzed input.
func NewMatchQuery(field, match string) QueryNode {
	return QueryNode{"match": match, "field": field}
}

// NewMatchPhraseQuery matches documents whose field contains the phrase
// with terms in order.
func NewMatchPhraseQuery(field, phrase string) QueryNode {
	return QueryNode{"match_phrase": phrase, "field": field}
}

// NewPrefixQuery matches documents whose field contains terms starting
// with the given prefix.
func NewPrefixQuery(field, prefix string) QueryNode {
	return QueryNode{"prefix": prefix, "field": field}
}

// NewFuzzyQuery matches terms within the given edit distance of term.
func NewFuzzyQuery(field, term string, fuzziness int) QueryNode {
	return QueryNode{"term": term, "fuzziness": fuzziness, "field": field}
}

// NewNumericRangeQuery matches numeric field values between min and max.
// Nil bounds are open ends; nil inclusivity flags fall back to the
// engine's defaults and are omitted from the node.
func NewNumericRangeQuery(field string, min, max *float64, inclusiveMin, inclusiveMax *bool) QueryNode {
	q := QueryNode{"field": field}
	if min != nil {
		q["min"] = *min
	}
	if max != nil {
		q["max"] = *max
	}
	if inclusiveMin != nil {
		q["inclusive_min"] = *inclusiveMin
	}
	if inclusiveMax != nil {
		q["inclusive_max"] = *inclusiveMax
	}
	return q
}

// NewDateRangeQuery matches datetime field values between start and end.
// Bounds are serialized as RFC 3339 strings; nil bounds are open ends and
// nil inclusivity flags are omitted.
func NewDateRangeQuery(field string, start, end *time.Time, inclusiveStart, inclusiveEnd *bool) QueryNode {
	q := QueryNode{"field": field}
	if start != nil {
		q["start"] = start.Format(time.RFC3339)
	}
	if end != nil {
		q["end"] = end.Format(time.RFC3339)
	}
	if inclusiveStart != nil {
		q["inclusive_start"] = *inclusiveStart
	}
	if inclusiveEnd != nil {
		q["inclusive_end"] = *inclusiveEnd
	}
	return q
}

// NewMatchAllQuery matches every document.
func NewMatchAllQuery() QueryNode {
	return QueryNode{"match_all": QueryNode{}}
}

// NewMatchNoneQuery matches no documents.
func NewMatchNoneQuery() QueryNode {
	return QueryNode{"match_none": QueryNode{}}
}

// NewDocIDQuery matches documents by their identifiers.
func NewDocIDQuery(ids ...string) QueryNode {
	return QueryNode{"ids": ids}
}

// NewGeoDistanceQuery matches documents whose geo field lies within
// distance (e.g. "10km") of the given point. Location is [lon, lat].
func NewGeoDistanceQuery(field string, lon, lat float64, distance string) QueryNode {
	return QueryNode{
		"location": []float64{lon, lat},
		"distance": distance,
		"field":    field,
	}
}

// NewGeoBoundingBoxQuery matches documents whose geo field lies within
// the box spanned by the top-left and bottom-right corners ([lon, lat]).
func NewGeoBoundingBoxQuery(field string, topLeftLon, topLeftLat, bottomRightLon, bottomRightLat float64) QueryNode {
	return QueryNode{
		"top_left":     []float64{topLeftLon, topLeftLat},
		"bottom_right": []float64{bottomRightLon, bottomRightLat},
		"field":        field,
	}
}

// ── Compound Query Constructors ──────────────────────────────────────────────

// NewConjunctionQuery combines child queries with AND semantics.
func NewConjunctionQuery(conjuncts ...QueryNode) QueryNode {
	return QueryNode{KeyConjuncts: toChildList(conjuncts)}
}

// NewDisjunctionQuery combines child queries with OR semantics.
func NewDisjunctionQuery(disjuncts ...QueryNode) QueryNode {
	return QueryNode{KeyDisjuncts: toChildList(disjuncts)}
}

// NewDisjunctionQueryMin is NewDisjunctionQuery with a minimum number of
// disjuncts that must match.
func NewDisjunctionQueryMin(min int, disjuncts ...QueryNode) QueryNode {
	return QueryNode{KeyDisjuncts: toChildList(disjuncts), KeyMin: min}
}

// BooleanClause configures one clause of a boolean query.
// Use with NewBooleanQuery and the Must, Should, MustNot, Filter and
// MinShould helpers.
type BooleanClause func(*booleanSpec)

type booleanSpec struct {
	must      []QueryNode
	should    []QueryNode
	mustNot   []QueryNode
	filter    QueryNode
	minShould *int
}

// Must adds queries that every matching document must satisfy.
func Must(queries ...QueryNode) BooleanClause {
	return func(b *booleanSpec) {
		b.must = append(b.must, queries...)
	}
}

// Should adds queries that contribute to scoring; by default none is
// required to match unless MinShould raises the bar.
func Should(queries ...QueryNode) BooleanClause {
	return func(b *booleanSpec) {
		b.should = append(b.should, queries...)
	}
}

// MustNot adds queries that matching documents must not satisfy.
func MustNot(queries ...QueryNode) BooleanClause {
	return func(b *booleanSpec) {
		b.mustNot = append(b.mustNot, queries...)
	}
}

// Filter attaches a non-scoring constraint node to the boolean query.
func Filter(q QueryNode) BooleanClause {
	return func(b *booleanSpec) {
		b.filter = q
	}
}

// MinShould sets the minimum number of Should queries that must match.
func MinShould(min int) BooleanClause {
	return func(b *booleanSpec) {
		b.minShould = &min
	}
}

// NewBooleanQuery composes must, should and must-not clauses into a
// canonical boolean node:
//
//   - must     → {"must": {"conjuncts": [...]}}
//   - should   → {"should": {"disjuncts": [...], "min": n?}}
//   - must_not → {"must_not": {"disjuncts": [...]}}
//
// Only clauses with at least one query are emitted, so an empty clause
// and an absent clause are indistinguishable in the output. Callers must
// not read key presence as "empty constraint".
func NewBooleanQuery(clauses ...BooleanClause) QueryNode {
	var spec booleanSpec
	for _, clause := range clauses {
		clause(&spec)
	}

	q := QueryNode{}
	if len(spec.must) > 0 {
		q[KeyMust] = NewConjunctionQuery(spec.must...)
	}
	if len(spec.should) > 0 {
		should := NewDisjunctionQuery(spec.should...)
		if spec.minShould != nil {
			should[KeyMin] = *spec.minShould
		}
		q[KeyShould] = should
	}
	if len(spec.mustNot) > 0 {
		q[KeyMustNot] = NewDisjunctionQuery(spec.mustNot...)
	}
	if spec.filter != nil {
		q["filter"] = spec.filter
	}
	return q
}

// toChildList widens a constructor's typed children to the []any shape
// the wire uses for compound child lists.
func toChildList(children []QueryNode) []any {
	out := make([]any, len(children))
	for i, c := range children {
		out[i] = c
	}
	return out
}
