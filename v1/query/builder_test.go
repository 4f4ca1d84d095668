package query

import (
	"reflect"
	"testing"
	"time"
)

func TestNewTermQuery(t *testing.T) {
	q := NewTermQuery("city", "London")
	expected := QueryNode{"term": "London", "field": "city"}
	if !reflect.DeepEqual(q, expected) {
		t.Errorf("expected %v, got %v", expected, q)
	}
}

func TestNewMatchQuery(t *testing.T) {
	q := NewMatchQuery("title", "annual report")
	if q["match"] != "annual report" || q["field"] != "title" {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewMatchPhraseQuery(t *testing.T) {
	q := NewMatchPhraseQuery("body", "quarterly earnings call")
	if q["match_phrase"] != "quarterly earnings call" || q["field"] != "body" {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewPrefixQuery(t *testing.T) {
	q := NewPrefixQuery("name", "doc")
	if q["prefix"] != "doc" || q["field"] != "name" {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewFuzzyQuery(t *testing.T) {
	q := NewFuzzyQuery("title", "reprot", 2)
	if q["term"] != "reprot" || q["fuzziness"] != 2 || q["field"] != "title" {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewNumericRangeQuery_AllBounds(t *testing.T) {
	min := 100.0
	max := 500.0
	inclusive := true
	q := NewNumericRangeQuery("price", &min, &max, &inclusive, &inclusive)

	if q["min"] != 100.0 || q["max"] != 500.0 {
		t.Errorf("unexpected bounds in %v", q)
	}
	if q["inclusive_min"] != true || q["inclusive_max"] != true {
		t.Errorf("unexpected inclusivity in %v", q)
	}
}

func TestNewNumericRangeQuery_DropsUnsetOptionals(t *testing.T) {
	min := 10.0
	q := NewNumericRangeQuery("price", &min, nil, nil, nil)

	if _, ok := q["max"]; ok {
		t.Error("nil max must be dropped, not serialized")
	}
	if _, ok := q["inclusive_min"]; ok {
		t.Error("nil inclusive_min must be dropped")
	}
	if _, ok := q["inclusive_max"]; ok {
		t.Error("nil inclusive_max must be dropped")
	}
	if q["min"] != 10.0 || q["field"] != "price" {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewDateRangeQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	q := NewDateRangeQuery("created_at", &start, nil, nil, nil)

	if q["start"] != "2024-01-01T00:00:00Z" {
		t.Errorf("expected RFC 3339 start, got %v", q["start"])
	}
	if _, ok := q["end"]; ok {
		t.Error("nil end must be dropped")
	}
	if q["field"] != "created_at" {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewMatchAllQuery(t *testing.T) {
	q := NewMatchAllQuery()
	inner, ok := q["match_all"].(QueryNode)
	if !ok || len(inner) != 0 {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewMatchNoneQuery(t *testing.T) {
	q := NewMatchNoneQuery()
	if _, ok := q["match_none"]; !ok {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewDocIDQuery(t *testing.T) {
	q := NewDocIDQuery("doc-1", "doc-2")
	ids, ok := q["ids"].([]string)
	if !ok || len(ids) != 2 || ids[0] != "doc-1" {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewGeoDistanceQuery(t *testing.T) {
	q := NewGeoDistanceQuery("location", 13.4, 52.5, "25km")
	loc, ok := q["location"].([]float64)
	if !ok || loc[0] != 13.4 || loc[1] != 52.5 {
		t.Errorf("unexpected location in %v", q)
	}
	if q["distance"] != "25km" || q["field"] != "location" {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewGeoBoundingBoxQuery(t *testing.T) {
	q := NewGeoBoundingBoxQuery("location", -0.5, 51.6, 0.3, 51.3)
	tl, ok := q["top_left"].([]float64)
	if !ok || tl[0] != -0.5 || tl[1] != 51.6 {
		t.Errorf("unexpected top_left in %v", q)
	}
	br, ok := q["bottom_right"].([]float64)
	if !ok || br[0] != 0.3 || br[1] != 51.3 {
		t.Errorf("unexpected bottom_right in %v", q)
	}
}

func TestNewConjunctionQuery(t *testing.T) {
	q := NewConjunctionQuery(NewTermQuery("f", "a"), NewTermQuery("f", "b"))
	conjuncts, ok := q[KeyConjuncts].([]any)
	if !ok || len(conjuncts) != 2 {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewDisjunctionQuery_NoMin(t *testing.T) {
	q := NewDisjunctionQuery(NewTermQuery("f", "a"))
	if _, ok := q[KeyMin]; ok {
		t.Error("min must be absent when not requested")
	}
	disjuncts, ok := q[KeyDisjuncts].([]any)
	if !ok || len(disjuncts) != 1 {
		t.Errorf("unexpected node %v", q)
	}
}

func TestNewDisjunctionQueryMin(t *testing.T) {
	q := NewDisjunctionQueryMin(2, NewTermQuery("f", "a"), NewTermQuery("f", "b"), NewTermQuery("f", "c"))
	if q[KeyMin] != 2 {
		t.Errorf("expected min 2, got %v", q[KeyMin])
	}
}

func TestNewBooleanQuery_AllClauses(t *testing.T) {
	q := NewBooleanQuery(
		Must(NewTermQuery("status", "active")),
		Should(NewTermQuery("city", "London"), NewTermQuery("city", "Berlin")),
		MustNot(NewTermQuery("deleted", "true")),
		MinShould(1),
	)

	must, ok := q[KeyMust].(QueryNode)
	if !ok {
		t.Fatalf("expected must clause, got %v", q)
	}
	if conjuncts, ok := must[KeyConjuncts].([]any); !ok || len(conjuncts) != 1 {
		t.Errorf("expected must to wrap a conjunction, got %v", must)
	}

	should, ok := q[KeyShould].(QueryNode)
	if !ok {
		t.Fatalf("expected should clause, got %v", q)
	}
	if disjuncts, ok := should[KeyDisjuncts].([]any); !ok || len(disjuncts) != 2 {
		t.Errorf("expected should to wrap a disjunction, got %v", should)
	}
	if should[KeyMin] != 1 {
		t.Errorf("expected min 1 on should disjunction, got %v", should[KeyMin])
	}

	mustNot, ok := q[KeyMustNot].(QueryNode)
	if !ok {
		t.Fatalf("expected must_not clause, got %v", q)
	}
	if disjuncts, ok := mustNot[KeyDisjuncts].([]any); !ok || len(disjuncts) != 1 {
		t.Errorf("expected must_not to wrap a disjunction, got %v", mustNot)
	}
}

func TestNewBooleanQuery_EmptyClausesCollapse(t *testing.T) {
	q := NewBooleanQuery(
		Must(),
		Should(),
		MustNot(NewTermQuery("deleted", "true")),
	)

	if _, ok := q[KeyMust]; ok {
		t.Error("empty must clause must collapse to key absence")
	}
	if _, ok := q[KeyShould]; ok {
		t.Error("empty should clause must collapse to key absence")
	}
	if _, ok := q[KeyMustNot]; !ok {
		t.Errorf("expected must_not clause, got %v", q)
	}
}

func TestNewBooleanQuery_Filter(t *testing.T) {
	filter := NewTermQuery("tenant", "t-1")
	q := NewBooleanQuery(
		Must(NewMatchQuery("body", "report")),
		Filter(filter),
	)

	got, ok := q["filter"].(QueryNode)
	if !ok || got["term"] != "t-1" {
		t.Errorf("expected filter node attached, got %v", q)
	}
}

func TestNewBooleanQuery_NoClauses(t *testing.T) {
	q := NewBooleanQuery()
	if len(q) != 0 {
		t.Errorf("expected empty node, got %v", q)
	}
}

func TestBuilderOutput_IsCanonical(t *testing.T) {
	q := NewBooleanQuery(
		Must(NewTermQuery("a", "1")),
		Should(NewMatchQuery("b", "2")),
	)
	if UsesSimplifiedDialect(q) {
		t.Error("builder output must never use the simplified dialect")
	}
	if !reflect.DeepEqual(Canonicalize(q), q) {
		t.Error("builder output must be a fixed point of Canonicalize")
	}
}
