package detection

import (
	"errors"
	"testing"
)

func findField(fields []DetectedField, name string) *DetectedField {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}

func TestDetect_EmptySample(t *testing.T) {
	result, err := Detect(nil)
	if !errors.Is(err, ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result on empty sample, got %v", result)
	}
}

func TestDetect_PerKindFrequency(t *testing.T) {
	docs := []map[string]any{
		{"type": "item", "price": 10.0},
		{"type": "item", "price": 12.5},
		{"type": "item", "price": 9.0},
		{"type": "item", "name": "widget"},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result.Groups))
	}
	group := result.Groups[0]
	if group.TypeName != "item" || group.DocCount != 4 {
		t.Errorf("unexpected group %+v", group)
	}

	price := findField(group.Fields, "price")
	if price == nil {
		t.Fatal("expected price field detected")
	}
	if price.Frequency != 0.75 {
		t.Errorf("expected frequency 0.75, got %v", price.Frequency)
	}
	if price.SampleCount != 4 {
		t.Errorf("expected sample count 4, got %d", price.SampleCount)
	}
	if price.SeenCount != 3 {
		t.Errorf("expected seen count 3, got %d", price.SeenCount)
	}
	if price.InferredType != KindNumber {
		t.Errorf("expected number, got %q", price.InferredType)
	}
}

func TestDetect_KindGroupingAndDefaultBucket(t *testing.T) {
	docs := []map[string]any{
		{"type": "item", "price": 10.0},
		{"type": "order", "total": 99.9},
		{"title": "untyped"},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(result.Groups))
	}
	// Kind buckets keep encounter order.
	if result.Groups[0].TypeName != "item" ||
		result.Groups[1].TypeName != "order" ||
		result.Groups[2].TypeName != DefaultTypeName {
		t.Errorf("unexpected group order: %v, %v, %v",
			result.Groups[0].TypeName, result.Groups[1].TypeName, result.Groups[2].TypeName)
	}
	if result.Groups[2].DocCount != 1 {
		t.Errorf("expected 1 untyped doc, got %d", result.Groups[2].DocCount)
	}
}

func TestDetect_GlobalDenominatorDiffersFromKind(t *testing.T) {
	docs := []map[string]any{
		{"type": "item", "price": 10.0},
		{"type": "item", "price": 11.0},
		{"type": "order", "total": 99.9},
		{"type": "order", "total": 11.5},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kindPrice := findField(result.Groups[0].Fields, "price")
	if kindPrice == nil || kindPrice.Frequency != 1.0 || kindPrice.SampleCount != 2 {
		t.Errorf("expected per-kind price frequency 1.0 over 2 docs, got %+v", kindPrice)
	}

	flatPrice := findField(result.Fields, "price")
	if flatPrice == nil || flatPrice.Frequency != 0.5 || flatPrice.SampleCount != 4 {
		t.Errorf("expected global price frequency 0.5 over 4 docs, got %+v", flatPrice)
	}
}

func TestDetect_FirstNonNullExampleWins(t *testing.T) {
	docs := []map[string]any{
		{"type": "item", "note": nil},
		{"type": "item", "note": nil},
		{"type": "item", "note": "abc"},
		{"type": "item", "note": "def"},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	note := findField(result.Groups[0].Fields, "note")
	if note == nil {
		t.Fatal("expected note field detected")
	}
	if note.ExampleValue != "abc" {
		t.Errorf("expected first non-null example %q, got %v", "abc", note.ExampleValue)
	}
	// The inferred type was fixed by the first (null) observation.
	if note.InferredType != KindUnknown {
		t.Errorf("expected inferred type fixed at first observation, got %q", note.InferredType)
	}
	if note.SeenCount != 4 {
		t.Errorf("expected seen count 4, got %d", note.SeenCount)
	}
}

func TestDetect_ReservedFieldsExcluded(t *testing.T) {
	docs := []map[string]any{
		{"type": "item", "id": "1", "score": 0.9, "version": 3.0, "name": "a"},
		{"type": "item", "id": "2", "score": 0.8, "version": 4.0, "name": "b"},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, reserved := range []string{"id", "type", "score", "version"} {
		if findField(result.Groups[0].Fields, reserved) != nil {
			t.Errorf("reserved field %q must never be detected", reserved)
		}
		if findField(result.Fields, reserved) != nil {
			t.Errorf("reserved field %q leaked into the flat list", reserved)
		}
	}
	if findField(result.Groups[0].Fields, "name") == nil {
		t.Error("expected ordinary field detected")
	}
}

func TestDetect_InternalPrefixExcluded(t *testing.T) {
	docs := []map[string]any{
		{"_internal": "x", "_id": "y", "visible": "z"},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := result.Groups[0].Fields
	if findField(fields, "_internal") != nil || findField(fields, "_id") != nil {
		t.Errorf("internal-prefix fields must be excluded, got %v", fields)
	}
	if findField(fields, "visible") == nil {
		t.Error("expected visible field detected")
	}
}

func TestDetect_SortsByDescendingSeenCount(t *testing.T) {
	docs := []map[string]any{
		{"type": "item", "rare": 1.0, "common": 1.0},
		{"type": "item", "common": 2.0},
		{"type": "item", "common": 3.0},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := result.Groups[0].Fields
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name != "common" || fields[1].Name != "rare" {
		t.Errorf("expected descending seen-count order, got %v then %v", fields[0].Name, fields[1].Name)
	}
}

func TestDetect_TieKeepsEncounterOrder(t *testing.T) {
	docs := []map[string]any{
		{"alpha": 1.0, "beta": 2.0},
		{"alpha": 1.0, "beta": 2.0},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := result.Groups[0].Fields
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name != "alpha" || fields[1].Name != "beta" {
		t.Errorf("tied fields must keep encounter order, got %v then %v", fields[0].Name, fields[1].Name)
	}
}

func TestDetect_AttachesSuggestions(t *testing.T) {
	docs := []map[string]any{
		{"type": "item", "name": "widget", "count": 3.0, "active": true},
	}
	result, err := Detect(docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := result.Groups[0].Fields
	name := findField(fields, "name")
	if name == nil || len(name.SuggestedTypes) == 0 || name.SuggestedTypes[0] != StorageText {
		t.Errorf("expected text suggestion for string field, got %+v", name)
	}
	count := findField(fields, "count")
	if count == nil || len(count.SuggestedTypes) == 0 || count.SuggestedTypes[0] != StorageInteger {
		t.Errorf("expected integer suggestion for integral number, got %+v", count)
	}
	active := findField(fields, "active")
	if active == nil || len(active.SuggestedTypes) != 1 || active.SuggestedTypes[0] != StorageBool {
		t.Errorf("expected bool suggestion, got %+v", active)
	}
}
