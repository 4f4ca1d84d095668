package detection

import (
	"reflect"
	"testing"
)

func TestSuggest_Table(t *testing.T) {
	cases := []struct {
		kind     FieldKind
		example  any
		expected []StorageType
	}{
		{KindString, "hello", []StorageType{StorageText, StorageKeyword}},
		{KindNumber, 42.0, []StorageType{StorageInteger, StorageFloat}},
		{KindNumber, 3.14, []StorageType{StorageFloat}},
		{KindBoolean, true, []StorageType{StorageBool}},
		{KindObject, map[string]any{}, []StorageType{StorageJSON}},
		{KindArray, []any{}, []StorageType{StorageArray}},
		{KindUnknown, nil, nil},
	}
	for _, tc := range cases {
		got := Suggest(tc.kind, tc.example)
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("Suggest(%q, %v) = %v, want %v", tc.kind, tc.example, got, tc.expected)
		}
	}
}

func TestSuggest_NumericExampleOnlyDisambiguatesSubtype(t *testing.T) {
	// A nil example for a number cannot prove integrality; it falls back
	// to float only.
	got := Suggest(KindNumber, nil)
	if !reflect.DeepEqual(got, []StorageType{StorageFloat}) {
		t.Errorf("expected float fallback for nil example, got %v", got)
	}
}

func TestIsIntegral(t *testing.T) {
	cases := []struct {
		value    any
		expected bool
	}{
		{42.0, true},
		{-7.0, true},
		{0.0, true},
		{3.5, false},
		{int64(9), true},
		{"42", false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := isIntegral(tc.value); got != tc.expected {
			t.Errorf("isIntegral(%v) = %v, want %v", tc.value, got, tc.expected)
		}
	}
}
