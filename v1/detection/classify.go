package detection

import (
	"encoding/json"
	"reflect"
)

// Classify maps a single JSON value to its FieldKind. Null classifies as
// the KindUnknown placeholder, which Detect treats specially. Arrays
// classify as KindArray regardless of element homogeneity; every non-null
// non-array composite classifies as KindObject.
func Classify(value any) FieldKind {
	switch value.(type) {
	case nil:
		return KindUnknown
	case string:
		return KindString
	case bool:
		return KindBoolean
	case float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}

	// Values decoded by encoding/json always hit the cases above; the
	// reflect fallback covers samples handed over as typed Go values.
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	default:
		return KindObject
	}
}
