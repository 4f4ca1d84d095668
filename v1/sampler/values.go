package sampler

import (
	qdrant "github.com/qdrant/go-client/qdrant"
)

// decodePayload converts a Qdrant payload into a plain Go map.
//
// Qdrant represents payloads with protobuf value wrappers (the same shape as
// google.protobuf.Struct). Schema detection works on plain Go values, so each
// wrapper is unwrapped recursively:
//
//	NullValue    → nil
//	DoubleValue  → float64
//	IntegerValue → int64
//	StringValue  → string
//	BoolValue    → bool
//	StructValue  → map[string]any
//	ListValue    → []any
func decodePayload(payload map[string]*qdrant.Value) map[string]any {
	doc := make(map[string]any, len(payload))
	for k, v := range payload {
		doc[k] = decodeValue(v)
	}
	return doc
}

func decodeValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}

	switch kind := v.GetKind().(type) {
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	case *qdrant.Value_StructValue:
		return decodePayload(kind.StructValue.GetFields())
	case *qdrant.Value_ListValue:
		values := kind.ListValue.GetValues()
		list := make([]any, 0, len(values))
		for _, item := range values {
			list = append(list, decodeValue(item))
		}
		return list
	default:
		return nil
	}
}
