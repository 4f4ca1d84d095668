package detection

import (
	"encoding/json"
	"math"
)

// Suggest maps an inferred kind to its ordered storage type candidates.
// This is a fixed lookup table, not a heuristic; the example value is
// consulted only to tell integer-valued numbers from fractional ones.
// Kinds without a sensible storage mapping (KindUnknown) yield nil.
func Suggest(kind FieldKind, example any) []StorageType {
	switch kind {
	case KindString:
		return []StorageType{StorageText, StorageKeyword}
	case KindNumber:
		if isIntegral(example) {
			return []StorageType{StorageInteger, StorageFloat}
		}
		return []StorageType{StorageFloat}
	case KindBoolean:
		return []StorageType{StorageBool}
	case KindObject:
		return []StorageType{StorageJSON}
	case KindArray:
		return []StorageType{StorageArray}
	default:
		return nil
	}
}

// isIntegral reports whether a numeric example carries no fractional
// part. JSON decoding yields float64, so an integral float counts.
func isIntegral(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(v) == math.Trunc(float64(v))
	case float64:
		return v == math.Trunc(v)
	case json.Number:
		_, err := v.Int64()
		return err == nil
	default:
		return false
	}
}
