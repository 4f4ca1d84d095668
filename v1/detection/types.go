package detection

// FieldKind is the primitive or structural kind inferred for a field
// from its sampled JSON values.
type FieldKind string

const (
	// KindUnknown is the indeterminate placeholder assigned when the
	// first sampled value is null. It is kept even if later samples
	// reveal a concrete type (first-seen policy).
	KindUnknown FieldKind = "unknown"

	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindObject  FieldKind = "object"
	KindArray   FieldKind = "array"
)

// StorageType is a candidate storage/index type of the target schema.
type StorageType string

const (
	StorageText    StorageType = "text"
	StorageKeyword StorageType = "keyword"
	StorageInteger StorageType = "integer"
	StorageFloat   StorageType = "float"
	StorageBool    StorageType = "bool"
	StorageJSON    StorageType = "json"
	StorageArray   StorageType = "array"
)

// TypeField is the document key holding the kind/type discriminator used
// to group documents during detection.
const TypeField = "type"

// DefaultTypeName is the kind bucket for documents that carry no
// discriminator.
const DefaultTypeName = "document"

// InternalFieldPrefix marks system-internal fields; any field whose name
// starts with it is excluded from detection.
const InternalFieldPrefix = "_"

// reservedFields are system field names always excluded from detection
// regardless of how they appear in sampled documents.
var reservedFields = map[string]struct{}{
	"id":      {},
	"type":    {},
	"score":   {},
	"version": {},
}

// DetectedField is one inferred field of a document kind. Instances are
// produced fresh on each detection run and never persisted; the next
// sample fetch recomputes them from scratch.
type DetectedField struct {
	// Name of the field as it appears in sampled documents.
	Name string `json:"name"`

	// InferredType is fixed at the field's first observation.
	InferredType FieldKind `json:"inferredType"`

	// ExampleValue is the first non-null value observed for the field.
	ExampleValue any `json:"exampleValue,omitempty"`

	// SeenCount is the number of sampled documents (in this scope)
	// carrying the field.
	SeenCount int `json:"seenCount"`

	// Frequency is SeenCount divided by SampleCount, in [0,1].
	Frequency float64 `json:"frequency"`

	// SampleCount is the denominator used for Frequency: the kind's
	// document count for per-kind fields, the full sample size for the
	// flat list.
	SampleCount int `json:"sampleCount"`

	// SuggestedTypes are candidate storage types for the field, most
	// suitable first.
	SuggestedTypes []StorageType `json:"suggestedTypes,omitempty"`
}

// DetectionGroup bundles the fields detected for one document kind.
type DetectionGroup struct {
	// TypeName is the kind discriminator value, or DefaultTypeName.
	TypeName string `json:"typeName"`

	// DocCount is the number of sampled documents of this kind.
	DocCount int `json:"docCount"`

	// Fields sorted by descending SeenCount; ties keep encounter order.
	Fields []DetectedField `json:"fields"`
}

// Result is the output of one detection run.
type Result struct {
	// Groups holds per-kind detection, in kind encounter order.
	Groups []DetectionGroup `json:"groups"`

	// Fields is the flat cross-kind field list, kept for consumers that
	// predate per-kind grouping.
	Fields []DetectedField `json:"fields"`
}
