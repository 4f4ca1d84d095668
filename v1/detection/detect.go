package detection

import (
	"errors"
	"sort"
	"strings"
)

// ErrNoDocuments signals that the sample contained zero documents. It is
// the only caller-visible failure of detection, letting the UI show "no
// documents found" instead of an empty schema.
var ErrNoDocuments = errors.New("detection: sample contains no documents")

// Detect folds a bounded document sample into per-kind field statistics
// plus a flat cross-kind list. Documents are grouped by their TypeField
// discriminator; documents without one fall into the DefaultTypeName
// bucket.
//
// Go maps carry no key order, so the keys of each document are visited
// in sorted order; the first document to mention a field fixes the
// field's position for seen-count ties.
func Detect(docs []map[string]any) (*Result, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	global := newAccumulator()
	perKind := make(map[string]*accumulator)
	var kindOrder []string

	for _, doc := range docs {
		kind := DefaultTypeName
		if declared, ok := doc[TypeField].(string); ok && declared != "" {
			kind = declared
		}

		acc, ok := perKind[kind]
		if !ok {
			acc = newAccumulator()
			perKind[kind] = acc
			kindOrder = append(kindOrder, kind)
		}

		acc.docCount++
		global.docCount++
		for _, name := range sortedKeys(doc) {
			acc.observe(name, doc[name])
			global.observe(name, doc[name])
		}
	}

	result := &Result{
		Groups: make([]DetectionGroup, 0, len(kindOrder)),
		Fields: global.finalize(),
	}
	for _, kind := range kindOrder {
		acc := perKind[kind]
		result.Groups = append(result.Groups, DetectionGroup{
			TypeName: kind,
			DocCount: acc.docCount,
			Fields:   acc.finalize(),
		})
	}
	return result, nil
}

// accumulator folds observed values into per-field statistics for one
// scope (a kind bucket, or the whole sample).
type accumulator struct {
	docCount int
	order    []string
	fields   map[string]*fieldStat
}

type fieldStat struct {
	name    string
	kind    FieldKind
	example any
	seen    int
}

func newAccumulator() *accumulator {
	return &accumulator{fields: make(map[string]*fieldStat)}
}

func (a *accumulator) observe(name string, value any) {
	if isExcluded(name) {
		return
	}

	stat, ok := a.fields[name]
	if !ok {
		// First occurrence fixes the inferred type, even when the value
		// is null. Re-deriving from later values would change observable
		// output; see the package documentation.
		a.fields[name] = &fieldStat{
			name:    name,
			kind:    Classify(value),
			example: value,
			seen:    1,
		}
		a.order = append(a.order, name)
		return
	}

	stat.seen++
	if stat.example == nil && value != nil {
		stat.example = value
	}
}

// finalize renders the accumulated statistics as DetectedFields sorted by
// descending seen count; ties keep encounter order.
func (a *accumulator) finalize() []DetectedField {
	fields := make([]DetectedField, 0, len(a.order))
	for _, name := range a.order {
		stat := a.fields[name]
		fields = append(fields, DetectedField{
			Name:           stat.name,
			InferredType:   stat.kind,
			ExampleValue:   stat.example,
			SeenCount:      stat.seen,
			Frequency:      float64(stat.seen) / float64(a.docCount),
			SampleCount:    a.docCount,
			SuggestedTypes: Suggest(stat.kind, stat.example),
		})
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].SeenCount > fields[j].SeenCount
	})
	return fields
}

func isExcluded(name string) bool {
	if strings.HasPrefix(name, InternalFieldPrefix) {
		return true
	}
	_, reserved := reservedFields[name]
	return reserved
}

func sortedKeys(doc map[string]any) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
