// Package detection infers a field-level type schema from a sample of
// documents, so the schema-authoring UI can pre-populate an editor
// instead of requiring a hand-written schema.
//
// The pipeline is: classify each top-level value of each sampled
// document (Classify), fold the observations into per-field statistics
// grouped by the document's declared kind (Detect), then map each
// inferred kind to candidate storage/index types (Suggest).
//
// Detect is a pure, synchronous transformation over already-fetched
// documents. The sample itself arrives from a fetch collaborator (see
// the sampler package); detection treats it as final and performs no
// I/O. Each call allocates only local state, so concurrent calls with
// disjoint inputs are safe.
//
// Example:
//
//	docs, _ := sampler.Sample(ctx, "documents")
//	result, err := detection.Detect(docs)
//	if errors.Is(err, detection.ErrNoDocuments) {
//	    // the collection had nothing to sample; distinct from an empty
//	    // but successful run
//	}
//	for _, group := range result.Groups {
//	    for _, field := range group.Fields {
//	        fmt.Println(field.Name, field.InferredType, field.SuggestedTypes)
//	    }
//	}
//
// # Inference policy
//
// A field's inferred type is fixed at its first observation and never
// re-derived, even when later samples disagree; the example value is the
// first non-null value observed. Fields are reported in descending order
// of how many sampled documents carried them, with frequency computed
// against the scope's own document count (per-kind versus global
// denominators differ). System fields - reserved names and names with
// the internal "_" prefix - never appear in results.
package detection
