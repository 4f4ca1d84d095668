// Package sampler provides read-only payload sampling from Qdrant collections.
//
// The sampler package wraps the official Qdrant Go client with a single
// purpose: fetching a bounded sample of stored documents so that their
// payloads can be fed into schema detection. It never writes, never requests
// vectors, and decodes the protobuf payload wrappers into plain Go values
// (string, bool, int64, float64, []any, map[string]any).
//
// Core Features:
//   - Fail-fast connectivity check at construction time
//   - Bounded payload scrolling with vectors excluded
//   - Recursive protobuf value decoding into plain Go maps
//   - Collection listing for deployment-wide sampling
//   - Integration with the fx dependency injection framework
//
// Basic Usage:
//
//	cfg := sampler.FromEndpoint("localhost").WithSampleSize(100)
//
//	client, err := sampler.NewSamplerClient(sampler.SamplerParams{Config: cfg})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	docs, err := client.Sample(ctx, "products")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := detection.Detect(docs)
package sampler
