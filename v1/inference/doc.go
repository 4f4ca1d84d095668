// Package inference ties payload sampling, schema detection, and query
// canonicalization together into one service.
//
// The Service samples documents from a vector database collection through
// the DocumentSampler interface, runs them through the detection package to
// infer a per-type field schema, and normalizes caller-supplied query trees
// into the canonical dialect from the query package.
//
// Core Features:
//   - Single-collection and concurrent multi-collection schema inference
//   - Deployment-wide inference via collection listing
//   - Query tree normalization with dialect counting
//   - Optional tracing and Prometheus metrics
//
// Basic Usage:
//
//	svc := inference.NewService(samplerClient, log, tracerClient, metricsClient)
//
//	schema, err := svc.InferSchema(ctx, "products")
//	if err != nil {
//		log.Error("inference failed", err, nil)
//	}
//
//	canonical := svc.NormalizeQuery(map[string]any{
//		"and": []any{
//			map[string]any{"term": "kettle", "field": "title"},
//			map[string]any{"min": 10.0, "field": "price", "inclusive_min": true},
//		},
//	})
//
// When used with the fx dependency injection framework, FXModule wires the
// sampler and logger bindings automatically:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		metrics.FXModule,
//		sampler.FXModule,
//		inference.FXModule,
//	)
package inference
