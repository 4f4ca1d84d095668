package inference

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/search-core/v1/detection"
	"github.com/Aleph-Alpha/search-core/v1/metrics"
	"github.com/Aleph-Alpha/search-core/v1/query"
	"github.com/Aleph-Alpha/search-core/v1/tracer"
)

// DocumentSampler fetches a bounded sample of stored documents from a
// collection. The sampler package provides the Qdrant-backed implementation.
//
//go:generate mockgen -source=service.go -destination=mock_sampler.go -package=inference
type DocumentSampler interface {
	Sample(ctx context.Context, collection string) ([]map[string]any, error)
	ListCollections(ctx context.Context) ([]string, error)
}

// Logger defines the interface for logging operations in the inference package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// CollectionSchema pairs a collection name with its detected schema.
type CollectionSchema struct {
	Collection string            `json:"collection"`
	Schema     *detection.Result `json:"schema"`
}

// Service combines payload sampling, schema detection, and query
// canonicalization into one high-level API.
//
// The tracer is optional; a nil *tracer.Tracer disables span creation.
type Service struct {
	sampler DocumentSampler
	logger  Logger
	tracer  *tracer.Tracer

	maxConcurrency int

	inferences       *prometheus.CounterVec
	inferenceLatency *prometheus.HistogramVec
	normalizations   *prometheus.CounterVec
}

const defaultMaxConcurrency = 4

// NewService constructs an inference Service.
//
// Parameters:
//   - sampler: Source of document samples, usually *sampler.SamplerClient
//   - logger: Logger for operational events
//   - tr: Optional tracer; may be nil
//   - m: Optional metrics registry; may be nil, in which case no metrics are recorded
//
// Returns:
//   - *Service: A ready-to-use inference service
func NewService(sampler DocumentSampler, logger Logger, tr *tracer.Tracer, m *metrics.Metrics) *Service {
	s := &Service{
		sampler:        sampler,
		logger:         logger,
		tracer:         tr,
		maxConcurrency: defaultMaxConcurrency,
	}

	if m != nil {
		s.inferences = m.CreateCounter(
			"schema_inferences_total",
			"Number of schema inference runs, labelled by outcome.",
			[]string{"outcome"},
		)
		s.inferenceLatency = m.CreateHistogram(
			"schema_inference_duration_seconds",
			"Latency of schema inference runs.",
			[]string{"collection"},
			nil,
		)
		s.normalizations = m.CreateCounter(
			"query_normalizations_total",
			"Number of query trees normalized, labelled by input dialect.",
			[]string{"dialect"},
		)
	}

	return s
}

// WithMaxConcurrency overrides the number of collections inferred in parallel
// by InferSchemas. Values below one fall back to the default.
func (s *Service) WithMaxConcurrency(n int) *Service {
	if n < 1 {
		n = defaultMaxConcurrency
	}
	s.maxConcurrency = n
	return s
}

// InferSchema samples one collection and detects its field schema.
//
// Returns detection.ErrNoDocuments (wrapped) when the collection holds no
// documents to sample.
func (s *Service) InferSchema(ctx context.Context, collection string) (*detection.Result, error) {
	ctx, span := s.tracer.StartSpan(ctx, "infer-schema")
	defer span.End()
	s.tracer.SetAttributes(span, map[string]interface{}{"collection": collection})

	start := time.Now()

	docs, err := s.sampler.Sample(ctx, collection)
	if err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		s.count(s.inferences, "sample_error")
		s.logger.Error("failed to sample collection", err, map[string]interface{}{"collection": collection})
		return nil, fmt.Errorf("inference: sampling collection %q: %w", collection, err)
	}

	result, err := detection.Detect(docs)
	if err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		s.count(s.inferences, "detect_error")
		return nil, fmt.Errorf("inference: detecting schema of %q: %w", collection, err)
	}

	s.count(s.inferences, "success")
	if s.inferenceLatency != nil {
		s.inferenceLatency.WithLabelValues(collection).Observe(time.Since(start).Seconds())
	}

	s.logger.Info("inferred schema", nil, map[string]interface{}{
		"collection": collection,
		"documents":  len(docs),
		"groups":     len(result.Groups),
	})

	return result, nil
}

// InferSchemas samples and detects several collections concurrently.
//
// Results keep the order of the input collections. The first error cancels
// the remaining work and is returned.
func (s *Service) InferSchemas(ctx context.Context, collections []string) ([]CollectionSchema, error) {
	results := make([]CollectionSchema, len(collections))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for i, collection := range collections {
		g.Go(func() error {
			schema, err := s.InferSchema(ctx, collection)
			if err != nil {
				return err
			}
			results[i] = CollectionSchema{Collection: collection, Schema: schema}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// InferAll detects schemas for every collection of the deployment.
func (s *Service) InferAll(ctx context.Context) ([]CollectionSchema, error) {
	collections, err := s.sampler.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("inference: listing collections: %w", err)
	}
	return s.InferSchemas(ctx, collections)
}

// NormalizeQuery rewrites a query tree into the canonical dialect.
//
// Trees already written in the canonical dialect pass through a cheap
// detection step first; canonicalization still runs on them so that
// canonical keys nested under simplified operators are handled uniformly.
func (s *Service) NormalizeQuery(node any) query.QueryNode {
	dialect := "canonical"
	if query.UsesSimplifiedDialect(node) {
		dialect = "simplified"
	}
	s.count(s.normalizations, dialect)

	out := query.Canonicalize(node)

	s.logger.Debug("normalized query", nil, map[string]interface{}{"dialect": dialect})
	return out
}

func (s *Service) count(c *prometheus.CounterVec, label string) {
	if c == nil {
		return
	}
	c.WithLabelValues(label).Inc()
}
