package sampler

import (
	"context"
	"fmt"
	"log"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// Sample ──────────────────────────────────────────────────────────────
// Sample
// ──────────────────────────────────────────────────────────────
//
// Sample scrolls a bounded number of points from the given collection and
// returns their payloads decoded into plain Go maps. Vectors are never
// requested; only payloads travel over the wire.
//
// The number of documents is capped by Config.SampleSize. Points without a
// payload contribute an empty map so the sample size still reflects the
// number of stored documents inspected.
//
// Parameters:
//   - ctx — request-scoped context, bounded by Config.Timeout.
//   - collection — the collection whose payloads should be sampled.
//
// Returns:
//
//	A slice of payload maps, one per scrolled point.
func (c *SamplerClient) Sample(ctx context.Context, collection string) ([]map[string]any, error) {
	if c.api == nil {
		return nil, fmt.Errorf("[Sampler] client not initialized")
	}
	if collection == "" {
		return nil, fmt.Errorf("[Sampler] collection name cannot be empty")
	}

	limit := c.cfg.SampleSize
	if limit <= 0 {
		limit = DefaultConfig().SampleSize
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	points, err := c.api.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: collection,
		Limit:          qdrant.PtrOf(uint32(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(false),
	})
	if err != nil {
		return nil, fmt.Errorf("[Sampler] failed to scroll collection %q: %w", collection, err)
	}

	docs := make([]map[string]any, 0, len(points))
	for _, point := range points {
		docs = append(docs, decodePayload(point.GetPayload()))
	}

	log.Printf("[Sampler] Sampled %d documents from collection %q", len(docs), collection)
	return docs, nil
}

// ListCollections retrieves all existing collections from Qdrant and returns
// their names. Useful for sampling every collection of a deployment in turn.
//
// Example:
//
//	names, err := client.ListCollections(ctx)
func (c *SamplerClient) ListCollections(ctx context.Context) ([]string, error) {
	if c.api == nil {
		return nil, fmt.Errorf("[Sampler] client not initialized")
	}

	names, err := c.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("[Sampler] failed to list collections: %w", err)
	}

	log.Printf("[Sampler] Found %d collections", len(names))
	return names, nil
}
