package sampler

import (
	"context"
	"fmt"
	"log"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/fx"
)

//
// ──────────────────────────────────────────────────────────────
//   PAYLOAD SAMPLER CLIENT
// ──────────────────────────────────────────────────────────────
//
// This file defines a thin wrapper around the official Qdrant Go client,
// specialized for reading payload samples out of existing collections.
//
// The sampler never writes. Its single job is to scroll a bounded number
// of points from a collection and decode their payloads into plain Go
// maps that the detection package can classify.
//
// Responsibilities:
//   • Establish and validate connectivity with Qdrant.
//   • Scroll payload samples from a collection, vectors excluded.
//   • Decode protobuf payload values into plain Go values.
//   • Offer a safe API suitable for Fx dependency injection.
//

// SamplerClient wraps the official Qdrant Go client and provides
// payload sampling for schema detection.
type SamplerClient struct {
	api     *qdrant.Client
	cfg     *Config
	started bool
}

// SamplerParams groups the dependencies required to construct a SamplerClient.
type SamplerParams struct {
	fx.In

	Config *Config
}

// NewSamplerClient ──────────────────────────────────────────────────────────────
// NewSamplerClient
// ──────────────────────────────────────────────────────────────
//
// NewSamplerClient constructs a new instance of SamplerClient and validates
// connectivity via a health check.
//
// The Qdrant Go SDK creates lightweight gRPC connections, so this method
// performs an immediate health check to fail fast if the service is unreachable.
//
// Example:
//
//	client, _ := sampler.NewSamplerClient(sampler.SamplerParams{Config: cfg})
func NewSamplerClient(p SamplerParams) (*SamplerClient, error) {
	log.Printf("[Sampler] Connecting to endpoint: %s:%d", p.Config.Endpoint, p.Config.Port)

	// Set default port if not specified
	port := p.Config.Port
	if port == 0 {
		port = 6334
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   p.Config.Endpoint,
		Port:                   port,
		APIKey:                 p.Config.ApiKey,
		SkipCompatibilityCheck: !p.Config.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Sampler] failed to initialize client: %w", err)
	}

	sc := &SamplerClient{
		api:     client,
		cfg:     p.Config,
		started: true,
	}

	if err := sc.healthCheck(); err != nil {
		return nil, fmt.Errorf("[Sampler] health check failed: %w", err)
	}

	log.Println("[Sampler] Client connected successfully")
	return sc, nil
}

// ──────────────────────────────────────────────────────────────
// healthCheck
// ──────────────────────────────────────────────────────────────
//
// healthCheck verifies the availability of the Qdrant service
// by calling the `/healthz` endpoint through the SDK.
//
// It should be lightweight and fast — typically used during startup or readiness probes.
func (c *SamplerClient) healthCheck() error {
	if !c.started {
		return fmt.Errorf("[Sampler] client not started")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if c.api == nil {
		return fmt.Errorf("[Sampler] client not initialized")
	}

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("[Sampler] health check failed: %w", err)
	}

	log.Printf("[Sampler] Health check passed (title=%s, version=%s, endpoint=%s)", resp.Title, resp.Version, c.cfg.Endpoint)

	return nil
}

// Close tears down the underlying gRPC connection.
func (c *SamplerClient) Close() error {
	if c.api == nil {
		return nil
	}
	c.started = false
	return c.api.Close()
}
