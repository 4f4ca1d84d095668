package sampler

import (
	"context"

	"go.uber.org/fx"
)

// FXModule is an fx module that provides the payload sampler component.
// It registers the SamplerClient constructor for dependency injection
// and sets up a lifecycle hook to close the gRPC connection on shutdown.
var FXModule = fx.Module("sampler",
	fx.Provide(
		NewSamplerClient,
	),
	fx.Invoke(RegisterSamplerLifecycle),
)

// RegisterSamplerLifecycle registers a lifecycle hook that closes the
// underlying Qdrant connection when the application stops.
func RegisterSamplerLifecycle(lc fx.Lifecycle, client *SamplerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
