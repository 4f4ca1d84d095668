package inference

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/search-core/v1/logger"
	"github.com/Aleph-Alpha/search-core/v1/sampler"
)

// FXModule is an fx module that provides the inference Service.
// It binds the sampler client and the application logger to the local
// interfaces, so applications only need to supply configuration.
var FXModule = fx.Module("inference",
	fx.Provide(
		func(client *sampler.SamplerClient) DocumentSampler { return client },
		func(client *logger.LoggerClient) Logger { return client },
		NewService,
	),
)
