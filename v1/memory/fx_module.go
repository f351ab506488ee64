package memory

import (
	"context"

	"go.uber.org/fx"

	"github.com/mindkeep-ai/mindkeep/v1/embedding"
)

// FXModule wires the memory service into Fx.
//
// It provides:
//   - *Config    (DefaultConfig)
//   - *Service   (NewService, backed by the embedding client and
//     whichever vectordb.Service implementation the app includes)
//
// The backing collection is created on startup.
var FXModule = fx.Module(
	"memory",

	fx.Provide(
		DefaultConfig,
		func(client *embedding.Client) Embedder { return client },
		NewService,
	),

	fx.Invoke(RegisterMemoryLifecycle),
)

// RegisterMemoryLifecycle ensures the backing collection exists before
// the application starts serving.
func RegisterMemoryLifecycle(lc fx.Lifecycle, svc *Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.Init(ctx)
		},
	})
}
