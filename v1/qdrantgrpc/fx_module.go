package qdrantgrpc

import (
	"context"

	"go.uber.org/fx"

	"github.com/mindkeep-ai/mindkeep/v1/vectordb"
)

// FXModule wires the Qdrant gRPC client into Fx.
//
// It provides:
//   - *Client              (NewClient)
//   - vectordb.Service     (the same client, by interface)
//   - Lifecycle hook       (RegisterClientLifecycle)
var FXModule = fx.Module(
	"qdrantgrpc",

	fx.Provide(
		NewClient,
		func(c *Client) vectordb.Service { return c },
	),

	fx.Invoke(RegisterClientLifecycle),
)

// RegisterClientLifecycle tears down the gRPC connection on shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
