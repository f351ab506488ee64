package embedding

import "context"

// Provider contract
type Provider interface {
	// Embed generates one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
