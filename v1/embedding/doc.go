// Package embedding provides a unified, high-level API for computing
// text embeddings through an OpenAI-compatible inference service.
//
// Application code depends on *Client; the HTTP provider behind it is
// an implementation detail. One vector is returned per input text, in
// input order, as []float32 ready for storage in a vector database.
//
//	cfg := embedding.DefaultConfig()
//	cfg.Endpoint = "https://api.openai.com/v1"
//	cfg.APIKey = os.Getenv("EMBEDDING_API_KEY")
//
//	client, err := embedding.NewClient(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vector, err := client.EmbedOne(ctx, "the user prefers dark mode")
//
// Tests and custom backends can inject their own Provider via
// NewClientWithProvider.
package embedding
