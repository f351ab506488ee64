// Package qdrant provides a REST client for the Qdrant vector database
// implementing the [vectordb.Service] interface.
//
// The client is a thin wrapper around the Qdrant HTTP API: collection
// management, batched upserts, similarity search, counting, and deletion
// by ID or by filter. Completed filter values from the
// [github.com/mindkeep-ai/mindkeep/v1/filter] package serialize verbatim
// into the "filter" field of each request body; this package never
// constructs or validates filters itself.
//
// # Basic Usage
//
//	client, err := qdrant.NewClient(qdrant.Params{
//	    Config: qdrant.FromBaseURL("http://localhost:6333"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.EnsureCollection(ctx, "memories", 1536); err != nil {
//	    log.Fatal(err)
//	}
//
//	f, _ := filter.NewBuilder().
//	    Where("category").Equals("preference").
//	    Where("importance").GreaterThanOrEqual(5).
//	    Build()
//
//	results, err := client.Search(ctx, vectordb.SearchRequest{
//	    Collection: "memories",
//	    Vector:     queryVector,
//	    Limit:      10,
//	    Filter:     f,
//	})
//
// # Observability
//
// Pass a prometheus.Registerer in [Params] to export per-operation
// request counters and latency histograms. Logging goes through the
// shared [logger.Logger]; omit it for silence.
//
// # FX Module Integration
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    // other modules...
//	)
//
// # Thread Safety
//
// All exported methods are safe for concurrent use by multiple
// goroutines.
package qdrant
