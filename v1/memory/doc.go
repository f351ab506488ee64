// Package memory is the high-level facade for storing and recalling
// semantic memories.
//
// A memory is a piece of text plus arbitrary metadata. Save embeds the
// text and writes it to the vector store; Recall embeds a query and
// returns the most similar memories, optionally narrowed by a payload
// filter built with the [github.com/mindkeep-ai/mindkeep/v1/filter]
// package. The service never inspects filters; they flow through to
// the store as opaque values.
//
//	svc, err := memory.NewService(memory.Params{
//	    Embedder: embeddingClient,
//	    Store:    qdrantClient,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	saved, err := svc.Save(ctx, memory.SaveInput{
//	    Content:  "the user prefers dark mode",
//	    Metadata: map[string]any{"category": "preference", "user_id": "u-1"},
//	})
//
//	f, _ := filter.NewBuilder().
//	    Where("category").Equals("preference").
//	    Where("user_id").Equals("u-1").
//	    Build()
//
//	hits, err := svc.Recall(ctx, "how does the user like the UI?", memory.RecallOptions{
//	    Filter: f,
//	    Limit:  5,
//	})
//
// Metadata keys live at the top level of the stored payload, so filter
// keys address them directly. The keys "content" and "created_at" are
// reserved for the service.
//
// Every operation opens an OpenTelemetry span; install the tracer
// package's FX module to export them.
package memory
