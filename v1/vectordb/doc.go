// Package vectordb defines the backend-agnostic contract between the
// memory layer and a vector store: the [Service] interface plus the
// transport-independent request and result types.
//
// Two implementations ship with this module:
//
//   - [github.com/mindkeep-ai/mindkeep/v1/qdrant]: REST transport; filters
//     serialize verbatim into the JSON request body
//   - [github.com/mindkeep-ai/mindkeep/v1/qdrantgrpc]: gRPC transport over
//     the official Qdrant client
//
// For testing, depend on the [Service] interface and substitute a fake:
//
//	type fakeStore struct{ vectordb.Service }
//
//	func (f *fakeStore) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
//	    return []vectordb.SearchResult{{ID: "mem-1", Score: 0.97}}, nil
//	}
package vectordb
