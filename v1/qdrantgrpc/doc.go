// Package qdrantgrpc provides a gRPC client for the Qdrant vector
// database implementing the [vectordb.Service] interface.
//
// It wraps the official Qdrant Go SDK and mirrors the REST client in
// v1/qdrant; the two are interchangeable behind [vectordb.Service].
// Pick this one when the deployment exposes the gRPC port (6334);
// batched writes and large result sets are noticeably cheaper over
// protobuf than over JSON.
//
// Filter trees from the [github.com/mindkeep-ai/mindkeep/v1/filter]
// package are converted into the SDK's protobuf conditions, preserving
// arbitrary nesting of must/should/must_not groups.
//
//	client, err := qdrantgrpc.NewClient(qdrantgrpc.Params{
//	    Config: qdrantgrpc.FromEndpoint("localhost"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, _ := filter.NewBuilder().
//	    Where("user_id").Equals("u-1").
//	    Where("importance").InRange(5, 10).
//	    Build()
//
//	count, err := client.Count(ctx, "memories", f)
package qdrantgrpc
