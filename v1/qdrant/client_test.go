package qdrant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
	"github.com/mindkeep-ai/mindkeep/v1/vectordb"
)

// newTestClient spins up an httptest server with the given extra routes
// and returns a connected client. The /healthz probe is always answered.
func newTestClient(t *testing.T, routes map[string]http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewClient(Params{Config: FromBaseURL(srv.URL)})
	require.NoError(t, err)
	return client
}

func writeResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	data, err := json.Marshal(result)
	assert.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"result":` + string(data) + `,"status":"ok","time":0.001}`))
}

func TestNewClient_HealthCheckFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(Params{Config: FromBaseURL(srv.URL)})
	require.Error(t, err)
}

func TestSearch_SendsFilterVerbatim(t *testing.T) {
	var captured []byte
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections/memories/points/search": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)
			captured = body
			writeResult(t, w, []scoredPoint{
				{ID: "11111111-2222-3333-4444-555555555555", Score: 0.97, Payload: map[string]any{"content": "hello"}},
				{ID: float64(42), Score: 0.83},
			})
		},
	})

	f, err := filter.NewBuilder().
		Where("category").Equals("preference").
		Where("importance").InRange(5, 10).
		Build()
	require.NoError(t, err)

	results, err := client.Search(context.Background(), vectordb.SearchRequest{
		Collection: "memories",
		Vector:     []float32{0.1, 0.2},
		Limit:      10,
		Filter:     f,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", results[0].ID)
	assert.Equal(t, "42", results[1].ID)
	assert.Equal(t, "memories", results[0].Collection)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(captured, &body))

	// The filter rides along exactly as the filter package serializes it.
	want, err := filter.Serialize(f)
	require.NoError(t, err)
	assert.JSONEq(t, want, string(body["filter"]))
	assert.JSONEq(t, `10`, string(body["limit"]))
}

func TestSearch_OmitsNilFilter(t *testing.T) {
	var captured []byte
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections/memories/points/search": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			captured = body
			writeResult(t, w, []scoredPoint{})
		},
	})

	_, err := client.Search(context.Background(), vectordb.SearchRequest{
		Collection: "memories",
		Vector:     []float32{0.1},
		Limit:      5,
	})
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(captured, &body))
	_, hasFilter := body["filter"]
	assert.False(t, hasFilter, "nil filter must be omitted from the request body")
}

func TestSearch_InvalidInput(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := client.Search(context.Background(), vectordb.SearchRequest{Collection: "", Vector: []float32{1}, Limit: 1})
	assert.Error(t, err)

	_, err = client.Search(context.Background(), vectordb.SearchRequest{Collection: "c", Vector: nil, Limit: 1})
	assert.Error(t, err)

	_, err = client.Search(context.Background(), vectordb.SearchRequest{Collection: "c", Vector: []float32{1}, Limit: 0})
	assert.Error(t, err)
}

func TestCount_WithFilter(t *testing.T) {
	var captured []byte
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections/memories/points/count": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			captured = body
			writeResult(t, w, countResult{Count: 7})
		},
	})

	count, err := client.Count(context.Background(), "memories", filter.NewEqualityFilter("user_id", "u-1"))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), count)

	assert.JSONEq(t,
		`{"filter":{"match":{"key":"user_id","value":"u-1"}},"exact":true}`,
		string(captured))
}

func TestUpsert_Batches(t *testing.T) {
	var requests [][]byte
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections/memories/points": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "true", r.URL.Query().Get("wait"))
			body, _ := io.ReadAll(r.Body)
			requests = append(requests, body)
			writeResult(t, w, map[string]any{"status": "acknowledged"})
		},
	})

	points := make([]vectordb.PointInput, 450)
	for i := range points {
		points[i] = vectordb.PointInput{ID: "p", Vector: []float32{1}}
	}

	require.NoError(t, client.Upsert(context.Background(), "memories", points))
	require.Len(t, requests, 3)

	var body upsertBody
	require.NoError(t, json.Unmarshal(requests[2], &body))
	assert.Len(t, body.Points, 50)
}

func TestDeleteByFilter(t *testing.T) {
	var captured []byte
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections/memories/points/delete": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			captured = body
			writeResult(t, w, map[string]any{"status": "acknowledged"})
		},
	})

	f := filter.Negate(filter.NewEqualityFilter("pinned", true))
	require.NoError(t, client.DeleteByFilter(context.Background(), "memories", f))

	assert.JSONEq(t,
		`{"filter":{"must_not":[{"match":{"key":"pinned","value":true}}]}}`,
		string(captured))
}

func TestDeleteByFilter_RejectsEmptyFilter(t *testing.T) {
	client := newTestClient(t, nil)

	assert.Error(t, client.DeleteByFilter(context.Background(), "memories", nil))
	assert.Error(t, client.DeleteByFilter(context.Background(), "memories", &filter.And{}))
}

func TestDelete_ByIDs(t *testing.T) {
	var captured []byte
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections/memories/points/delete": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			captured = body
			writeResult(t, w, map[string]any{"status": "acknowledged"})
		},
	})

	require.NoError(t, client.Delete(context.Background(), "memories", []string{"a", "b"}))
	assert.JSONEq(t, `{"points":["a","b"]}`, string(captured))
}

func TestEnsureCollection_CreatesWhenMissing(t *testing.T) {
	created := false
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections": func(w http.ResponseWriter, r *http.Request) {
			writeResult(t, w, collectionsList{})
		},
		"/collections/memories": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"vectors":{"size":1536,"distance":"Cosine"}}`, string(body))
			created = true
			writeResult(t, w, true)
		},
	})

	require.NoError(t, client.EnsureCollection(context.Background(), "memories", 1536))
	assert.True(t, created)
}

func TestEnsureCollection_NoOpWhenPresent(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections": func(w http.ResponseWriter, r *http.Request) {
			writeResult(t, w, map[string]any{"collections": []map[string]string{{"name": "memories"}}})
		},
		"/collections/memories": func(w http.ResponseWriter, r *http.Request) {
			t.Error("create must not be called when the collection exists")
		},
	})

	require.NoError(t, client.EnsureCollection(context.Background(), "memories", 1536))
}

func TestGetCollection(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections/memories": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"result": {
					"status": "green",
					"points_count": 128,
					"config": {"params": {"vectors": {"size": 1536, "distance": "Cosine"}}}
				},
				"status": "ok",
				"time": 0.001
			}`))
		},
	})

	col, err := client.GetCollection(context.Background(), "memories")
	require.NoError(t, err)
	assert.Equal(t, "memories", col.Name)
	assert.Equal(t, "green", col.Status)
	assert.Equal(t, 1536, col.VectorSize)
	assert.Equal(t, "Cosine", col.Distance)
	assert.Equal(t, uint64(128), col.Points)
}

func TestAPIErrorSurfaces(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/collections/memories/points/count": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":{"error":"malformed filter"},"time":0}`))
		},
	})

	_, err := client.Count(context.Background(), "memories", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed filter")
}
