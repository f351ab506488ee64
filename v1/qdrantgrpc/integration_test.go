package qdrantgrpc

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
	"github.com/mindkeep-ai/mindkeep/v1/vectordb"
)

// qdrantContainer represents a Qdrant container for testing
type qdrantContainer struct {
	testcontainers.Container
	Host string
	Port string
}

// setupQdrantContainer starts a Qdrant container exposing the gRPC port
func setupQdrantContainer(ctx context.Context) (*qdrantContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.11.0",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	instance, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := instance.Host(ctx)
	if err != nil {
		_ = instance.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := instance.MappedPort(ctx, "6334")
	if err != nil {
		_ = instance.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	portStr = mappedPort.Port()
	if err := waitForReady(host, portStr, 30*time.Second); err != nil {
		_ = instance.Terminate(ctx)
		return nil, fmt.Errorf("qdrant container not ready: %w", err)
	}

	return &qdrantContainer{Container: instance, Host: host, Port: portStr}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer addr.Close()

	return addr.Addr().(*net.TCPAddr).Port, nil
}

// waitForReady polls the gRPC port until it accepts connections
func waitForReady(host, port string, timeout time.Duration) error {
	startTime := time.Now()
	for {
		if time.Since(startTime) > timeout {
			return fmt.Errorf("timed out waiting for Qdrant to be ready after %s", timeout)
		}

		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 2*time.Second)
		if err == nil {
			_ = conn.Close()
			// Additional wait to ensure the service is fully ready
			time.Sleep(2 * time.Second)
			return nil
		}

		time.Sleep(500 * time.Millisecond)
	}
}

// TestQdrantGrpcWithFXModule wires the client through the FX module and
// runs the full vectordb.Service surface against a real instance.
func TestQdrantGrpcWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	t.Logf("Using Qdrant on %s:%s", containerInstance.Host, containerInstance.Port)

	portNum, err := strconv.Atoi(containerInstance.Port)
	require.NoError(t, err)

	var client *Client
	var svc vectordb.Service

	app := fxtest.New(t,
		fx.Provide(
			func() Params {
				return Params{Config: &Config{
					Endpoint:           containerInstance.Host,
					Port:               portNum,
					CheckCompatibility: false,
					Timeout:            10 * time.Second,
					Distance:           "Cosine",
				}}
			},
		),
		FXModule,
		fx.Populate(&client, &svc),
	)

	require.NoError(t, app.Start(ctx))
	require.NotNil(t, client)
	require.NotNil(t, svc)
	require.NoError(t, client.healthCheck())

	t.Run("EnsureCollection", func(t *testing.T) {
		// First call creates, second is idempotent
		assert.NoError(t, svc.EnsureCollection(ctx, "test_collection_1", 64))
		assert.NoError(t, svc.EnsureCollection(ctx, "test_collection_1", 64))
		assert.Error(t, svc.EnsureCollection(ctx, "", 64))
	})

	t.Run("UpsertSearchDelete", func(t *testing.T) {
		collection := "test_crud"
		require.NoError(t, svc.EnsureCollection(ctx, collection, 64))

		point := vectordb.PointInput{
			ID:     "00000000-0000-0000-0000-000000000001",
			Vector: generateVector(64),
			Payload: map[string]any{
				"content":  "This is a test document",
				"category": "test",
			},
		}
		require.NoError(t, svc.Upsert(ctx, collection, []vectordb.PointInput{point}))

		time.Sleep(1 * time.Second) // Allow time for indexing
		results, err := svc.Search(ctx, vectordb.SearchRequest{
			Collection: collection,
			Vector:     point.Vector,
			Limit:      5,
		})
		assert.NoError(t, err)
		require.Greater(t, len(results), 0)
		assert.Equal(t, point.ID, results[0].ID)
		assert.Greater(t, results[0].Score, float32(0.9))
		assert.Equal(t, "This is a test document", results[0].Payload["content"])

		assert.NoError(t, svc.Delete(ctx, collection, []string{point.ID}))
	})

	t.Run("FilteredSearchAndCount", func(t *testing.T) {
		collection := "test_filters"
		require.NoError(t, svc.EnsureCollection(ctx, collection, 64))

		points := make([]vectordb.PointInput, 6)
		for i := range points {
			category := "note"
			if i%2 == 0 {
				category = "preference"
			}
			points[i] = vectordb.PointInput{
				ID:     fmt.Sprintf("00000000-0000-0000-0001-%012d", i+1),
				Vector: generateVector(64),
				Payload: map[string]any{
					"category":   category,
					"importance": int64(i),
				},
			}
		}
		require.NoError(t, svc.Upsert(ctx, collection, points))
		time.Sleep(1 * time.Second)

		f, err := filter.NewBuilder().
			Where("category").Equals("preference").
			Where("importance").GreaterThanOrEqual(2).
			Build()
		require.NoError(t, err)

		// IDs 3 and 5 carry category=preference with importance 2 and 4
		count, err := svc.Count(ctx, collection, f)
		assert.NoError(t, err)
		assert.Equal(t, uint64(2), count)

		results, err := svc.Search(ctx, vectordb.SearchRequest{
			Collection: collection,
			Vector:     points[0].Vector,
			Limit:      10,
			Filter:     f,
		})
		assert.NoError(t, err)
		assert.Len(t, results, 2)
		for _, r := range results {
			assert.Equal(t, "preference", r.Payload["category"])
		}
	})

	t.Run("DeleteByFilter", func(t *testing.T) {
		collection := "test_delete_by_filter"
		require.NoError(t, svc.EnsureCollection(ctx, collection, 64))

		points := []vectordb.PointInput{
			{ID: "00000000-0000-0000-0002-000000000001", Vector: generateVector(64), Payload: map[string]any{"archived": true}},
			{ID: "00000000-0000-0000-0002-000000000002", Vector: generateVector(64), Payload: map[string]any{"archived": false}},
		}
		require.NoError(t, svc.Upsert(ctx, collection, points))
		time.Sleep(1 * time.Second)

		assert.Error(t, svc.DeleteByFilter(ctx, collection, nil))

		require.NoError(t, svc.DeleteByFilter(ctx, collection,
			filter.NewEqualityFilter("archived", true)))
		time.Sleep(1 * time.Second)

		remaining, err := svc.Count(ctx, collection, nil)
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), remaining)
	})

	t.Run("GetCollection", func(t *testing.T) {
		col, err := svc.GetCollection(ctx, "test_collection_1")
		assert.NoError(t, err)
		require.NotNil(t, col)
		assert.Equal(t, "test_collection_1", col.Name)
		assert.Equal(t, 64, col.VectorSize)
		assert.Equal(t, "Cosine", col.Distance)
	})

	require.NoError(t, app.Stop(ctx))
}

// TestQdrantGrpcErrorHandling tests error scenarios
func TestQdrantGrpcErrorHandling(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	portNum, err := strconv.Atoi(containerInstance.Port)
	require.NoError(t, err)

	client, err := NewClient(Params{Config: &Config{
		Endpoint:           containerInstance.Host,
		Port:               portNum,
		CheckCompatibility: false,
		Timeout:            10 * time.Second,
	}})
	require.NoError(t, err)
	defer client.Close()

	t.Run("InvalidEndpoint", func(t *testing.T) {
		_, err := NewClient(Params{Config: &Config{
			Endpoint:           "invalid-host",
			Port:               9999,
			CheckCompatibility: false,
			Timeout:            2 * time.Second,
		}})
		assert.Error(t, err)
	})

	t.Run("SearchOnNonExistentCollection", func(t *testing.T) {
		_, err := client.Search(ctx, vectordb.SearchRequest{
			Collection: "non_existent_collection",
			Vector:     generateVector(64),
			Limit:      5,
		})
		assert.Error(t, err)
	})

	t.Run("EmptyCollectionName", func(t *testing.T) {
		err := client.EnsureCollection(ctx, "", 64)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "collection name cannot be empty")
	})
}

// generateVector produces a deterministic test vector
func generateVector(size int) []float32 {
	vector := make([]float32, size)
	for i := range vector {
		vector[i] = float32(i%100) / 100.0
	}
	return vector
}
