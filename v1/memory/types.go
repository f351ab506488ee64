package memory

import (
	"time"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
)

// Reserved payload keys managed by the service. User metadata may use
// any other key and is stored at the top level of the payload, so
// filters address metadata fields by their plain names.
const (
	payloadContent   = "content"
	payloadCreatedAt = "created_at"
)

// Memory is a stored piece of text with its metadata. Score is only
// populated on recall results.
type Memory struct {
	ID        string
	Content   string
	Metadata  map[string]any
	Score     float32
	CreatedAt time.Time
}

// SaveInput describes a memory to store. ID is optional; a UUID is
// generated when absent.
type SaveInput struct {
	ID       string
	Content  string
	Metadata map[string]any
}

// RecallOptions tune a recall query. The filter, when present, is
// passed through to the vector store untouched.
type RecallOptions struct {
	Filter         filter.Filter
	Limit          int
	ScoreThreshold float32
}

// Config holds collection settings for the memory service.
type Config struct {
	// Collection is the vector store collection memories live in.
	Collection string `yaml:"collection" env:"MEMORY_COLLECTION"`

	// VectorSize is the embedding dimension; must match the provider's
	// model.
	VectorSize uint64 `yaml:"vector_size" env:"MEMORY_VECTOR_SIZE"`

	// DefaultLimit is used when RecallOptions.Limit is zero.
	DefaultLimit int `yaml:"default_limit" env:"MEMORY_DEFAULT_LIMIT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Collection:   "memories",
		VectorSize:   1536,
		DefaultLimit: 10,
	}
}
