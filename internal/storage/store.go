package storage

import (
	"context"
	"fmt"

	"focustube-backend/internal/config"
)

// Store is the key-value backend the tracking ledger and the API-key
// override persist into. One JSON document per named key, no
// transactions: callers own their read-modify-write sequences, which is
// safe because a single logical writer drives every key.
type Store interface {
	// Get returns the raw value and whether the key exists. A missing
	// key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Open builds the Store selected by configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StorageType {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.StoragePath)
	case "redis":
		return NewRedisStore(cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
}
