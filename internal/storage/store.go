// Package storage provides key/value backends for the persisted listing
// collection. Every backend writes a whole value in one atomic operation:
// a reader observes either the previous value or the new one, never a mix.
package storage

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendBolt     = "bolt"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

// ValidBackends contains all supported backend names.
var ValidBackends = []string{BackendBolt, BackendRedis, BackendPostgres, BackendMongo, BackendMemory}

// IsValidBackend checks if a backend name is supported.
func IsValidBackend(name string) bool {
	for _, b := range ValidBackends {
		if b == name {
			return true
		}
	}
	return false
}

// KeyValueStore is a durable store of opaque values under string keys.
// Get returns domain.ErrKeyNotFound when the key is absent.
type KeyValueStore interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

func wrapErr(backend, op string, err error) error {
	return fmt.Errorf("%s %s: %w", backend, op, err)
}
