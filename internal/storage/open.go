package storage

import (
	"context"
	"fmt"
	"time"

	"listing-marketplace/internal/infrastructure/database"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend string

	BoltPath        string
	BoltLockTimeout time.Duration

	Redis database.RedisConfig

	Postgres database.PoolConfig

	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration
}

// Open connects the configured backend.
func Open(ctx context.Context, opts Options) (KeyValueStore, error) {
	switch opts.Backend {
	case BackendBolt:
		db, err := database.OpenBolt(opts.BoltPath, opts.BoltLockTimeout)
		if err != nil {
			return nil, err
		}
		store, err := NewBoltStore(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return store, nil

	case BackendRedis:
		client, err := database.NewRedis(ctx, opts.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil

	case BackendPostgres:
		pool, err := database.NewPostgres(ctx, opts.Postgres)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool), nil

	case BackendMongo:
		client, err := database.NewMongo(ctx, opts.MongoURI, opts.MongoConnectTimeout)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(client, opts.MongoDatabase), nil

	case BackendMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
