package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-marketplace/internal/storage"
)

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	store := storage.NewPostgresStore(SetupPostgres(t))
	defer store.Close()

	assert.Equal(t, "postgres", store.Name())
	exerciseStore(t, store)
}

func TestPostgresStore_StoresNonJSONVerbatim(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	store := storage.NewPostgresStore(SetupPostgres(t))
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "listings", []byte("{not json")))
	got, err := store.Get(ctx, "listings")
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(got))
}

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	store := storage.NewRedisStore(SetupRedis(t))
	defer store.Close()

	assert.Equal(t, "redis", store.Name())
	exerciseStore(t, store)
}

func TestMongoStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	store := storage.NewMongoStore(SetupMongo(t), "marketplace_test")
	defer store.Close()

	assert.Equal(t, "mongo", store.Name())
	exerciseStore(t, store)
}
