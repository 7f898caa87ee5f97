package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-marketplace/internal/infrastructure/database"
	"listing-marketplace/internal/storage"
)

func openBolt(t *testing.T, path string) *storage.BoltStore {
	t.Helper()
	db, err := database.OpenBolt(path, time.Second)
	require.NoError(t, err)
	store, err := storage.NewBoltStore(db)
	require.NoError(t, err)
	return store
}

func TestBoltStore(t *testing.T) {
	store := openBolt(t, filepath.Join(t.TempDir(), "listings.db"))
	defer store.Close()

	assert.Equal(t, "bolt", store.Name())
	exerciseStore(t, store)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "listings.db")
	ctx := context.Background()

	store := openBolt(t, path)
	require.NoError(t, store.Put(ctx, "electro_listings_v3", []byte(`[{"id":"42"}]`)))
	require.NoError(t, store.Close())

	reopened := openBolt(t, path)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "electro_listings_v3")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"42"}]`, string(got))
}

func TestBoltStore_PingAfterClose(t *testing.T) {
	store := openBolt(t, filepath.Join(t.TempDir(), "listings.db"))
	require.NoError(t, store.Close())

	assert.Error(t, store.Ping(context.Background()))
}

func TestOpen_Bolt(t *testing.T) {
	store, err := storage.Open(context.Background(), storage.Options{
		Backend:         storage.BackendBolt,
		BoltPath:        filepath.Join(t.TempDir(), "open.db"),
		BoltLockTimeout: time.Second,
	})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, storage.BackendBolt, store.Name())
}
