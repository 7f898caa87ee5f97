package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/metrics"
	"listing-marketplace/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KVListingRepository implements ListingRepository as a JSON array under a
// single key of a storage.KeyValueStore.
//
// Read-modify-write cycles are serialized within the process. Separate
// processes sharing one backend get last-writer-wins semantics.
type KVListingRepository struct {
	store storage.KeyValueStore
	key   string
	quota int

	mu sync.Mutex
}

// NewKVListingRepository creates a repository over store. A positive quota
// caps the encoded collection size in bytes.
func NewKVListingRepository(store storage.KeyValueStore, key string, quota int) *KVListingRepository {
	return &KVListingRepository{
		store: store,
		key:   key,
		quota: quota,
	}
}

// Load returns the stored listings, or an empty collection when the stored
// value is absent, unreadable, or corrupt.
func (r *KVListingRepository) Load(ctx context.Context) []domain.Listing {
	listings, err := r.read(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Recovered unreadable listing store as empty",
			slog.String("key", r.key),
			slog.String("error", err.Error()))
		return []domain.Listing{}
	}
	return listings
}

// Save encodes and writes the whole collection.
func (r *KVListingRepository) Save(ctx context.Context, listings []domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(ctx, listings)
}

// Append prepends listing to the stored collection and persists it.
// A corrupt stored value is replaced; a backend that cannot be read is left
// untouched so that a transient outage never wipes the collection.
func (r *KVListingRepository) Append(ctx context.Context, listing domain.Listing) ([]domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.read(ctx)
	if err != nil {
		if !errors.Is(err, errCorrupt) {
			return nil, fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
		}
		logger.WarnContext(ctx, "Replacing corrupt listing store",
			slog.String("key", r.key),
			slog.String("error", err.Error()))
		current = []domain.Listing{}
	}

	for _, l := range current {
		if l.ID == listing.ID {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrStorageWrite, domain.ErrDuplicateID, listing.ID)
		}
	}

	next := make([]domain.Listing, 0, len(current)+1)
	next = append(next, listing)
	next = append(next, current...)

	if err := r.write(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Stats reports the number of stored listings and the encoded size.
func (r *KVListingRepository) Stats(ctx context.Context) (metrics.StoreStats, error) {
	data, err := r.get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return metrics.StoreStats{}, nil
		}
		return metrics.StoreStats{}, err
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return metrics.StoreStats{Bytes: len(data)}, nil
	}
	return metrics.StoreStats{Listings: len(listings), Bytes: len(data)}, nil
}

var errCorrupt = errors.New("corrupt listing data")

// read distinguishes corrupt data (errCorrupt) from an unavailable backend.
// Both are wrapped in domain.ErrStorageRead.
func (r *KVListingRepository) read(ctx context.Context) ([]domain.Listing, error) {
	data, err := r.get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return []domain.Listing{}, nil
		}
		metrics.StorageReadErrors.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageRead, err)
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		metrics.StorageReadErrors.WithLabelValues("corrupt").Inc()
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrStorageRead, errCorrupt, err)
	}
	if listings == nil {
		// a stored JSON null
		listings = []domain.Listing{}
	}
	return listings, nil
}

func (r *KVListingRepository) write(ctx context.Context, listings []domain.Listing) error {
	if listings == nil {
		listings = []domain.Listing{}
	}

	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("%w: encode listings: %w", domain.ErrStorageWrite, err)
	}
	if r.quota > 0 && len(data) > r.quota {
		return fmt.Errorf("%w: quota exceeded (%d > %d bytes)", domain.ErrStorageWrite, len(data), r.quota)
	}

	timer := metrics.NewTimer()
	err = r.store.Put(ctx, r.key, data)
	metrics.ObserveStorageOperation(r.store.Name(), "put", err, timer.Seconds())
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}
	return nil
}

func (r *KVListingRepository) get(ctx context.Context) ([]byte, error) {
	timer := metrics.NewTimer()
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		metrics.ObserveStorageOperation(r.store.Name(), "get", nil, timer.Seconds())
	} else {
		metrics.ObserveStorageOperation(r.store.Name(), "get", err, timer.Seconds())
	}
	return data, err
}
