package repository

import (
	"context"

	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/metrics"
)

// ListingRepository defines methods for the persisted listing collection.
type ListingRepository interface {
	// Load returns the stored listings, newest first. Missing or corrupt
	// data yields an empty collection; Load never fails.
	Load(ctx context.Context) []domain.Listing
	// Save replaces the whole collection atomically.
	Save(ctx context.Context, listings []domain.Listing) error
	// Append prepends a listing and persists the new collection.
	Append(ctx context.Context, listing domain.Listing) ([]domain.Listing, error)
	// Stats reports the size of the persisted collection.
	Stats(ctx context.Context) (metrics.StoreStats, error)
}
