package service

import (
	"context"

	"listing-marketplace/internal/assist"
	"listing-marketplace/internal/domain"
)

// ListingServiceInterface defines the interface for listing operations.
// Used for dependency injection and mocking in tests.
type ListingServiceInterface interface {
	// Browse returns the listings matching the query and category, newest first.
	Browse(ctx context.Context, query, category string) []domain.Listing
	// Get returns a single listing by id.
	Get(ctx context.Context, id string) (*domain.Listing, error)
	// Submit validates a draft and appends the resulting listing to the store.
	Submit(ctx context.Context, draft domain.Draft) (*domain.Listing, error)
	// Categories lists every category with its availability for new submissions.
	Categories() []domain.CategoryStatus
}

// AssistServiceInterface defines the interface for description assist operations.
// Used for dependency injection and mocking in tests.
type AssistServiceInterface interface {
	// Enhance drafts a description synchronously. ok is false for an empty title.
	Enhance(ctx context.Context, title, category string) (text string, ok bool)
	// StartTask issues an asynchronous enhancement.
	StartTask(draftKey, title, category string) (assist.TaskSnapshot, error)
	// GetTask returns the current state of a task.
	GetTask(id string) (assist.TaskSnapshot, error)
	// DisposeTask discards a task and its result.
	DisposeTask(id string) error
}
