package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cast"

	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/filter"
	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/metrics"
	"listing-marketplace/internal/repository"
	"listing-marketplace/internal/validator"
)

// ListingOptions holds the defaults applied to submitted drafts.
type ListingOptions struct {
	DefaultLocation   string
	DefaultSellerName string
}

// ListingService handles browsing and submitting listings.
type ListingService struct {
	repo      repository.ListingRepository
	validator *validator.Validator
	ids       IDGenerator
	policy    domain.CategoryPolicy
	opts      ListingOptions
}

// NewListingService creates a new ListingService. Empty options fall back to
// the domain defaults.
func NewListingService(
	repo repository.ListingRepository,
	v *validator.Validator,
	ids IDGenerator,
	policy domain.CategoryPolicy,
	opts ListingOptions,
) *ListingService {
	if opts.DefaultLocation == "" {
		opts.DefaultLocation = domain.DefaultLocation
	}
	if opts.DefaultSellerName == "" {
		opts.DefaultSellerName = domain.DefaultSellerName
	}
	return &ListingService{
		repo:      repo,
		validator: v,
		ids:       ids,
		policy:    policy,
		opts:      opts,
	}
}

// Browse loads the store and filters it. An empty category matches all.
func (s *ListingService) Browse(ctx context.Context, query, category string) []domain.Listing {
	if category == "" {
		category = domain.AllCategories
	}
	return filter.Filter(s.repo.Load(ctx), query, category)
}

// Get returns the listing with the given id.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	for _, l := range s.repo.Load(ctx) {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// Submit validates the draft, derives the listing fields and appends it.
// Nothing is written when validation fails.
func (s *ListingService) Submit(ctx context.Context, draft domain.Draft) (*domain.Listing, error) {
	if err := s.validator.ValidateDraft(&draft); err != nil {
		metrics.ObserveSubmission(submissionResult(err))
		logger.InfoContext(ctx, "Submission rejected", slog.String("error", err.Error()))
		return nil, err
	}

	listing := domain.Listing{
		ID:          s.ids.NextID(),
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Price:       coercePrice(draft.Price),
		Category:    draft.Category,
		Location:    orDefault(draft.Location, s.opts.DefaultLocation),
		CreatedAt:   domain.CreatedAtJustNow,
		ImageURL:    draft.ImageURL,
		SellerName:  orDefault(draft.SellerName, s.opts.DefaultSellerName),
	}

	if _, err := s.repo.Append(ctx, listing); err != nil {
		metrics.ObserveSubmission("storage_error")
		logger.ErrorContext(ctx, "Failed to persist listing",
			slog.String("listing_id", listing.ID),
			slog.String("error", err.Error()))
		return nil, err
	}

	metrics.ObserveSubmission("created")
	logger.InfoContext(ctx, "Listing created",
		slog.String("listing_id", listing.ID),
		slog.String("category", listing.Category))
	return &listing, nil
}

// Categories lists every category with its availability.
func (s *ListingService) Categories() []domain.CategoryStatus {
	return s.policy.Statuses()
}

// coercePrice parses the raw price text. Anything that is not a finite,
// non-negative number becomes the negotiable price.
func coercePrice(raw string) float64 {
	v, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return domain.NegotiablePrice
	}
	return v
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func submissionResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingImage):
		return "missing_image"
	case errors.Is(err, domain.ErrNotAnImage):
		return "invalid_image"
	case errors.Is(err, domain.ErrCategoryUnavailable):
		return "category_unavailable"
	case errors.Is(err, domain.ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, domain.ErrMissingTitle):
		return "missing_title"
	case errors.Is(err, domain.ErrMissingDescription):
		return "missing_description"
	default:
		return "invalid"
	}
}
