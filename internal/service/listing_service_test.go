package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/mocks"
	"listing-marketplace/internal/repository"
	"listing-marketplace/internal/service"
	"listing-marketplace/internal/storage"
	"listing-marketplace/internal/validator"
)

const testImage = "data:image/png;base64,iVBORw0KGgo="

type sequentialIDs struct {
	mu   sync.Mutex
	next int
}

func (s *sequentialIDs) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

func newService(t *testing.T) (*service.ListingService, *repository.KVListingRepository) {
	t.Helper()
	policy := domain.NewCategoryPolicy(domain.DefaultDisabledCategories)
	repo := repository.NewKVListingRepository(storage.NewMemoryStore(), "electro_listings_v3", 0)
	svc := service.NewListingService(repo, validator.NewValidator(policy), &sequentialIDs{}, policy, service.ListingOptions{})
	return svc, repo
}

func validDraft() domain.Draft {
	return domain.Draft{
		Title:       "PS5 Slim",
		Description: "Barely used, with box",
		Price:       "1800",
		Category:    domain.CategoryPlayStationDevices,
		ImageURL:    testImage,
	}
}

func TestListingService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates listing with derived fields", func(t *testing.T) {
		svc, repo := newService(t)

		listing, err := svc.Submit(ctx, validDraft())

		require.NoError(t, err)
		assert.Equal(t, "id-1", listing.ID)
		assert.Equal(t, "PS5 Slim", listing.Title)
		assert.Equal(t, float64(1800), listing.Price)
		assert.Equal(t, domain.DefaultLocation, listing.Location)
		assert.Equal(t, domain.DefaultSellerName, listing.SellerName)
		assert.Equal(t, domain.CreatedAtJustNow, listing.CreatedAt)
		assert.Equal(t, testImage, listing.ImageURL)

		stored := repo.Load(ctx)
		require.Len(t, stored, 1)
		assert.Equal(t, *listing, stored[0])
	})

	t.Run("non-numeric price becomes negotiable", func(t *testing.T) {
		svc, _ := newService(t)
		draft := validDraft()
		draft.Price = "abc"

		listing, err := svc.Submit(ctx, draft)

		require.NoError(t, err)
		assert.Equal(t, float64(0), listing.Price)
		assert.True(t, listing.IsNegotiable())
	})

	t.Run("keeps supplied location and seller", func(t *testing.T) {
		svc, _ := newService(t)
		draft := validDraft()
		draft.Location = "Jeddah"
		draft.SellerName = "Khalid"

		listing, err := svc.Submit(ctx, draft)

		require.NoError(t, err)
		assert.Equal(t, "Jeddah", listing.Location)
		assert.Equal(t, "Khalid", listing.SellerName)
	})

	t.Run("configured defaults apply", func(t *testing.T) {
		policy := domain.NewCategoryPolicy(nil)
		repo := repository.NewKVListingRepository(storage.NewMemoryStore(), "k", 0)
		svc := service.NewListingService(repo, validator.NewValidator(policy), &sequentialIDs{}, policy,
			service.ListingOptions{DefaultLocation: "Dammam", DefaultSellerName: "Guest"})

		listing, err := svc.Submit(ctx, validDraft())

		require.NoError(t, err)
		assert.Equal(t, "Dammam", listing.Location)
		assert.Equal(t, "Guest", listing.SellerName)
	})

	t.Run("newest first", func(t *testing.T) {
		svc, repo := newService(t)

		first, err := svc.Submit(ctx, validDraft())
		require.NoError(t, err)
		second, err := svc.Submit(ctx, validDraft())
		require.NoError(t, err)

		stored := repo.Load(ctx)
		require.Len(t, stored, 2)
		assert.Equal(t, second.ID, stored[0].ID)
		assert.Equal(t, first.ID, stored[1].ID)
	})
}

func TestListingService_SubmitValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(d *domain.Draft)
		wantErr error
	}{
		{"missing image", func(d *domain.Draft) { d.ImageURL = "" }, domain.ErrMissingImage},
		{"disabled category", func(d *domain.Draft) { d.Category = domain.CategoryAccessories }, domain.ErrCategoryUnavailable},
		{"unknown category", func(d *domain.Draft) { d.Category = "Phones" }, domain.ErrUnknownCategory},
		{"missing title", func(d *domain.Draft) { d.Title = "  " }, domain.ErrMissingTitle},
		{"missing description", func(d *domain.Draft) { d.Description = "" }, domain.ErrMissingDescription},
		{"image checked before category", func(d *domain.Draft) {
			d.ImageURL = ""
			d.Category = domain.CategoryAccessories
		}, domain.ErrMissingImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			_, err := svc.Submit(ctx, validDraft())
			require.NoError(t, err)

			draft := validDraft()
			tt.mutate(&draft)
			listing, err := svc.Submit(ctx, draft)

			assert.Nil(t, listing)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, domain.IsValidationError(err))
			assert.Len(t, repo.Load(ctx), 1, "store must be unchanged")
		})
	}
}

func TestListingService_SubmitStorageError(t *testing.T) {
	ctx := context.Background()
	policy := domain.NewCategoryPolicy(domain.DefaultDisabledCategories)
	mockRepo := mocks.NewMockListingRepository(t)

	mockRepo.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("domain.Listing")).
		Return(nil, fmt.Errorf("%w: quota exceeded", domain.ErrStorageWrite))

	svc := service.NewListingService(mockRepo, validator.NewValidator(policy), &sequentialIDs{}, policy, service.ListingOptions{})

	listing, err := svc.Submit(ctx, validDraft())

	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domain.ErrStorageWrite)
	assert.False(t, domain.IsValidationError(err))
}

func TestListingService_Browse(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	games := validDraft()
	games.Title = "God of War Ragnarok"
	games.Category = domain.CategoryGames
	_, err := svc.Submit(ctx, validDraft())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, games)
	require.NoError(t, err)

	assert.Len(t, svc.Browse(ctx, "", ""), 2)
	assert.Len(t, svc.Browse(ctx, "", domain.AllCategories), 2)

	got := svc.Browse(ctx, "god", "")
	require.Len(t, got, 1)
	assert.Equal(t, "God of War Ragnarok", got[0].Title)

	assert.Empty(t, svc.Browse(ctx, "god", domain.CategoryPlayStationDevices))
}

func TestListingService_Get(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.Submit(ctx, validDraft())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListingService_Categories(t *testing.T) {
	svc, _ := newService(t)

	statuses := svc.Categories()

	require.Len(t, statuses, len(domain.ValidCategories))
	for _, s := range statuses {
		assert.Equal(t, s.Name != domain.CategoryAccessories, s.Available, s.Name)
	}
}
