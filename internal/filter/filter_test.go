package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-marketplace/internal/domain"
)

func sampleStore() []domain.Listing {
	return []domain.Listing{
		{ID: "1", Title: "PS5 Pro", Category: domain.CategorySonyAccounts, Price: 1200, Description: "Digital edition"},
		{ID: "2", Title: "Controller", Category: domain.CategoryAccessories, Price: 0, Description: "DualSense, like new"},
	}
}

func catalog() []domain.Listing {
	return []domain.Listing{
		{ID: "5", Title: "Sony account level 300", Category: domain.CategorySonyAccounts, Description: "rare skins"},
		{ID: "4", Title: "PS4 Slim", Category: domain.CategoryPlayStationDevices, Description: "works fine, SONY box"},
		{ID: "3", Title: "DualSense Edge", Category: domain.CategoryControllers, Description: "barely used"},
		{ID: "2", Title: "Elden Ring", Category: domain.CategoryGames, Description: "disc version"},
		{ID: "1", Title: "Charging dock", Category: domain.CategoryAccessories, Description: "for two controllers"},
	}
}

func ids(listings []domain.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestFilter_Scenario(t *testing.T) {
	store := sampleStore()

	t.Run("query matches title", func(t *testing.T) {
		got := Filter(store, "ps5", domain.AllCategories)
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("category matches exactly", func(t *testing.T) {
		got := Filter(store, "", domain.CategorySonyAccounts)
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("disabled category still filters existing listings", func(t *testing.T) {
		got := Filter(store, "", domain.CategoryAccessories)
		assert.Equal(t, []string{"2"}, ids(got))
	})
}

func TestFilter_Identity(t *testing.T) {
	store := catalog()

	got := Filter(store, "", domain.AllCategories)

	assert.Equal(t, store, got)
}

func TestFilter_Idempotent(t *testing.T) {
	store := catalog()
	queries := []string{"", "sony", "PS", "used", "zzz"}
	categories := append([]string{domain.AllCategories}, domain.ValidCategories...)

	for _, q := range queries {
		for _, c := range categories {
			once := Filter(store, q, c)
			twice := Filter(once, q, c)
			assert.Equal(t, once, twice, "query=%q category=%q", q, c)
		}
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	store := catalog()

	upper := Filter(store, "SONY", domain.AllCategories)
	lower := Filter(store, "sony", domain.AllCategories)

	assert.Equal(t, upper, lower)
	// title match and description match, in input order
	assert.Equal(t, []string{"5", "4"}, ids(lower))
}

func TestFilter_MatchesDescription(t *testing.T) {
	got := Filter(catalog(), "barely", domain.AllCategories)
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestFilter_PredicatesAreANDed(t *testing.T) {
	store := catalog()

	assert.Equal(t, []string{"4"}, ids(Filter(store, "sony", domain.CategoryPlayStationDevices)))
	assert.Empty(t, Filter(store, "sony", domain.CategoryGames))
}

func TestFilter_UnknownCategoryMatchesNothing(t *testing.T) {
	assert.Empty(t, Filter(catalog(), "", "Furniture"))
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	store := catalog()
	snapshot := append([]domain.Listing(nil), store...)

	got := Filter(store, "o", domain.AllCategories)

	assert.Equal(t, snapshot, store, "input must not be modified")
	require.NotEmpty(t, got)
	last := -1
	for _, l := range got {
		idx := -1
		for i, s := range store {
			if s.ID == l.ID {
				idx = i
			}
		}
		assert.Greater(t, idx, last, "relative order must be preserved")
		last = idx
	}
}

func TestFilter_UnicodeFolding(t *testing.T) {
	store := []domain.Listing{
		{ID: "1", Title: "Straße Edition", Category: domain.CategoryGames},
		{ID: "2", Title: "حساب سوني", Category: domain.CategorySonyAccounts},
	}

	assert.Equal(t, []string{"1"}, ids(Filter(store, "STRASSE", domain.AllCategories)))
	assert.Equal(t, []string{"2"}, ids(Filter(store, "سوني", domain.AllCategories)))
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, "anything", domain.AllCategories)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
