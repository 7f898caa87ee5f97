package filter

import (
	"fmt"
	"testing"

	"listing-marketplace/internal/domain"
)

func benchListings(n int) []domain.Listing {
	out := make([]domain.Listing, n)
	for i := range out {
		out[i] = domain.Listing{
			ID:          fmt.Sprintf("%d", i),
			Title:       fmt.Sprintf("PlayStation 5 bundle #%d", i),
			Description: "Two controllers, original box, warranty until next year",
			Category:    domain.ValidCategories[i%len(domain.ValidCategories)],
		}
	}
	return out
}

func BenchmarkFilterQuery1000(b *testing.B) {
	listings := benchListings(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Filter(listings, "warranty", domain.AllCategories)
	}
}

func BenchmarkFilterCategoryOnly1000(b *testing.B) {
	listings := benchListings(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Filter(listings, "", domain.CategoryGames)
	}
}

func BenchmarkFilterNoMatch1000(b *testing.B) {
	listings := benchListings(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Filter(listings, "xbox", domain.AllCategories)
	}
}
