// Package filter derives the browsable view of the listing collection.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"listing-marketplace/internal/domain"
)

// Filter returns the listings whose title or description contains query
// (case-insensitively) and whose category equals category. An empty query
// and the domain.AllCategories sentinel match everything.
//
// Filter is pure: the input is not modified and matches keep their
// relative order.
func Filter(listings []domain.Listing, query, category string) []domain.Listing {
	// a Caser is not safe for concurrent use
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if !matchesCategory(l, category) {
			continue
		}
		if needle != "" && !containsFolded(fold, l.Title, needle) && !containsFolded(fold, l.Description, needle) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesCategory(l domain.Listing, category string) bool {
	return category == domain.AllCategories || l.Category == category
}

func containsFolded(fold cases.Caser, haystack, needle string) bool {
	return strings.Contains(fold.String(haystack), needle)
}
