package domain

// Category values.
const (
	CategorySonyAccounts       = "Sony Accounts"
	CategoryPlayStationDevices = "PlayStation Devices"
	CategoryControllers        = "Controllers"
	CategoryGames              = "Games"
	CategoryAccessories        = "Accessories"
)

// AllCategories is the filter sentinel that matches every category.
const AllCategories = "all"

// ValidCategories contains all valid listing categories in display order.
var ValidCategories = []string{
	CategorySonyAccounts,
	CategoryPlayStationDevices,
	CategoryControllers,
	CategoryGames,
	CategoryAccessories,
}

// DefaultDisabledCategories are closed for new submissions unless configured otherwise.
var DefaultDisabledCategories = []string{CategoryAccessories}

// IsValidCategory checks if a category is part of the enumeration.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryStatus describes one category as offered to clients.
type CategoryStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// CategoryPolicy is the single source of truth for which categories accept
// new submissions. Disabled categories stay valid for filtering.
type CategoryPolicy struct {
	disabled map[string]struct{}
}

// NewCategoryPolicy creates a policy with the given categories disabled.
func NewCategoryPolicy(disabled []string) CategoryPolicy {
	p := CategoryPolicy{disabled: make(map[string]struct{}, len(disabled))}
	for _, c := range disabled {
		p.disabled[c] = struct{}{}
	}
	return p
}

// IsDisabled reports whether new submissions are refused for the category.
func (p CategoryPolicy) IsDisabled(category string) bool {
	_, ok := p.disabled[category]
	return ok
}

// Disabled returns the disabled categories in enumeration order.
func (p CategoryPolicy) Disabled() []string {
	out := make([]string, 0, len(p.disabled))
	for _, c := range ValidCategories {
		if p.IsDisabled(c) {
			out = append(out, c)
		}
	}
	return out
}

// Statuses lists every category with its availability.
func (p CategoryPolicy) Statuses() []CategoryStatus {
	out := make([]CategoryStatus, 0, len(ValidCategories))
	for _, c := range ValidCategories {
		out = append(out, CategoryStatus{Name: c, Available: !p.IsDisabled(c)})
	}
	return out
}
