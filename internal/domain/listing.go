package domain

const (
	// DefaultLocation is assigned when a draft leaves the location empty.
	DefaultLocation = "Riyadh"

	// DefaultSellerName is the placeholder seller for anonymous submissions.
	DefaultSellerName = "User"

	// CreatedAtJustNow is the display marker stamped on new listings.
	CreatedAtJustNow = "just now"

	// NegotiablePrice marks a listing whose price is open to offers.
	NegotiablePrice = 0
)

// Listing represents a classified-ad record in the store.
// The JSON layout is the persisted layout; field names must not change.
type Listing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	CreatedAt   string  `json:"createdAt"`
	ImageURL    string  `json:"imageUrl"`
	SellerName  string  `json:"sellerName"`
}

// IsNegotiable reports whether the price is the "negotiable" sentinel.
func (l Listing) IsNegotiable() bool {
	return l.Price == NegotiablePrice
}

// Draft is a listing under construction in the submission flow.
// Price is kept as raw user input and coerced on submission.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	SellerName  string `json:"sellerName"`
}
