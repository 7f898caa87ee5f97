package validator

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"listing-marketplace/internal/domain"
)

var validCategories = func() []interface{} {
	out := make([]interface{}, len(domain.ValidCategories))
	for i, c := range domain.ValidCategories {
		out[i] = c
	}
	return out
}()

// FieldError names the draft field that failed and wraps the domain error.
type FieldError struct {
	Field  string
	Err    error
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validator provides validation methods for submission drafts.
type Validator struct {
	policy domain.CategoryPolicy
}

// NewValidator creates a new Validator using the category policy.
func NewValidator(policy domain.CategoryPolicy) *Validator {
	return &Validator{policy: policy}
}

type check struct {
	field string
	value interface{}
	err   error
	rules []validation.Rule
}

// ValidateDraft checks a draft rule by rule and returns the first failure as
// a *FieldError wrapping the matching domain error.
func (v *Validator) ValidateDraft(d *domain.Draft) error {
	checks := []check{
		{"imageUrl", d.ImageURL, domain.ErrMissingImage, []validation.Rule{
			validation.Required.Error("image_required"),
		}},
		{"category", d.Category, domain.ErrCategoryUnavailable, []validation.Rule{
			validation.By(v.categoryOpen),
		}},
		{"category", d.Category, domain.ErrUnknownCategory, []validation.Rule{
			validation.Required.Error("category_required"),
			validation.In(validCategories...).Error("invalid_category"),
		}},
		{"imageUrl", d.ImageURL, domain.ErrNotAnImage, []validation.Rule{
			validation.By(dataURIOrURL),
		}},
		{"title", strings.TrimSpace(d.Title), domain.ErrMissingTitle, []validation.Rule{
			validation.Required.Error("title_required"),
		}},
		{"description", strings.TrimSpace(d.Description), domain.ErrMissingDescription, []validation.Rule{
			validation.Required.Error("description_required"),
		}},
	}

	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return &FieldError{Field: c.field, Err: c.err, Reason: err.Error()}
		}
	}
	return nil
}

func (v *Validator) categoryOpen(value interface{}) error {
	s, _ := value.(string)
	if v.policy.IsDisabled(s) {
		return validation.NewError("category_unavailable", "category_unavailable")
	}
	return nil
}

var (
	dataURIHeader = regexp.MustCompile(`^data:image/[A-Za-z0-9.+-]+;base64$`)
	base64Prefix  = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
)

// payloadPrefix bounds how much of a data URI payload is inspected.
const payloadPrefix = 256

// dataURIOrURL accepts an absolute URL or a base64 data URI with an image
// MIME type. Only the head of a data URI payload is checked.
func dataURIOrURL(value interface{}) error {
	s, _ := value.(string)
	if strings.HasPrefix(s, "data:") {
		header, payload, found := strings.Cut(s, ",")
		if !found || validation.Validate(header, validation.Match(dataURIHeader)) != nil {
			return validation.NewError("invalid_data_uri", "invalid_data_uri")
		}
		head := payload
		if len(head) > payloadPrefix {
			head = head[:payloadPrefix]
		}
		if payload == "" || len(payload)%4 != 0 || !base64Prefix.MatchString(head) {
			return validation.NewError("invalid_data_uri", "invalid_data_uri")
		}
		return nil
	}
	if err := is.URL.Validate(s); err != nil {
		return validation.NewError("invalid_image_url", "invalid_image_url")
	}
	return nil
}
