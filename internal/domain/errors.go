package domain

import "errors"

// Submission validation errors. The first failing rule wins.
var (
	ErrMissingImage        = errors.New("image is required")
	ErrCategoryUnavailable = errors.New("category is not accepting new listings")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrMissingTitle        = errors.New("title is required")
	ErrMissingDescription  = errors.New("description is required")
)

// Image input errors.
var (
	ErrImageTooLarge = errors.New("image exceeds maximum size")
	ErrNotAnImage    = errors.New("file is not an image")
)

// Storage errors.
var (
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
	ErrDuplicateID  = errors.New("listing id already exists")
	ErrKeyNotFound  = errors.New("key not found")
)

// ErrListingNotFound is returned when no listing has the requested id.
var ErrListingNotFound = errors.New("listing not found")

// Assist errors.
var (
	ErrEnhancement  = errors.New("description enhancement failed")
	ErrTaskNotFound = errors.New("assist task not found")
	ErrTaskPending  = errors.New("assist task already outstanding")
)

// IsValidationError reports whether err is a user-correctable submission error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingImage) ||
		errors.Is(err, ErrCategoryUnavailable) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrMissingTitle) ||
		errors.Is(err, ErrMissingDescription)
}
