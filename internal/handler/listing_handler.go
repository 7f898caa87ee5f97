package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/media"
	"listing-marketplace/internal/service"
	"listing-marketplace/internal/validator"
)

// ListingHandler handles listing-related HTTP requests.
type ListingHandler struct {
	listingService service.ListingServiceInterface
	maxImageBytes  int64
}

// NewListingHandler creates a new ListingHandler. A non-positive maxImageBytes
// uses media.DefaultMaxImageBytes.
func NewListingHandler(listingService service.ListingServiceInterface, maxImageBytes int64) *ListingHandler {
	if maxImageBytes <= 0 {
		maxImageBytes = media.DefaultMaxImageBytes
	}
	return &ListingHandler{
		listingService: listingService,
		maxImageBytes:  maxImageBytes,
	}
}

// ListListingsResponse is the body of GET /api/v1/listings.
type ListListingsResponse struct {
	Count    int              `json:"count"`
	Listings []domain.Listing `json:"listings"`
}

// ListListings handles GET /api/v1/listings?q=&category=
func (h *ListingHandler) ListListings(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")
	if category == "" {
		category = domain.AllCategories
	}

	if category != domain.AllCategories && !domain.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	listings := h.listingService.Browse(c.Request.Context(), query, category)
	c.JSON(http.StatusOK, ListListingsResponse{Count: len(listings), Listings: listings})
}

// GetListing handles GET /api/v1/listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.listingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		logger.ErrorContext(c.Request.Context(), "Failed to get listing", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve listing"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CreateListing handles POST /api/v1/listings.
// The image is either an uploaded "image" file or an "image_url" field.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImageBytes+formOverhead)

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeSubmitError(c, domain.ErrImageTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	imageURL, err := h.readImage(c)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	draft := domain.Draft{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Category:    c.PostForm("category"),
		Location:    c.PostForm("location"),
		ImageURL:    imageURL,
		SellerName:  c.PostForm("seller_name"),
	}

	listing, err := h.listingService.Submit(c.Request.Context(), draft)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// ListCategories handles GET /api/v1/categories
func (h *ListingHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.listingService.Categories())
}

// readImage encodes an uploaded file as a data URI, falling back to the
// image_url field when no file was sent.
func (h *ListingHandler) readImage(c *gin.Context) (string, error) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return c.PostForm("image_url"), nil
		}
		return "", err
	}
	defer file.Close()

	return media.EncodeDataURI(file, h.maxImageBytes)
}

func (h *ListingHandler) writeSubmitError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	var fieldErr *validator.FieldError
	if errors.As(err, &fieldErr) {
		body = gin.H{"error": fieldErr.Err.Error(), "field": fieldErr.Field, "reason": fieldErr.Reason}
	}

	switch {
	case errors.Is(err, domain.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": domain.ErrImageTooLarge.Error()})
	case errors.Is(err, domain.ErrNotAnImage), domain.IsValidationError(err):
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrStorageWrite):
		c.JSON(http.StatusInsufficientStorage, gin.H{"error": "listing could not be saved, try again later"})
	default:
		logger.ErrorContext(c.Request.Context(), "Failed to submit listing", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process listing"})
	}
}
