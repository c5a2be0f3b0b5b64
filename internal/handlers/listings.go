package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/attila122/hyratryggt/internal/middleware"
	"github.com/attila122/hyratryggt/internal/service"
	"github.com/attila122/hyratryggt/internal/store"
)

// ListingHandler maps the listing routes onto the listing service.
type ListingHandler struct {
	Listings *service.ListingService
	Photos   *PhotoIntake
}

func NewListingHandler(listings *service.ListingService, photos *PhotoIntake) *ListingHandler {
	return &ListingHandler{Listings: listings, Photos: photos}
}

// GetListings returns all listings matching the query filters.
func (h *ListingHandler) GetListings(c *gin.Context) {
	filter := store.ListingFilter{
		MinRent: parseOptionalInt(c.Query("minRent")),
		MaxRent: parseOptionalInt(c.Query("maxRent")),
		MinSize: parseOptionalInt(c.Query("minSize")),
		MaxSize: parseOptionalInt(c.Query("maxSize")),
		Area:    strings.TrimSpace(c.Query("area")),
		Query:   strings.TrimSpace(c.Query("q")),
	}

	c.JSON(http.StatusOK, h.Listings.List(filter))
}

// GetListing returns a single listing by id.
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	listing, err := h.Listings.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CreateListing stores a new listing for the authenticated user. The body is
// multipart: text fields plus up to MaxPhotoCount image files under "photos".
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fields, ok := h.bindListingFields(c)
	if !ok {
		return
	}
	if strings.TrimSpace(fields.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if fields.Rent == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rent is required"})
		return
	}
	if fields.Size == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Size is required"})
		return
	}

	photoRefs, ok := h.Photos.SavePhotos(c)
	if !ok {
		return
	}

	listing := h.Listings.Create(userID, fields, photoRefs)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created successfully",
		"listing": listing,
	})
}

// UpdateListing merges the supplied fields into the caller's listing. Empty
// form values leave the prior values in place; photos are replaced only when
// at least one new file was uploaded.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	fields, ok := h.bindListingFields(c)
	if !ok {
		return
	}

	photoRefs, ok := h.Photos.SavePhotos(c)
	if !ok {
		return
	}

	listing, err := h.Listings.Update(userID, id, fields, photoRefs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this listing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"listing": listing,
	})
}

// DeleteListing removes the caller's listing.
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	if err := h.Listings.Delete(userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this listing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}

// GetUserListings returns the authenticated user's listings.
func (h *ListingHandler) GetUserListings(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.Listings.ListByOwner(userID))
}

// bindListingFields reads the multipart text fields. Numeric fields must be
// non-negative integers when supplied; a bad value is a 400 and false return.
func (h *ListingHandler) bindListingFields(c *gin.Context) (service.ListingFields, bool) {
	fields := service.ListingFields{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		City:        strings.TrimSpace(c.PostForm("city")),
		Address:     strings.TrimSpace(c.PostForm("address")),
	}

	rent, ok := parseFormInt(c, "rent", "Rent must be a non-negative integer")
	if !ok {
		return service.ListingFields{}, false
	}
	size, ok := parseFormInt(c, "size", "Size must be a non-negative integer")
	if !ok {
		return service.ListingFields{}, false
	}

	fields.Rent = rent
	fields.Size = size
	return fields, true
}

// parseFormInt returns nil for an absent/empty field, the parsed value for a
// valid one, and writes a 400 for anything else.
func parseFormInt(c *gin.Context, field, message string) (*int, bool) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return nil, false
	}
	return &value, true
}

// parseOptionalInt parses a numeric query param; malformed values are
// treated as absent.
func parseOptionalInt(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &value
}
