package service

import (
	"time"

	"github.com/attila122/hyratryggt/internal/models"
	"github.com/attila122/hyratryggt/internal/store"
)

// ListingFields carries the mutable listing fields from a submitted form.
// Nil int pointers and empty strings mean "not supplied"; on update such
// fields keep their prior value, so an empty form value cannot blank a
// field.
type ListingFields struct {
	Title       string
	Description string
	Rent        *int
	Size        *int
	City        string
	Address     string
}

// ListingService owns listing lifecycle and enforces ownership on mutation.
type ListingService struct {
	listings *store.ListingStore
}

func NewListingService(listings *store.ListingStore) *ListingService {
	return &ListingService{listings: listings}
}

// List returns the listings matching the filter, in insertion order.
func (s *ListingService) List(filter store.ListingFilter) []models.Listing {
	return s.listings.Filter(filter)
}

func (s *ListingService) Get(id int) (models.Listing, error) {
	listing, found := s.listings.FindByID(id)
	if !found {
		return models.Listing{}, ErrNotFound
	}
	return listing, nil
}

// Create stores a new listing for the owner. Photo refs are stored as given,
// possibly empty.
func (s *ListingService) Create(ownerID int, fields ListingFields, photoRefs []string) models.Listing {
	listing := models.Listing{
		Title:       fields.Title,
		Description: fields.Description,
		City:        fields.City,
		Address:     fields.Address,
		Photos:      photoRefs,
		OwnerID:     ownerID,
	}
	if fields.Rent != nil {
		listing.Rent = *fields.Rent
	}
	if fields.Size != nil {
		listing.Size = *fields.Size
	}
	if listing.Photos == nil {
		listing.Photos = []string{}
	}

	return s.listings.Add(listing)
}

// Update merges supplied fields into the owner's listing. New photos fully
// replace the prior set only when at least one was supplied.
func (s *ListingService) Update(ownerID, id int, fields ListingFields, photoRefs []string) (models.Listing, error) {
	listing, found := s.listings.FindByID(id)
	if !found {
		return models.Listing{}, ErrNotFound
	}
	if listing.OwnerID != ownerID {
		return models.Listing{}, ErrForbidden
	}

	if fields.Title != "" {
		listing.Title = fields.Title
	}
	if fields.Description != "" {
		listing.Description = fields.Description
	}
	if fields.Rent != nil {
		listing.Rent = *fields.Rent
	}
	if fields.Size != nil {
		listing.Size = *fields.Size
	}
	if fields.City != "" {
		listing.City = fields.City
	}
	if fields.Address != "" {
		listing.Address = fields.Address
	}
	if len(photoRefs) > 0 {
		listing.Photos = photoRefs
	}

	now := time.Now()
	listing.UpdatedAt = &now

	if !s.listings.Replace(listing) {
		return models.Listing{}, ErrNotFound
	}
	return listing, nil
}

// Delete removes the owner's listing.
func (s *ListingService) Delete(ownerID, id int) error {
	listing, found := s.listings.FindByID(id)
	if !found {
		return ErrNotFound
	}
	if listing.OwnerID != ownerID {
		return ErrForbidden
	}

	if !s.listings.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// ListByOwner returns all listings owned by the user, in insertion order.
func (s *ListingService) ListByOwner(ownerID int) []models.Listing {
	return s.listings.ByOwner(ownerID)
}
