package store

import (
	"strings"
	"sync"
	"time"

	"github.com/attila122/hyratryggt/internal/models"
)

// ListingFilter narrows a listing query. Nil bounds impose no constraint;
// bounds are inclusive. Area matches city or address, Query matches title,
// city, address or description; both are case-insensitive substring matches.
// All supplied predicates must hold.
type ListingFilter struct {
	MinRent *int
	MaxRent *int
	MinSize *int
	MaxSize *int
	Area    string
	Query   string
}

// Matches reports whether a listing satisfies every supplied predicate.
func (f ListingFilter) Matches(l models.Listing) bool {
	if f.MinRent != nil && l.Rent < *f.MinRent {
		return false
	}
	if f.MaxRent != nil && l.Rent > *f.MaxRent {
		return false
	}
	if f.MinSize != nil && l.Size < *f.MinSize {
		return false
	}
	if f.MaxSize != nil && l.Size > *f.MaxSize {
		return false
	}
	if f.Area != "" {
		term := strings.ToLower(f.Area)
		if !containsFold(l.City, term) && !containsFold(l.Address, term) {
			return false
		}
	}
	if f.Query != "" {
		term := strings.ToLower(f.Query)
		if !containsFold(l.Title, term) && !containsFold(l.City, term) &&
			!containsFold(l.Address, term) && !containsFold(l.Description, term) {
			return false
		}
	}
	return true
}

// containsFold expects term already lowercased.
func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), term)
}

// ListingStore keeps rental listings in insertion order.
type ListingStore struct {
	mu       sync.RWMutex
	listings []models.Listing
	nextID   int
}

func NewListingStore() *ListingStore {
	return &ListingStore{nextID: 1}
}

// Add assigns the next sequential id, stamps CreatedAt and stores the listing.
func (s *ListingStore) Add(listing models.Listing) models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing.ID = s.nextID
	s.nextID++
	listing.CreatedAt = time.Now()
	s.listings = append(s.listings, listing)
	return listing
}

func (s *ListingStore) FindByID(id int) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, listing := range s.listings {
		if listing.ID == id {
			return cloneListing(listing), true
		}
	}
	return models.Listing{}, false
}

// Replace swaps the stored record with the same id. Returns false when the
// listing no longer exists.
func (s *ListingStore) Replace(listing models.Listing) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID == listing.ID {
			s.listings[i] = cloneListing(listing)
			return true
		}
	}
	return false
}

func (s *ListingStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return true
		}
	}
	return false
}

// Filter returns the listings satisfying the filter, in insertion order.
func (s *ListingStore) Filter(f ListingFilter) []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Listing, 0)
	for _, listing := range s.listings {
		if f.Matches(listing) {
			result = append(result, cloneListing(listing))
		}
	}
	return result
}

// All returns every listing in insertion order.
func (s *ListingStore) All() []models.Listing {
	return s.Filter(ListingFilter{})
}

// ByOwner returns the owner's listings in insertion order.
func (s *ListingStore) ByOwner(ownerID int) []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Listing, 0)
	for _, listing := range s.listings {
		if listing.OwnerID == ownerID {
			result = append(result, cloneListing(listing))
		}
	}
	return result
}

func (s *ListingStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}

// cloneListing copies the photo slice so callers cannot mutate stored state.
func cloneListing(l models.Listing) models.Listing {
	if l.Photos != nil {
		photos := make([]string, len(l.Photos))
		copy(photos, l.Photos)
		l.Photos = photos
	}
	return l
}
