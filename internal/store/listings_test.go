package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attila122/hyratryggt/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func seededStore() *ListingStore {
	s := NewListingStore()
	SeedListings(s)
	return s
}

func listingIDs(listings []models.Listing) []int {
	ids := make([]int, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestSeedAssignsSequentialIDs(t *testing.T) {
	s := seededStore()

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, listingIDs(all))
	assert.Equal(t, "Solna", all[0].City)
	assert.False(t, all[0].CreatedAt.IsZero())
}

func TestFilterRentBounds(t *testing.T) {
	s := seededStore()

	result := s.Filter(ListingFilter{MinRent: intPtr(6000), MaxRent: intPtr(15000)})
	assert.Equal(t, []int{1, 2}, listingIDs(result))
}

func TestFilterRentBoundsInclusive(t *testing.T) {
	s := seededStore()

	result := s.Filter(ListingFilter{MinRent: intPtr(9500), MaxRent: intPtr(9500)})
	assert.Equal(t, []int{1}, listingIDs(result))
}

func TestFilterSizeBounds(t *testing.T) {
	s := seededStore()

	result := s.Filter(ListingFilter{MinSize: intPtr(20), MaxSize: intPtr(40)})
	assert.Equal(t, []int{1}, listingIDs(result))
}

func TestFilterAreaIsCaseInsensitiveOverCityAndAddress(t *testing.T) {
	s := seededStore()

	assert.Equal(t, []int{1}, listingIDs(s.Filter(ListingFilter{Area: "solna"})))
	assert.Equal(t, []int{2}, listingIDs(s.Filter(ListingFilter{Area: "HORNSGATAN"})))
	assert.Empty(t, s.Filter(ListingFilter{Area: "göteborg"}))
}

func TestFilterQuerySearchesAllTextFields(t *testing.T) {
	s := seededStore()

	// Title, city, address and description are all in scope for q.
	assert.Equal(t, []int{3}, listingIDs(s.Filter(ListingFilter{Query: "kth"})))
	assert.Equal(t, []int{2}, listingIDs(s.Filter(ListingFilter{Query: "t-bana"})))
	assert.Equal(t, []int{2}, listingIDs(s.Filter(ListingFilter{Query: "STOCKHOLM"})))
	assert.Equal(t, []int{3}, listingIDs(s.Filter(ListingFilter{Query: "campusvägen"})))
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	s := seededStore()

	// Both listings 1 and 2 pass the rent bound, only 1 matches the area.
	result := s.Filter(ListingFilter{MinRent: intPtr(6000), Area: "solna"})
	assert.Equal(t, []int{1}, listingIDs(result))
}

func TestFilterResultIsSubsetAndMembershipMatchesPredicate(t *testing.T) {
	s := seededStore()
	filter := ListingFilter{MinRent: intPtr(6000), MaxSize: intPtr(40), Query: "a"}

	matched := map[int]bool{}
	for _, l := range s.Filter(filter) {
		assert.True(t, filter.Matches(l))
		matched[l.ID] = true
	}
	for _, l := range s.All() {
		assert.Equal(t, filter.Matches(l), matched[l.ID])
	}
}

func TestEmptyFilterReturnsAllInInsertionOrder(t *testing.T) {
	s := seededStore()

	assert.Equal(t, []int{1, 2, 3}, listingIDs(s.Filter(ListingFilter{})))
}

func TestReplaceSwapsRecordInPlace(t *testing.T) {
	s := seededStore()

	listing, found := s.FindByID(2)
	require.True(t, found)
	listing.Rent = 13000
	require.True(t, s.Replace(listing))

	updated, found := s.FindByID(2)
	require.True(t, found)
	assert.Equal(t, 13000, updated.Rent)
	assert.Equal(t, []int{1, 2, 3}, listingIDs(s.All()))
}

func TestReplaceMissingListingReturnsFalse(t *testing.T) {
	s := seededStore()

	assert.False(t, s.Replace(models.Listing{ID: 99}))
}

func TestDeleteRemovesListing(t *testing.T) {
	s := seededStore()

	require.True(t, s.Delete(2))
	_, found := s.FindByID(2)
	assert.False(t, found)
	assert.Equal(t, []int{1, 3}, listingIDs(s.All()))

	assert.False(t, s.Delete(2))
}

func TestByOwnerFiltersOnOwnerID(t *testing.T) {
	s := seededStore()
	s.Add(models.Listing{Title: "Stuga", OwnerID: 7})

	assert.Equal(t, []int{1, 2, 3}, listingIDs(s.ByOwner(1)))
	assert.Equal(t, []int{4}, listingIDs(s.ByOwner(7)))
	assert.Empty(t, s.ByOwner(42))
}

func TestReturnedPhotosAreIsolatedFromStore(t *testing.T) {
	s := seededStore()

	listing, found := s.FindByID(1)
	require.True(t, found)
	listing.Photos[0] = "mutated"

	fresh, found := s.FindByID(1)
	require.True(t, found)
	assert.Equal(t, "assets/placeholder-apt.jpg", fresh.Photos[0])
}
