package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attila122/hyratryggt/internal/store"
)

func newLeadService() (*LeadService, *ListingService) {
	listings := store.NewListingStore()
	return NewLeadService(store.NewLeadStore(), listings), NewListingService(listings)
}

func TestQuickRegisterStoresLead(t *testing.T) {
	svc, _ := newLeadService()

	rent := 7000
	reg := svc.QuickRegister("Ana", "a@x.com", "Solna", &rent)

	assert.Equal(t, 1, reg.ID)
	require.NotNil(t, reg.Rent)
	assert.Equal(t, 7000, *reg.Rent)
	assert.False(t, reg.CreatedAt.IsZero())

	noRent := svc.QuickRegister("Bo", "b@x.com", "", nil)
	assert.Equal(t, 2, noRent.ID)
	assert.Nil(t, noRent.Rent)

	assert.Len(t, svc.Registrations(), 2)
}

func TestContactRequiresExistingListing(t *testing.T) {
	svc, listings := newLeadService()

	_, err := svc.Contact(42, 1, "Hej")
	assert.ErrorIs(t, err, ErrNotFound)

	listing := listings.Create(1, ListingFields{Title: "1:a i Solna"}, nil)

	msg, err := svc.Contact(listing.ID, 2, "Är lägenheten ledig?")
	require.NoError(t, err)
	assert.Equal(t, listing.ID, msg.ListingID)
	assert.Equal(t, 2, msg.SenderID)
	assert.Equal(t, "Är lägenheten ledig?", msg.Message)
	assert.False(t, msg.CreatedAt.IsZero())
}
