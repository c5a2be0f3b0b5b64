package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/attila122/hyratryggt/internal/store"
)

func TestQuickRegisterAcceptsStringRent(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/quick-register", map[string]any{
		"name":  "Maria",
		"email": "maria@example.com",
		"city":  "Uppsala",
		"rent":  "7000",
	}, "")
	mustStatus(t, resp.Code, http.StatusCreated)

	reg, _ := decodeBody(t, resp)["registration"].(map[string]any)
	if reg == nil {
		t.Fatal("expected registration in response")
	}
	if int(reg["rent"].(float64)) != 7000 {
		t.Fatalf("expected rent 7000, got %v", reg["rent"])
	}
	if env.leads.Count() != 1 {
		t.Fatalf("expected 1 registration stored, got %d", env.leads.Count())
	}
}

func TestQuickRegisterAcceptsNumericRentAndNoRent(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/quick-register", map[string]any{
		"name":  "Maria",
		"email": "maria@example.com",
		"rent":  6500,
	}, "")
	mustStatus(t, resp.Code, http.StatusCreated)

	resp = env.doJSON(t, http.MethodPost, "/api/quick-register", map[string]any{
		"name":  "Olof",
		"email": "olof@example.com",
	}, "")
	mustStatus(t, resp.Code, http.StatusCreated)

	reg, _ := decodeBody(t, resp)["registration"].(map[string]any)
	if reg == nil {
		t.Fatal("expected registration in response")
	}
	if _, present := reg["rent"]; present && reg["rent"] != nil {
		t.Fatalf("expected no rent on second registration, got %v", reg["rent"])
	}
}

func TestQuickRegisterRequiresNameAndEmail(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/quick-register", map[string]any{
		"email": "maria@example.com",
	}, "")
	mustStatus(t, resp.Code, http.StatusBadRequest)

	resp = env.doJSON(t, http.MethodPost, "/api/quick-register", map[string]any{
		"name": "Maria",
	}, "")
	mustStatus(t, resp.Code, http.StatusBadRequest)

	if env.leads.Count() != 0 {
		t.Fatalf("expected no registrations stored, got %d", env.leads.Count())
	}
}

func TestQuickRegistrationsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodGet, "/api/quick-registrations", nil, "")
	mustStatus(t, resp.Code, http.StatusUnauthorized)
}

func TestQuickRegistrationsListsAll(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "Ana", "a@x.com", "tenant")

	for _, email := range []string{"one@example.com", "two@example.com"} {
		resp := env.doJSON(t, http.MethodPost, "/api/quick-register", map[string]any{
			"name":  "Lead",
			"email": email,
		}, "")
		mustStatus(t, resp.Code, http.StatusCreated)
	}

	resp := env.doJSON(t, http.MethodGet, "/api/quick-registrations", nil, token)
	mustStatus(t, resp.Code, http.StatusOK)

	var regs []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &regs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(regs))
	}
}

func TestContactRequiresExistingListing(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "Ana", "a@x.com", "tenant")

	resp := env.doJSON(t, http.MethodPost, "/api/contact/99", map[string]any{
		"message": "Is this still available?",
	}, token)
	mustStatus(t, resp.Code, http.StatusNotFound)
}

func TestContactRecordsMessage(t *testing.T) {
	env := newTestEnv(t)
	store.SeedListings(env.listings)
	_, token := env.registerUser(t, "Ana", "a@x.com", "tenant")

	resp := env.doJSON(t, http.MethodPost, "/api/contact/1", map[string]any{
		"message": "Is this still available?",
	}, token)
	mustStatus(t, resp.Code, http.StatusOK)

	if got := len(env.leads.Contacts()); got != 1 {
		t.Fatalf("expected 1 contact message, got %d", got)
	}
	msg := env.leads.Contacts()[0]
	if msg.ListingID != 1 {
		t.Fatalf("expected listing id 1, got %d", msg.ListingID)
	}
	if msg.Message != "Is this still available?" {
		t.Fatalf("unexpected message: %s", msg.Message)
	}
}
