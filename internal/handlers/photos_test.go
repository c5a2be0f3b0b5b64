package handlers

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCreateListingRejectsOversizedPhoto(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "Ana", "a@x.com", "landlord")

	oversized := append(pngBytes(), make([]byte, 5*1024*1024)...)
	resp := env.doMultipart(t, http.MethodPost, "/api/listings", sampleListingFields(),
		map[string][]byte{"huge.png": oversized}, token)
	mustStatus(t, resp.Code, http.StatusRequestEntityTooLarge)

	if env.listings.Count() != 0 {
		t.Fatalf("expected no listing stored, got %d", env.listings.Count())
	}
}

func TestCreateListingRejectsTooManyPhotos(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "Ana", "a@x.com", "landlord")

	photos := make(map[string][]byte, 11)
	for i := 0; i < 11; i++ {
		photos[fmt.Sprintf("apt-%d.png", i)] = pngBytes()
	}

	resp := env.doMultipart(t, http.MethodPost, "/api/listings", sampleListingFields(), photos, token)
	mustStatus(t, resp.Code, http.StatusBadRequest)

	body := decodeBody(t, resp)
	if _, ok := body["max_photos"]; !ok {
		t.Fatal("expected max_photos in response")
	}
	if env.listings.Count() != 0 {
		t.Fatalf("expected no listing stored, got %d", env.listings.Count())
	}
}

func TestUpdateListingRejectedPhotoLeavesListingUnchanged(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "Ana", "a@x.com", "landlord")

	created := env.doMultipart(t, http.MethodPost, "/api/listings", sampleListingFields(),
		map[string][]byte{"apt.png": pngBytes()}, token)
	mustStatus(t, created.Code, http.StatusCreated)
	listing := decodeBody(t, created)["listing"].(map[string]any)
	id := int(listing["id"].(float64))

	resp := env.doMultipart(t, http.MethodPut, fmt.Sprintf("/api/listings/%d", id),
		map[string]string{"rent": "9900"},
		map[string][]byte{"notes.txt": []byte("plain text content")}, token)
	mustStatus(t, resp.Code, http.StatusBadRequest)

	stored, found := env.listings.FindByID(id)
	if !found {
		t.Fatal("expected listing to survive the rejected update")
	}
	if stored.Rent != int(listing["rent"].(float64)) {
		t.Fatalf("rent changed on rejected update: %d", stored.Rent)
	}
	if len(stored.Photos) != 1 {
		t.Fatalf("expected original photo retained, got %d", len(stored.Photos))
	}
}
