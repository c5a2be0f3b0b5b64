package store

import (
	"github.com/attila122/hyratryggt/internal/models"
)

// SeedListings loads the bundled sample listings so a fresh process has
// something to show. Owner id 1 matches the first registered account.
func SeedListings(s *ListingStore) {
	samples := []models.Listing{
		{
			Title:       "1:a i Solna nära Mall of Scandinavia",
			Rent:        9500,
			Size:        28,
			City:        "Solna",
			Address:     "Frösundaviks allé 5",
			Description: "Möblerad etta med balkong. 5 min till pendeltåg.",
			Photos:      []string{"assets/placeholder-apt.jpg"},
			OwnerID:     1,
		},
		{
			Title:       "2:a i Södermalm med utsikt",
			Rent:        14500,
			Size:        45,
			City:        "Stockholm",
			Address:     "Hornsgatan 100",
			Description: "Ljus lägenhet, nära T-bana.",
			Photos:      []string{"assets/placeholder-apt.jpg"},
			OwnerID:     1,
		},
		{
			Title:       "Rum uthyres i studentkollektiv KTH",
			Rent:        5200,
			Size:        12,
			City:        "Flemingsberg",
			Address:     "Campusvägen 3",
			Description: "Perfekt för studenter, delat kök.",
			Photos:      []string{"assets/placeholder-apt.jpg"},
			OwnerID:     1,
		},
	}

	for _, sample := range samples {
		s.Add(sample)
	}
}
