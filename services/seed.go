package services

import (
	"context"
	"fmt"
	"log"

	"hotel-booking/models"

	"gorm.io/gorm"
)

var sampleAmenities = []string{"Wi-Fi", "Pool", "Parking", "Gym", "Breakfast"}

type sampleHotel struct {
	name, description, location, roomType string
	amenities                             []string
}

var sampleHotels = []sampleHotel{
	{"Hotel A", "A cozy hotel in the heart of Location A", "Location A", "Standard", []string{"Wi-Fi", "Breakfast"}},
	{"Hotel B", "Seaside resort with a large pool", "Location B", "Deluxe", []string{"Wi-Fi", "Pool", "Parking"}},
	{"Hotel C", "Business hotel close to the station", "Location C", "Suite", []string{"Wi-Fi", "Gym"}},
	{"Hotel D", "Quiet countryside lodge", "Location D", "Standard", []string{"Parking", "Pool"}},
}

// SeedSampleData inserts four hotels with four rooms each. Rooms are numbered
// h01..h04 per hotel and priced 100..280. Calling it twice duplicates the
// hotels; it is an administrative action and must only be run once.
func (s *CatalogService) SeedSampleData(ctx context.Context) ([]models.Hotel, error) {
	var created []models.Hotel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		byName := make(map[string]models.Amenity, len(sampleAmenities))
		for _, name := range sampleAmenities {
			var a models.Amenity
			if err := tx.Where(models.Amenity{Name: name}).FirstOrCreate(&a).Error; err != nil {
				return fmt.Errorf("amenity %q: %w", name, err)
			}
			byName[name] = a
		}

		for h, sh := range sampleHotels {
			hotel := models.Hotel{
				Name:        sh.name,
				Description: sh.description,
				Location:    sh.location,
				RoomType:    sh.roomType,
			}
			for _, name := range sh.amenities {
				hotel.Amenities = append(hotel.Amenities, byName[name])
			}
			for r := 0; r < 4; r++ {
				hotel.Rooms = append(hotel.Rooms, models.Room{
					Number: fmt.Sprintf("%d%02d", h+1, r+1),
					Price:  float64(100 + 12*(4*h+r)),
				})
			}
			if err := tx.Create(&hotel).Error; err != nil {
				return fmt.Errorf("hotel %q: %w", sh.name, err)
			}
			created = append(created, hotel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed sample data: %w", err)
	}

	log.Printf("Sample catalog seeded (%d hotels)", len(created))
	return created, nil
}
