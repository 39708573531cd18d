package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-booking/models"

	"gorm.io/gorm"
)

// CatalogService owns hotels, rooms and amenities.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// withCatalog preloads the relations every hotel response carries.
func withCatalog(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Amenities", func(tx *gorm.DB) *gorm.DB { return tx.Order("amenities.id ASC") }).
		Preload("Rooms", func(tx *gorm.DB) *gorm.DB { return tx.Order("rooms.number ASC") })
}

func (s *CatalogService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	if err := withCatalog(s.DB.WithContext(ctx)).Order("hotels.id ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (s *CatalogService) GetHotel(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := withCatalog(s.DB.WithContext(ctx)).First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("hotel", id)
		}
		return nil, fmt.Errorf("failed to get hotel %d: %w", id, err)
	}
	return &hotel, nil
}

func (s *CatalogService) ListRooms(ctx context.Context, hotelID uint) ([]models.Room, error) {
	db := s.DB.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check hotel %d: %w", hotelID, err)
	}
	if count == 0 {
		return nil, notFound("hotel", hotelID)
	}

	rooms := []models.Room{}
	if err := db.Where("hotel_id = ?", hotelID).Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms for hotel %d: %w", hotelID, err)
	}
	return rooms, nil
}

// RoomByNumber resolves a room number within one hotel.
func (s *CatalogService) RoomByNumber(ctx context.Context, hotelID uint, number string) (*models.Room, error) {
	number = strings.TrimSpace(number)
	var room models.Room
	err := s.DB.WithContext(ctx).Where("hotel_id = ? AND number = ?", hotelID, number).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("room %q in hotel", number), hotelID)
		}
		return nil, fmt.Errorf("failed to find room %q: %w", number, err)
	}
	return &room, nil
}

func (s *CatalogService) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	amenities := []models.Amenity{}
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&amenities).Error; err != nil {
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}
	return amenities, nil
}

func (s *CatalogService) CreateAmenity(ctx context.Context, name string) (*models.Amenity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	amenity := &models.Amenity{Name: name}
	if err := s.DB.WithContext(ctx).Create(amenity).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, &ValidationError{Field: "name", Message: fmt.Sprintf("amenity %q already exists", name)}
		}
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}
	return amenity, nil
}

// CreateHotel inserts a hotel and links the given amenities.
func (s *CatalogService) CreateHotel(ctx context.Context, hotel *models.Hotel, amenityIDs []uint) (*models.Hotel, error) {
	hotel.Name = strings.TrimSpace(hotel.Name)
	if hotel.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ids := uniqueIDs(amenityIDs); len(ids) > 0 {
			var amenities []models.Amenity
			if err := tx.Where("id IN ?", ids).Find(&amenities).Error; err != nil {
				return err
			}
			if len(amenities) != len(ids) {
				return &ValidationError{Field: "amenity_ids", Message: "unknown amenity id"}
			}
			hotel.Amenities = amenities
		}
		return tx.Create(hotel).Error
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return s.GetHotel(ctx, hotel.ID)
}

func (s *CatalogService) AddRoom(ctx context.Context, hotelID uint, number string, price float64) (*models.Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, &ValidationError{Field: "number", Message: "is required"}
	}
	if price < 0 {
		return nil, &ValidationError{Field: "price", Message: "must not be negative"}
	}
	if _, err := s.ListRooms(ctx, hotelID); err != nil {
		return nil, err
	}

	room := &models.Room{HotelID: hotelID, Number: number, Price: price}
	if err := s.DB.WithContext(ctx).Create(room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, &ValidationError{Field: "number", Message: fmt.Sprintf("room %q already exists", number)}
		}
		if isForeignKeyError(err) {
			return nil, notFound("hotel", hotelID)
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

// Counts returns hotel and room totals for the dashboard.
func (s *CatalogService) Counts(ctx context.Context) (hotels, rooms int64, err error) {
	db := s.DB.WithContext(ctx)
	if err = db.Model(&models.Hotel{}).Count(&hotels).Error; err != nil {
		return 0, 0, err
	}
	if err = db.Model(&models.Room{}).Count(&rooms).Error; err != nil {
		return 0, 0, err
	}
	return hotels, rooms, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
