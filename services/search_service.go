package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/models"

	"gorm.io/gorm"
)

// SearchQuery holds the optional hotel filters. Zero values mean no constraint.
type SearchQuery struct {
	Location   string
	CheckIn    *time.Time
	CheckOut   *time.Time
	RoomType   string
	AmenityIDs []uint
}

type SearchService struct {
	DB *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{DB: db}
}

// likeEscaper makes user input match literally inside a LIKE pattern. '!'
// reads the same in MySQL, Postgres and SQLite string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search applies every given filter conjunctively and returns hotels by id.
// The date filter only applies when both dates are present.
func (s *SearchService) Search(ctx context.Context, q SearchQuery) ([]models.Hotel, error) {
	db := s.DB.WithContext(ctx)
	query := withCatalog(db.Model(&models.Hotel{}))

	if loc := strings.ToLower(strings.TrimSpace(q.Location)); loc != "" {
		query = query.Where("LOWER(hotels.location) LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(loc)+"%")
	}

	if rt := strings.TrimSpace(q.RoomType); rt != "" {
		query = query.Where("hotels.room_type = ?", rt)
	}

	if q.CheckIn != nil && q.CheckOut != nil {
		if err := validRange(*q.CheckIn, *q.CheckOut); err != nil {
			return nil, err
		}
		freeRooms := db.Model(&models.Room{}).
			Select("1").
			Where("rooms.hotel_id = hotels.id").
			Where("rooms.id NOT IN (?)", reservedRoomIDs(db, *q.CheckIn, *q.CheckOut))
		query = query.Where("EXISTS (?)", freeRooms)
	}

	if ids := uniqueIDs(q.AmenityIDs); len(ids) > 0 {
		withAmenity := db.Table("hotel_amenities").
			Select("hotel_amenities.hotel_id").
			Where("hotel_amenities.amenity_id IN ?", ids)
		query = query.Where("hotels.id IN (?)", withAmenity)
	}

	hotels := []models.Hotel{}
	if err := query.Order("hotels.id ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return hotels, nil
}
