package models

import "time"

// Room belongs to exactly one hotel; numbers are unique per hotel.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HotelID   uint      `gorm:"column:hotel_id;not null;uniqueIndex:idx_room_hotel_number" json:"hotel_id"`
	Number    string    `gorm:"column:number;size:10;not null;uniqueIndex:idx_room_hotel_number" json:"number"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
