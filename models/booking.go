package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking is a room-level reservation over [CheckInDate, CheckOutDate).
// Records are immutable once created.
type Booking struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ReferenceCode string         `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	UserID        uint           `gorm:"index;column:user_id;not null" json:"user_id"`
	HotelID       uint           `gorm:"index;column:hotel_id;not null" json:"hotel_id"`
	RoomID        uint           `gorm:"index;column:room_id;not null" json:"room_id"`
	CheckInDate   datatypes.Date `gorm:"column:check_in_date;not null;index:idx_booking_dates" json:"check_in_date"`
	CheckOutDate  datatypes.Date `gorm:"column:check_out_date;not null;index:idx_booking_dates" json:"check_out_date"`
	CreatedAt     time.Time      `json:"created_at"`

	User  *User  `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Hotel *Hotel `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
	Room  *Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// Nights counts the nights between check-in and check-out.
func (b Booking) Nights() int {
	ci := time.Time(b.CheckInDate)
	co := time.Time(b.CheckOutDate)
	if !co.After(ci) {
		return 0
	}
	return int(co.Sub(ci).Hours() / 24)
}
