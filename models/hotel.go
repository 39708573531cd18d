package models

import "time"

type Hotel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:255;index" json:"location"`
	RoomType    string    `gorm:"column:room_type;size:50;index" json:"room_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Amenities []Amenity `gorm:"many2many:hotel_amenities;" json:"amenities"`
	Rooms     []Room    `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms"`
}

type Amenity struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
