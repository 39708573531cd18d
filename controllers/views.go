package controllers

import (
	"time"

	"hotel-booking/models"
	"hotel-booking/services"
)

// bookingView renders dates in the YYYY-MM-DD wire format.
type bookingView struct {
	ID            uint    `json:"id"`
	ReferenceCode string  `json:"reference_code"`
	UserID        uint    `json:"user_id"`
	HotelID       uint    `json:"hotel_id"`
	HotelName     string  `json:"hotel_name,omitempty"`
	RoomID        uint    `json:"room_id"`
	RoomNumber    string  `json:"room_number,omitempty"`
	Price         float64 `json:"price_per_night"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	Nights        int     `json:"nights"`
	CreatedAt     string  `json:"created_at"`
}

func newBookingView(b models.Booking) bookingView {
	v := bookingView{
		ID:            b.ID,
		ReferenceCode: b.ReferenceCode,
		UserID:        b.UserID,
		HotelID:       b.HotelID,
		RoomID:        b.RoomID,
		CheckInDate:   time.Time(b.CheckInDate).Format(services.DateLayout),
		CheckOutDate:  time.Time(b.CheckOutDate).Format(services.DateLayout),
		Nights:        b.Nights(),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if b.Hotel != nil {
		v.HotelName = b.Hotel.Name
	}
	if b.Room != nil {
		v.RoomNumber = b.Room.Number
		v.Price = b.Room.Price
	}
	return v
}

func newBookingViews(list []models.Booking) []bookingView {
	out := make([]bookingView, 0, len(list))
	for _, b := range list {
		out = append(out, newBookingView(b))
	}
	return out
}
