package controllers

import (
	"net/http"

	"hotel-booking/middleware"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type bookingPayload struct {
	Room         string `form:"room" json:"room" binding:"required"`
	CheckInDate  string `form:"check_in_date" json:"check_in_date"`
	CheckOutDate string `form:"check_out_date" json:"check_out_date"`
}

type BookingController struct {
	Catalog  *services.CatalogService
	Bookings *services.BookingService
}

func NewBookingController(catalog *services.CatalogService, bookings *services.BookingService) *BookingController {
	return &BookingController{Catalog: catalog, Bookings: bookings}
}

// GET /hotels/:id/book
func (ctrl *BookingController) BookingForm(c *gin.Context) {
	id, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	hotel, err := ctrl.Catalog.GetHotel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"hotel":  hotel,
		"rooms":  hotel.Rooms,
		"fields": []string{"room", "check_in_date", "check_out_date"},
	})
}

// POST /hotels/:id/book
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, services.ErrUnauthenticated)
		return
	}

	hotelID, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := ctrl.Catalog.GetHotel(ctx, hotelID); err != nil {
		respondError(c, err)
		return
	}

	var payload bookingPayload
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	checkIn, err := parseDate("check_in_date", payload.CheckInDate)
	if err != nil {
		respondError(c, err)
		return
	}
	checkOut, err := parseDate("check_out_date", payload.CheckOutDate)
	if err != nil {
		respondError(c, err)
		return
	}

	room, err := ctrl.Catalog.RoomByNumber(ctx, hotelID, payload.Room)
	if err != nil {
		respondError(c, err)
		return
	}

	booking, err := ctrl.Bookings.CreateBooking(ctx, user.ID, room.ID, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, http.StatusCreated, newBookingView(*booking), "/bookings")
}

// GET /bookings
func (ctrl *BookingController) ListBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, services.ErrUnauthenticated)
		return
	}
	list, err := ctrl.Bookings.ListBookingsForUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, newBookingViews(list))
}
