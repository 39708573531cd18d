package controllers

import (
	"fmt"
	"net/http"
	"time"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type hotelPayload struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description"`
	Location    string `form:"location" json:"location"`
	RoomType    string `form:"room_type" json:"room_type"`
	AmenityIDs  []uint `form:"amenity_ids" json:"amenity_ids"`
}

type roomPayload struct {
	Number string  `form:"number" json:"number" binding:"required"`
	Price  float64 `form:"price" json:"price" binding:"gte=0"`
}

type amenityPayload struct {
	Name string `form:"name" json:"name" binding:"required"`
}

type AdminController struct {
	Reports *services.ReportService
	Catalog *services.CatalogService
}

func NewAdminController(reports *services.ReportService, catalog *services.CatalogService) *AdminController {
	return &AdminController{Reports: reports, Catalog: catalog}
}

// GET /admin/dashboard
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	d, err := ctrl.Reports.Dashboard(c.Request.Context(), 10)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"users":           d.Users,
		"hotels":          d.Hotels,
		"rooms":           d.Rooms,
		"bookings":        d.Bookings,
		"recent_bookings": newBookingViews(d.RecentBookings),
	})
}

// POST /admin/seed
func (ctrl *AdminController) Seed(c *gin.Context) {
	hotels, err := ctrl.Catalog.SeedSampleData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotels)
}

// POST /admin/hotels
func (ctrl *AdminController) CreateHotel(c *gin.Context) {
	var payload hotelPayload
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	hotel, err := ctrl.Catalog.CreateHotel(c.Request.Context(), &models.Hotel{
		Name:        payload.Name,
		Description: payload.Description,
		Location:    payload.Location,
		RoomType:    payload.RoomType,
	}, payload.AmenityIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// POST /admin/hotels/:id/rooms
func (ctrl *AdminController) AddRoom(c *gin.Context) {
	hotelID, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	var payload roomPayload
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	room, err := ctrl.Catalog.AddRoom(c.Request.Context(), hotelID, payload.Number, payload.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// POST /admin/amenities
func (ctrl *AdminController) CreateAmenity(c *gin.Context) {
	var payload amenityPayload
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	amenity, err := ctrl.Catalog.CreateAmenity(c.Request.Context(), payload.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, amenity)
}

// GET /admin/bookings/export
func (ctrl *AdminController) ExportBookings(c *gin.Context) {
	data, err := ctrl.Reports.ExportBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	name := fmt.Sprintf("bookings-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
