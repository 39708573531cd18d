package controllers

import (
	"net/http"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Catalog *services.CatalogService
}

func NewHotelController(catalog *services.CatalogService) *HotelController {
	return &HotelController{Catalog: catalog}
}

// GET /hotels
func (ctrl *HotelController) ListHotels(c *gin.Context) {
	hotels, err := ctrl.Catalog.ListHotels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GET /hotels/:id
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	id, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	hotel, err := ctrl.Catalog.GetHotel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// GET /amenities
func (ctrl *HotelController) ListAmenities(c *gin.Context) {
	amenities, err := ctrl.Catalog.ListAmenities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, amenities)
}
