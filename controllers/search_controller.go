package controllers

import (
	"net/http"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// searchPayload accepts amenities both as repeated "amenities" and as the
// bracketed "amenities[]" that HTML multi-selects send.
type searchPayload struct {
	Location      string `form:"location" json:"location"`
	CheckInDate   string `form:"check_in_date" json:"check_in_date"`
	CheckOutDate  string `form:"check_out_date" json:"check_out_date"`
	RoomType      string `form:"room_type" json:"room_type"`
	Amenities     []uint `form:"amenities" json:"amenities"`
	AmenitiesList []uint `form:"amenities[]" json:"-"`
}

type SearchController struct {
	Search *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{Search: search}
}

// GET|POST /search
func (ctrl *SearchController) SearchHotels(c *gin.Context) {
	var payload searchPayload
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&payload)
	} else {
		err = c.ShouldBind(&payload)
	}
	if err != nil {
		respondBindError(c, err)
		return
	}

	q := services.SearchQuery{
		Location:   payload.Location,
		RoomType:   payload.RoomType,
		AmenityIDs: append(payload.Amenities, payload.AmenitiesList...),
	}
	if q.CheckIn, err = parseOptionalDate("check_in_date", payload.CheckInDate); err != nil {
		respondError(c, err)
		return
	}
	if q.CheckOut, err = parseOptionalDate("check_out_date", payload.CheckOutDate); err != nil {
		respondError(c, err)
		return
	}

	hotels, err := ctrl.Search.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}
