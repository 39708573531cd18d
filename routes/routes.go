package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// Controllers bundles the handlers SetupRouter mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Hotels   *controllers.HotelController
	Bookings *controllers.BookingController
	Search   *controllers.SearchController
	Admin    *controllers.AdminController
}

func parseCorsOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ctl Controllers,
	sessions *utils.SessionManager,
	identity *services.IdentityService,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// public
	r.GET("/", ctl.Auth.Welcome)
	r.GET("/index", ctl.Auth.Welcome)
	r.GET("/register", ctl.Auth.RegisterForm)
	r.POST("/register", ctl.Auth.Register)
	r.GET("/login", ctl.Auth.LoginForm)
	r.POST("/login", ctl.Auth.Login)

	r.GET("/hotels", ctl.Hotels.ListHotels)
	r.GET("/hotels/:id", ctl.Hotels.GetHotel)
	r.GET("/amenities", ctl.Hotels.ListAmenities)
	r.GET("/search", ctl.Search.SearchHotels)
	r.POST("/search", ctl.Search.SearchHotels)

	requireAuth := middleware.RequireAuth(sessions, identity)

	authed := r.Group("/", requireAuth)
	{
		authed.GET("/logout", ctl.Auth.Logout)
		authed.GET("/hotels/:id/book", ctl.Bookings.BookingForm)
		authed.POST("/hotels/:id/book", ctl.Bookings.CreateBooking)
		authed.GET("/bookings", ctl.Bookings.ListBookings)
	}

	admin := r.Group("/admin", requireAuth, middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", ctl.Admin.Dashboard)
		admin.POST("/seed", ctl.Admin.Seed)
		admin.POST("/hotels", ctl.Admin.CreateHotel)
		admin.POST("/hotels/:id/rooms", ctl.Admin.AddRoom)
		admin.POST("/amenities", ctl.Admin.CreateAmenity)
		admin.GET("/bookings/export", ctl.Admin.ExportBookings)
	}

	return r
}
