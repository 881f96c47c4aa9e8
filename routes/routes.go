package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelapp-backend/controllers"
	"hotelapp-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
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

// SetupRouter wires every controller into the /api route groups.
func SetupRouter(
	hc *controllers.HotelController,
	rtc *controllers.RoomTypeController,
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	bc *controllers.BookingController,
	rvc *controllers.ReviewController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)

			// static segments must be registered alongside /:id
			hotels.GET("/paginated", hc.GetPaginatedHotels)
			hotels.GET("/byName/:name", hc.GetHotelsByName)
			hotels.GET("/search/:query", hc.SearchHotels)

			hotels.GET("/:id", hc.GetHotelByID)
			hotels.POST("", hc.CreateHotel)
			hotels.PUT("/:id", hc.UpdateHotel)
			hotels.DELETE("/:id", hc.DeleteHotel)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.GET("/paginated", rtc.GetPaginatedRoomTypes)
			roomTypes.GET("/byTypeName/:typeName", rtc.GetRoomTypesByTypeName)
			roomTypes.GET("/search/:query", rtc.SearchRoomTypes)
			roomTypes.GET("/:id", rtc.GetRoomTypeByID)
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.PUT("/:id", rtc.UpdateRoomType)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/paginated", rc.GetPaginatedRooms)
			rooms.GET("/byRoomType/:roomTypeId", rc.GetRoomsByRoomType)
			rooms.GET("/search/:query", rc.SearchRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/paginated", gc.GetPaginatedGuests)
			guests.GET("/byEmail/:email", gc.GetGuestByEmail)
			guests.GET("/search/:query", gc.SearchGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/availability", bc.GetRoomAvailability)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", rvc.GetReviews)
			reviews.GET("/byBooking/:bookingId", rvc.GetReviewsByBooking)
			reviews.GET("/:id", rvc.GetReviewByID)
			reviews.POST("", rvc.CreateReview)
			reviews.PUT("/:id", rvc.UpdateReview)
			reviews.DELETE("/:id", rvc.DeleteReview)
		}
	}

	return r
}
