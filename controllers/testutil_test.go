package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotelapp-backend/config"
	"hotelapp-backend/controllers"
	"hotelapp-backend/models"
	"hotelapp-backend/routes"
	"hotelapp-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	router := routes.SetupRouter(
		controllers.NewHotelController(db),
		controllers.NewRoomTypeController(db),
		controllers.NewRoomController(db),
		controllers.NewGuestController(db),
		controllers.NewBookingController(db, services.NewBookingService(db)),
		controllers.NewReviewController(db),
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// day returns midnight UTC n days after 2024-01-01, as the API wire format.
func day(n int) string {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n).Format("2006-01-02")
}

type bookingFixtures struct {
	hotel    models.Hotel
	roomType models.RoomType
	room     models.Room
	guest    models.Guest
}

func seedBookingFixtures(t *testing.T, db *gorm.DB) bookingFixtures {
	t.Helper()

	f := bookingFixtures{
		hotel:    models.Hotel{Name: "Grand Plaza", Address: "123 Grand Ave"},
		roomType: models.RoomType{TypeName: "Standard", Description: "Standard room", Price: 100},
		guest:    models.Guest{FirstName: "Mickey", LastName: "Mouse", Email: "mickthetrick@gmail.com"},
	}
	if err := db.Create(&f.hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	if err := db.Create(&f.roomType).Error; err != nil {
		t.Fatalf("seed room type: %v", err)
	}
	if err := db.Create(&f.guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	f.room = models.Room{RoomNumber: "101", HotelID: f.hotel.ID, RoomTypeID: f.roomType.ID}
	if err := db.Create(&f.room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return f
}
