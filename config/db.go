package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotelapp-backend/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema in
// parent->child order and seeds sample data.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate creates the schema, parents before children so the cascade FKs
// resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Hotel{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.Review{},
	)
}

// SeedDatabase inserts sample data once per table.
func SeedDatabase(db *gorm.DB) {
	// ---------------- Hotels ----------------
	var hotelCount int64
	db.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotels := []models.Hotel{
			{Name: "Grand Plaza", Address: "123 Grand Ave", Amenities: datatypes.JSON([]byte(`["pool","parking","wifi"]`))},
			{Name: "Ocean View", Address: "456 Ocean Drive", Amenities: datatypes.JSON([]byte(`["beach","wifi"]`))},
		}
		if err := db.Create(&hotels).Error; err != nil {
			log.Printf("warning: failed to seed hotels: %v", err)
		} else {
			log.Println("Hotels seeded")
		}
	}

	// ---------------- RoomTypes ----------------
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Standard", Description: "A standard room with basic amenities.", Price: 100},
			{TypeName: "Deluxe", Description: "A deluxe room with ocean views and a minibar.", Price: 200},
			{TypeName: "Suite", Description: "A spacious suite with a separate living area and premium amenities.", Price: 300},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		var standard, deluxe models.RoomType
		var first, second models.Hotel
		if err := db.Where("type_name = ?", "Standard").First(&standard).Error; err != nil {
			log.Printf("warning: standard room type missing, skipping room seed: %v", err)
			return
		}
		if err := db.Where("type_name = ?", "Deluxe").First(&deluxe).Error; err != nil {
			log.Printf("warning: deluxe room type missing, skipping room seed: %v", err)
			return
		}
		if err := db.Order("id ASC").First(&first).Error; err != nil {
			log.Printf("warning: no hotels, skipping room seed: %v", err)
			return
		}
		if err := db.Order("id ASC").Offset(1).First(&second).Error; err != nil {
			second = first
		}

		rooms := []models.Room{
			{RoomNumber: "101", RoomTypeID: standard.ID, HotelID: first.ID},
			{RoomNumber: "102", RoomTypeID: standard.ID, HotelID: first.ID},
			{RoomNumber: "103", RoomTypeID: standard.ID, HotelID: first.ID},
			{RoomNumber: "201", RoomTypeID: deluxe.ID, HotelID: first.ID},
			{RoomNumber: "202", RoomTypeID: deluxe.ID, HotelID: first.ID},
			{RoomNumber: "203", RoomTypeID: deluxe.ID, HotelID: second.ID},
			{RoomNumber: "301", RoomTypeID: deluxe.ID, HotelID: second.ID},
			{RoomNumber: "302", RoomTypeID: deluxe.ID, HotelID: second.ID},
			{RoomNumber: "303", RoomTypeID: deluxe.ID, HotelID: second.ID},
			{RoomNumber: "304", RoomTypeID: deluxe.ID, HotelID: second.ID},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	// ---------------- Guests ----------------
	var guestCount int64
	db.Model(&models.Guest{}).Count(&guestCount)
	if guestCount == 0 {
		guests := []models.Guest{
			{FirstName: "Mickey", LastName: "Mouse", Phone: "123-456-7890", Email: "mickthetrick@gmail.com"},
			{FirstName: "John", LastName: "Doe", Phone: "987-654-3210", Email: "john.doe@example.com"},
			{FirstName: "Jane", LastName: "Doe", Phone: "555-555-5555", Email: "jane.doe@example.com"},
			{FirstName: "Jim", LastName: "Beam", Phone: "666-666-6666", Email: "jim.beam@example.com"},
		}
		if err := db.Create(&guests).Error; err != nil {
			log.Printf("warning: failed to seed guests: %v", err)
		} else {
			log.Println("Guests seeded")
		}
	}

	// ---------------- Bookings ----------------
	var bookingCount int64
	db.Model(&models.Booking{}).Count(&bookingCount)
	if bookingCount == 0 {
		var guest models.Guest
		var standardRoom, deluxeRoom models.Room
		if err := db.Where("email = ?", "mickthetrick@gmail.com").First(&guest).Error; err != nil {
			log.Printf("warning: seed guest missing, skipping booking seed: %v", err)
			return
		}
		if err := db.Where("room_number = ?", "101").First(&standardRoom).Error; err != nil {
			log.Printf("warning: seed room 101 missing, skipping booking seed: %v", err)
			return
		}
		if err := db.Where("room_number = ?", "201").First(&deluxeRoom).Error; err != nil {
			log.Printf("warning: seed room 201 missing, skipping booking seed: %v", err)
			return
		}

		now := time.Now().UTC().Truncate(24 * time.Hour)
		bookings := []models.Booking{
			{GuestID: guest.ID, RoomID: standardRoom.ID, RoomTypeID: standardRoom.RoomTypeID, StartDate: now, EndDate: now.AddDate(0, 0, 2), ReferenceCode: "SEED-0001"},
			{GuestID: guest.ID, RoomID: deluxeRoom.ID, RoomTypeID: deluxeRoom.RoomTypeID, StartDate: now.AddDate(0, 0, 5), EndDate: now.AddDate(0, 0, 7), ReferenceCode: "SEED-0002"},
			{GuestID: guest.ID, RoomID: standardRoom.ID, RoomTypeID: standardRoom.RoomTypeID, StartDate: now.AddDate(0, 0, 10), EndDate: now.AddDate(0, 0, 12), ReferenceCode: "SEED-0003"},
		}
		if err := db.Create(&bookings).Error; err != nil {
			log.Printf("warning: failed to seed bookings: %v", err)
		} else {
			log.Println("Bookings seeded")
		}
	}

	// ---------------- Reviews ----------------
	var reviewCount int64
	db.Model(&models.Review{}).Count(&reviewCount)
	if reviewCount == 0 {
		var booking models.Booking
		if err := db.Order("id ASC").First(&booking).Error; err != nil {
			log.Printf("warning: no bookings, skipping review seed: %v", err)
			return
		}
		review := models.Review{BookingID: booking.ID, Rating: 5, Content: "Amazing stay!"}
		if err := db.Create(&review).Error; err != nil {
			log.Printf("warning: failed to seed reviews: %v", err)
		} else {
			log.Println("Reviews seeded")
		}
	}
}
