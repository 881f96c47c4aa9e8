package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotelapp-backend/models"
	"hotelapp-backend/services"
	"hotelapp-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingController struct {
	DB         *gorm.DB
	BookingSvc *services.BookingService
}

func NewBookingController(db *gorm.DB, svc *services.BookingService) *BookingController {
	return &BookingController{DB: db, BookingSvc: svc}
}

type bookingRequest struct {
	ID            uint   `json:"id"`
	ReferenceCode string `json:"referenceCode"`
	RoomID        uint   `json:"roomId" binding:"required"`
	RoomTypeID    uint   `json:"roomTypeId" binding:"required"`
	GuestID       uint   `json:"guestId" binding:"required"`
	StartDate     string `json:"startDate" binding:"required"`
	EndDate       string `json:"endDate" binding:"required"`
}

// GET /api/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := bc.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var booking models.Booking
	if err := bc.DB.
		Preload("Room.RoomType").
		Preload("RoomType").
		Preload("Guest").
		Preload("Reviews").
		First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/bookings/availability?roomId=101&start=2024-01-01&end=2024-01-03
func (bc *BookingController) GetRoomAvailability(c *gin.Context) {
	roomID64, err := strconv.ParseUint(strings.TrimSpace(c.Query("roomId")), 10, 64)
	if err != nil || roomID64 == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid or missing roomId")
		return
	}
	start, err := parseDate(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !end.After(start) {
		utils.JSONError(c, http.StatusBadRequest, "end must be after start")
		return
	}

	available, err := bc.BookingSvc.IsRoomAvailable(uint(roomID64), start, end)
	if err != nil {
		log.Printf("❌ availability check failed for room %d: %v", roomID64, err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": uint(roomID64), "available": available})
}

// POST /api/bookings
//
// The availability check and the insert are one atomic operation inside the
// service; there is no separate pre-check here.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking := &models.Booking{
		ReferenceCode: strings.TrimSpace(req.ReferenceCode),
		RoomID:        req.RoomID,
		RoomTypeID:    req.RoomTypeID,
		GuestID:       req.GuestID,
		StartDate:     start,
		EndDate:       end,
	}

	created, err := bc.BookingSvc.CreateBooking(booking)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomUnavailable):
			utils.JSONError(c, http.StatusBadRequest, "The room is not available for the selected dates")
		case errors.Is(err, services.ErrInvalidDateRange):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Room %d not found", req.RoomID))
		case isDuplicateKeyErr(err):
			utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Reference code %q is already in use", booking.ReferenceCode))
		case isForeignKeyErr(err):
			utils.JSONError(c, http.StatusBadRequest, "Unknown guest or room type")
		default:
			log.Printf("❌ CreateBooking failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Unable to create booking")
		}
		return
	}

	bc.sendConfirmation(created)

	c.JSON(http.StatusCreated, created)
}

// sendConfirmation emails the guest in the background. Delivery failures are
// logged and never affect the booking.
func (bc *BookingController) sendConfirmation(booking *models.Booking) {
	var guest models.Guest
	if err := bc.DB.First(&guest, booking.GuestID).Error; err != nil {
		log.Printf("⚠️ skipping confirmation email, guest %d not loadable: %v", booking.GuestID, err)
		return
	}
	if strings.TrimSpace(guest.Email) == "" {
		return
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking %s is confirmed from %s to %s.\n",
		guest.FirstName,
		booking.ReferenceCode,
		booking.StartDate.Format("2006-01-02"),
		booking.EndDate.Format("2006-01-02"),
	)

	go func() {
		if err := utils.SendBookingConfirmationEmail(guest.Email, "Booking Confirmation", body); err != nil {
			log.Printf("⚠️ confirmation email for booking %d failed: %v", booking.ID, err)
		}
	}()
}

// PUT /api/bookings/:id — full replace, ORM-style; the overlap invariant is
// enforced at creation only, matching the entity lifecycle.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if req.ID != 0 && req.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "Body id does not match route id")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	booking.RoomID = req.RoomID
	booking.RoomTypeID = req.RoomTypeID
	booking.GuestID = req.GuestID
	booking.StartDate = start
	booking.EndDate = end

	if err := bc.DB.Save(&booking).Error; err != nil {
		if isForeignKeyErr(err) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown room, room type or guest")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/bookings/:id — cascades to the booking's reviews
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	result := bc.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		log.Printf("❌ DeleteBooking DB error for id %d: %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}
	c.Status(http.StatusNoContent)
}
