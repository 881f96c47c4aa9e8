package controllers

import (
	"errors"
	"net/http"
	"strings"

	"hotelapp-backend/models"
	"hotelapp-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GuestController struct {
	DB *gorm.DB
}

func NewGuestController(db *gorm.DB) *GuestController {
	return &GuestController{DB: db}
}

// GET /api/guests
func (gc *GuestController) GetGuests(c *gin.Context) {
	var guests []models.Guest
	if err := gc.DB.Find(&guests).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GET /api/guests/:id
func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid guest id")
		return
	}

	var guest models.Guest
	if err := gc.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, guest)
}

// GET /api/guests/byEmail/:email
func (gc *GuestController) GetGuestByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))

	var guest models.Guest
	if err := gc.DB.Where("email = ?", email).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, guest)
}

// GET /api/guests/search/:query — matches first name, last name or email
func (gc *GuestController) SearchGuests(c *gin.Context) {
	query := "%" + strings.TrimSpace(c.Param("query")) + "%"

	var guests []models.Guest
	if err := gc.DB.
		Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", query, query, query).
		Find(&guests).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GET /api/guests/paginated?pageNumber=1&pageSize=10
func (gc *GuestController) GetPaginatedGuests(c *gin.Context) {
	offset, limit := pageParams(c)

	var guests []models.Guest
	if err := gc.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&guests).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, guests)
}

// POST /api/guests
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	if err := gc.DB.Create(&guest).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// PUT /api/guests/:id — full replace
func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid guest id")
		return
	}

	var payload models.Guest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if payload.ID != 0 && payload.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "Body id does not match route id")
		return
	}

	var guest models.Guest
	if err := gc.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	guest.FirstName = payload.FirstName
	guest.LastName = payload.LastName
	guest.Phone = payload.Phone
	guest.Email = payload.Email

	if err := gc.DB.Save(&guest).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/guests/:id — cascades to the guest's bookings
func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid guest id")
		return
	}

	result := gc.DB.Delete(&models.Guest{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete guest")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Guest not found")
		return
	}
	c.Status(http.StatusNoContent)
}
