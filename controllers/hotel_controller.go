package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotelapp-backend/models"
	"hotelapp-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HotelController struct {
	DB *gorm.DB
}

func NewHotelController(db *gorm.DB) *HotelController {
	return &HotelController{DB: db}
}

// GET /api/hotels
func (hc *HotelController) GetHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := hc.DB.Find(&hotels).Error; err != nil {
		log.Printf("❌ GetHotels DB error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GET /api/hotels/:id
func (hc *HotelController) GetHotelByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel id")
		return
	}

	var hotel models.Hotel
	if err := hc.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// GET /api/hotels/byName/:name
func (hc *HotelController) GetHotelsByName(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	var hotels []models.Hotel
	if err := hc.DB.Where("name LIKE ?", "%"+name+"%").Find(&hotels).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GET /api/hotels/search/:query — matches name or address
func (hc *HotelController) SearchHotels(c *gin.Context) {
	query := "%" + strings.TrimSpace(c.Param("query")) + "%"

	var hotels []models.Hotel
	if err := hc.DB.Where("name LIKE ? OR address LIKE ?", query, query).Find(&hotels).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GET /api/hotels/paginated?pageNumber=1&pageSize=10
func (hc *HotelController) GetPaginatedHotels(c *gin.Context) {
	offset, limit := pageParams(c)

	var hotels []models.Hotel
	if err := hc.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&hotels).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// POST /api/hotels
func (hc *HotelController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	if err := hc.DB.Create(&hotel).Error; err != nil {
		log.Printf("❌ CreateHotel DB error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// PUT /api/hotels/:id — full replace
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel id")
		return
	}

	var payload models.Hotel
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if payload.ID != 0 && payload.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "Body id does not match route id")
		return
	}

	var hotel models.Hotel
	if err := hc.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hotel.Name = payload.Name
	hotel.Address = payload.Address
	hotel.Amenities = payload.Amenities

	if err := hc.DB.Save(&hotel).Error; err != nil {
		log.Printf("❌ UpdateHotel DB error for id %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/hotels/:id — cascades to rooms and their bookings
func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel id")
		return
	}

	result := hc.DB.Delete(&models.Hotel{}, id)
	if result.Error != nil {
		log.Printf("❌ DeleteHotel DB error for id %d: %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete hotel")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	c.Status(http.StatusNoContent)
}
