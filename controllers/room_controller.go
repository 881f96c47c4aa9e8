package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotelapp-backend/models"
	"hotelapp-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

// GET /api/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	var rooms []models.Room
	if err := rc.DB.Preload("RoomType").Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	var room models.Room
	if err := rc.DB.Preload("RoomType").Preload("Hotel").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, room)
}

// GET /api/rooms/byRoomType/:roomTypeId
func (rc *RoomController) GetRoomsByRoomType(c *gin.Context) {
	roomTypeID64, err := strconv.ParseUint(strings.TrimSpace(c.Param("roomTypeId")), 10, 64)
	if err != nil || roomTypeID64 == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room type id")
		return
	}

	var rooms []models.Room
	if err := rc.DB.Where("room_type_id = ?", uint(roomTypeID64)).Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/search/:query — matches the room number
func (rc *RoomController) SearchRooms(c *gin.Context) {
	query := "%" + strings.TrimSpace(c.Param("query")) + "%"

	var rooms []models.Room
	if err := rc.DB.Where("room_number LIKE ?", query).Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/paginated?pageNumber=1&pageSize=10
func (rc *RoomController) GetPaginatedRooms(c *gin.Context) {
	offset, limit := pageParams(c)

	var rooms []models.Room
	if err := rc.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ CreateRoom binding error: %v", err)
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room number is required")
		return
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		if isForeignKeyErr(err) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown hotel or room type")
			return
		}
		log.Printf("❌ CreateRoom DB error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, room)
}

// PUT /api/rooms/:id — full replace
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	var payload models.Room
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if payload.ID != 0 && payload.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "Body id does not match route id")
		return
	}

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	room.RoomNumber = strings.TrimSpace(payload.RoomNumber)
	room.HotelID = payload.HotelID
	room.RoomTypeID = payload.RoomTypeID

	if err := rc.DB.Save(&room).Error; err != nil {
		if isForeignKeyErr(err) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown hotel or room type")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/rooms/:id — cascades to the room's bookings
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	result := rc.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		log.Printf("❌ DeleteRoom DB error for id %d: %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	c.Status(http.StatusNoContent)
}
