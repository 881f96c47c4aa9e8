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

type RoomTypeController struct {
	DB *gorm.DB
}

func NewRoomTypeController(db *gorm.DB) *RoomTypeController {
	return &RoomTypeController{DB: db}
}

// GET /api/room-types
func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	var types []models.RoomType
	if err := rc.DB.Find(&types).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, types)
}

// GET /api/room-types/:id
func (rc *RoomTypeController) GetRoomTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room type id")
		return
	}

	var rt models.RoomType
	if err := rc.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, rt)
}

// GET /api/room-types/byTypeName/:typeName
func (rc *RoomTypeController) GetRoomTypesByTypeName(c *gin.Context) {
	typeName := strings.TrimSpace(c.Param("typeName"))

	var types []models.RoomType
	if err := rc.DB.Where("type_name LIKE ?", "%"+typeName+"%").Find(&types).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, types)
}

// GET /api/room-types/search/:query — matches type name or description
func (rc *RoomTypeController) SearchRoomTypes(c *gin.Context) {
	query := "%" + strings.TrimSpace(c.Param("query")) + "%"

	var types []models.RoomType
	if err := rc.DB.Where("type_name LIKE ? OR description LIKE ?", query, query).Find(&types).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, types)
}

// GET /api/room-types/paginated?pageNumber=1&pageSize=10
func (rc *RoomTypeController) GetPaginatedRoomTypes(c *gin.Context) {
	offset, limit := pageParams(c)

	var types []models.RoomType
	if err := rc.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&types).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, types)
}

// POST /api/room-types
func (rc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	if err := rc.DB.Create(&rt).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// PUT /api/room-types/:id — full replace
func (rc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room type id")
		return
	}

	var payload models.RoomType
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if payload.ID != 0 && payload.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "Body id does not match route id")
		return
	}

	var rt models.RoomType
	if err := rc.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	rt.TypeName = payload.TypeName
	rt.Description = payload.Description
	rt.Price = payload.Price

	if err := rc.DB.Save(&rt).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/room-types/:id — cascades to rooms and bookings of the type
func (rc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room type id")
		return
	}

	result := rc.DB.Delete(&models.RoomType{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room type")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Room type not found")
		return
	}
	c.Status(http.StatusNoContent)
}
