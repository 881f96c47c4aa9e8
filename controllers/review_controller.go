package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hotelapp-backend/models"
	"hotelapp-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// GET /api/reviews
func (rc *ReviewController) GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := rc.DB.Find(&reviews).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GET /api/reviews/:id
func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	var review models.Review
	if err := rc.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Review not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, review)
}

// GET /api/reviews/byBooking/:bookingId
func (rc *ReviewController) GetReviewsByBooking(c *gin.Context) {
	bookingID64, err := strconv.ParseUint(strings.TrimSpace(c.Param("bookingId")), 10, 64)
	if err != nil || bookingID64 == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var reviews []models.Review
	if err := rc.DB.Where("booking_id = ?", uint(bookingID64)).Find(&reviews).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// POST /api/reviews
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		if isForeignKeyErr(err) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown booking")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// PUT /api/reviews/:id — full replace
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	var payload models.Review
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if payload.ID != 0 && payload.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "Body id does not match route id")
		return
	}

	var review models.Review
	if err := rc.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Review not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	review.BookingID = payload.BookingID
	review.Rating = payload.Rating
	review.Content = payload.Content

	if err := rc.DB.Save(&review).Error; err != nil {
		if isForeignKeyErr(err) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown booking")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/reviews/:id
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	result := rc.DB.Delete(&models.Review{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Review not found")
		return
	}
	c.Status(http.StatusNoContent)
}
