package models

import (
	"time"
)

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	BookingID uint `gorm:"index;column:booking_id" json:"bookingId" binding:"required"`

	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Content string `gorm:"type:text" json:"content"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}
