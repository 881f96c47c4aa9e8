package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FirstName string `gorm:"column:first_name;size:100" json:"firstName" binding:"required"`
	LastName  string `gorm:"column:last_name;size:100" json:"lastName" binding:"required"`
	Phone     string `gorm:"size:50" json:"phone"`
	Email     string `gorm:"size:255;index" json:"email"`

	Bookings []Booking `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}
