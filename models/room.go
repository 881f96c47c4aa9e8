package models

import (
	"time"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomNumber string `gorm:"column:room_number;size:50;not null" json:"roomNumber" binding:"required"`

	HotelID    uint `gorm:"index;column:hotel_id" json:"hotelId"`
	RoomTypeID uint `gorm:"index;column:room_type_id" json:"roomTypeId"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	// Deleting a room type removes the rooms of that type.
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE" json:"roomType,omitempty"`

	// One-To-Many Relation: Room -> Bookings (deleting a room removes its bookings)
	Bookings []Booking `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}
