package models

import (
	"time"
)

// Booking occupies a room for the half-open range [StartDate, EndDate):
// the end date is the check-out morning, so back-to-back bookings share it.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode,omitempty"`

	RoomID     uint `gorm:"column:room_id;index:idx_bookings_room_dates" json:"roomId"`
	RoomTypeID uint `gorm:"column:room_type_id;index" json:"roomTypeId"`
	GuestID    uint `gorm:"column:guest_id;index" json:"guestId"`

	StartDate time.Time `gorm:"column:start_date;index:idx_bookings_room_dates" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`

	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Guest Guest `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`

	// Deleting a room type removes the bookings that reference it.
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID;constraint:OnDelete:CASCADE" json:"roomType,omitempty"`

	// One-To-Many Relation: Booking -> Reviews (deleting a booking removes its reviews)
	Reviews []Review `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
