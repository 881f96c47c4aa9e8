package models

import (
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `gorm:"size:255;not null" json:"name" binding:"required"`
	Address string `gorm:"size:255" json:"address"`

	// Free-form amenity list, e.g. ["pool","parking","wifi"].
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	// One-To-Many Relation: Hotel -> Rooms (deleting a hotel removes its rooms)
	Rooms []Room `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}
