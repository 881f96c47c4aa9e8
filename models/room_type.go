package models

import (
	"time"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TypeName    string  `gorm:"size:100;not null" json:"typeName" binding:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
}
