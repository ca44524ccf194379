package models

import (
	"gorm.io/gorm"
)

// Hotel is the scoping root: almost every other entity hangs off a hotel_id.
type Hotel struct {
	gorm.Model

	Name string `json:"name" gorm:"size:255;not null"`
}
