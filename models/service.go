package models

import (
	"gorm.io/gorm"
)

const (
	ServiceTypeFood     = "food"
	ServiceTypeMassage  = "massage"
	ServiceTypeLaundry  = "laundry"
	ServiceTypeCleaning = "cleaning"
	ServiceTypeOther    = "other"
)

// Service owns the whole menu tree: categories > items > modifiers > options.
// The tree is always loaded and replaced as one aggregate; mutations hit the
// sub-resource endpoints and the client re-fetches the parent service.
type Service struct {
	gorm.Model

	HotelID     uint    `json:"hotel_id" gorm:"index;not null"`
	Name        string  `json:"name" gorm:"size:255"`
	Type        string  `json:"type" gorm:"size:50"`
	Price       float64 `json:"price"`
	Description string  `json:"description" gorm:"type:text"`
	ImageURL    string  `json:"image_url" gorm:"column:image_url;size:512"`

	Categories []MenuCategory `json:"categories" gorm:"foreignKey:ServiceID"`
}

func ValidServiceType(t string) bool {
	switch t {
	case ServiceTypeFood, ServiceTypeMassage, ServiceTypeLaundry, ServiceTypeCleaning, ServiceTypeOther:
		return true
	}
	return false
}
