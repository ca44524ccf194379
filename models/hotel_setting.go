package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LayoutList = "list"
	LayoutGrid = "grid"

	DisplaySizeNormal = "normal"
	DisplaySizeLarge  = "large"
	DisplaySizeSmall  = "small"
)

// CallExtension is one entry of the tablet's quick-dial list.
type CallExtension struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Extension string `json:"extension"`
}

// HotelSetting holds per-hotel app configuration, one row per hotel,
// written through the upsert endpoint.
type HotelSetting struct {
	gorm.Model

	HotelID            uint   `json:"hotel_id" gorm:"uniqueIndex;not null"`
	AppBackgroundImage string `json:"app_background_image" gorm:"size:512"`
	// Translations keyed by language code.
	Localization    datatypes.JSON `json:"localization"`
	DefaultLanguage string         `json:"default_language" gorm:"size:10"`
	DefaultLayout   string         `json:"default_layout" gorm:"size:20;default:list"`
	// Grid density; only meaningful when default_layout is grid.
	NoItemSection  int            `json:"no_item_section" gorm:"default:2"`
	DisplaySize    string         `json:"display_size" gorm:"size:20;default:normal"`
	CallExtensions datatypes.JSON `json:"call_extensions"`
}

func ValidLayout(l string) bool {
	return l == LayoutList || l == LayoutGrid
}

func ValidDisplaySize(s string) bool {
	switch s {
	case DisplaySizeNormal, DisplaySizeLarge, DisplaySizeSmall:
		return true
	}
	return false
}
