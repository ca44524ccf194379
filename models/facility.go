package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Facility struct {
	gorm.Model

	HotelID     uint   `json:"hotel_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`
	OpeningTime string `json:"opening_time" gorm:"size:20"`
	ClosingTime string `json:"closing_time" gorm:"size:20"`

	// Legacy single image, kept populated for old tablet builds.
	ImageURL  string         `json:"image_url" gorm:"column:image_url;size:512"`
	ImageURLs datatypes.JSON `json:"image_urls" gorm:"column:image_urls"`
}

// Images decodes the stored array, falling back to the legacy single field
// when only that was ever set.
func (f *Facility) Images() []string {
	if len(f.ImageURLs) > 0 {
		var urls []string
		if err := json.Unmarshal(f.ImageURLs, &urls); err == nil && len(urls) > 0 {
			return urls
		}
	}
	if f.ImageURL != "" {
		return []string{f.ImageURL}
	}
	return nil
}

// SetImages stores the array and mirrors the first element into the legacy
// field so both read paths stay consistent.
func (f *Facility) SetImages(urls []string) error {
	if len(urls) == 0 {
		f.ImageURLs = nil
		f.ImageURL = ""
		return nil
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	f.ImageURLs = datatypes.JSON(raw)
	f.ImageURL = urls[0]
	return nil
}

// NormalizeImages backfills image_urls from the legacy column on rows that
// predate the array, so responses always carry the array form.
func (f *Facility) NormalizeImages() {
	if len(f.ImageURLs) == 0 && f.ImageURL != "" {
		raw, err := json.Marshal([]string{f.ImageURL})
		if err == nil {
			f.ImageURLs = datatypes.JSON(raw)
		}
	}
}
