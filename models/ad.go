package models

import (
	"net/url"
	"path"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	AdMediaImage = "image"
	AdMediaVideo = "video"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".m4v":  true,
}

type Ad struct {
	gorm.Model

	HotelID     uint   `json:"hotel_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url" gorm:"column:image_url;size:512"`
	IsActive    bool   `json:"is_active" gorm:"index"`
	// Seconds the tablet keeps the ad on screen.
	DisplayDuration int        `json:"display_duration" gorm:"default:10"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

// MediaKind distinguishes image from video by the media URL's extension.
func (a *Ad) MediaKind() string {
	raw := a.ImageURL
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		raw = u.Path
	}
	if videoExtensions[strings.ToLower(path.Ext(raw))] {
		return AdMediaVideo
	}
	return AdMediaImage
}

// WithinWindow reports whether the ad's optional date window contains now.
// Missing bounds are open-ended.
func (a *Ad) WithinWindow(now time.Time) bool {
	if a.StartDate != nil && now.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && now.After(*a.EndDate) {
		return false
	}
	return true
}

// Expired reports whether the ad's end date has passed.
func (a *Ad) Expired(now time.Time) bool {
	return a.EndDate != nil && now.After(*a.EndDate)
}
