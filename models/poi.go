package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

const (
	POITypeNormal  = "normal"
	POITypeWebview = "webview"
)

// POI is global, not hotel-scoped. The type discriminator decides which
// fields apply: normal carries description (+optional image), webview
// carries an external URL. The inactive branch is cleared, never merged.
type POI struct {
	gorm.Model

	Title       string `json:"title" gorm:"size:255"`
	Type        string `json:"type" gorm:"size:20"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url" gorm:"column:image_url;size:512"`
	URL         string `json:"url" gorm:"size:512"`
}

// Validate enforces the discriminator and wipes the other branch's fields.
func (p *POI) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	switch p.Type {
	case POITypeNormal:
		if strings.TrimSpace(p.Description) == "" {
			return errors.New("description is required for normal POIs")
		}
		p.URL = ""
	case POITypeWebview:
		if strings.TrimSpace(p.URL) == "" {
			return errors.New("url is required for webview POIs")
		}
		p.Description = ""
		p.ImageURL = ""
	default:
		return errors.New("type must be normal or webview")
	}
	return nil
}
