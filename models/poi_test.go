package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPOIValidateNormal(t *testing.T) {
	poi := POI{
		Title:       "City Museum",
		Type:        POITypeNormal,
		Description: "Open daily 9-17",
		ImageURL:    "/uploads/museum.jpg",
		URL:         "https://should-be-cleared.example.com",
	}
	require.NoError(t, poi.Validate())
	assert.Empty(t, poi.URL)
	assert.Equal(t, "/uploads/museum.jpg", poi.ImageURL)

	missingDesc := POI{Title: "X", Type: POITypeNormal}
	assert.Error(t, missingDesc.Validate())
}

func TestPOIValidateWebview(t *testing.T) {
	poi := POI{
		Title:       "Local Events",
		Type:        POITypeWebview,
		URL:         "https://events.example.com",
		Description: "should be cleared",
		ImageURL:    "/uploads/stale.jpg",
	}
	require.NoError(t, poi.Validate())
	assert.Empty(t, poi.Description)
	assert.Empty(t, poi.ImageURL)

	missingURL := POI{Title: "X", Type: POITypeWebview}
	assert.Error(t, missingURL.Validate())
}

func TestPOIValidateRejectsUnknownType(t *testing.T) {
	poi := POI{Title: "X", Type: "banner"}
	assert.Error(t, poi.Validate())

	untitled := POI{Type: POITypeNormal, Description: "d"}
	assert.Error(t, untitled.Validate())
}
