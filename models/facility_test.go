package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacilityImagesRoundTrip(t *testing.T) {
	var f Facility
	require.NoError(t, f.SetImages([]string{"/uploads/pool-1.jpg", "/uploads/pool-2.jpg"}))

	assert.Equal(t, []string{"/uploads/pool-1.jpg", "/uploads/pool-2.jpg"}, f.Images())
	// legacy column mirrors the first entry
	assert.Equal(t, "/uploads/pool-1.jpg", f.ImageURL)

	var stored []string
	require.NoError(t, json.Unmarshal(f.ImageURLs, &stored))
	assert.Len(t, stored, 2)
}

func TestFacilityLegacyImageFallback(t *testing.T) {
	f := Facility{ImageURL: "/uploads/gym.jpg"}

	assert.Equal(t, []string{"/uploads/gym.jpg"}, f.Images())

	f.NormalizeImages()
	var urls []string
	require.NoError(t, json.Unmarshal(f.ImageURLs, &urls))
	assert.Equal(t, []string{"/uploads/gym.jpg"}, urls)
}

func TestFacilityClearImages(t *testing.T) {
	var f Facility
	require.NoError(t, f.SetImages([]string{"/uploads/spa.jpg"}))
	require.NoError(t, f.SetImages(nil))

	assert.Empty(t, f.ImageURL)
	assert.Nil(t, f.Images())
}
