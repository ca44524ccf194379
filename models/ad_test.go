package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdMediaKind(t *testing.T) {
	assert.Equal(t, AdMediaImage, (&Ad{ImageURL: "/uploads/banner.jpg"}).MediaKind())
	assert.Equal(t, AdMediaImage, (&Ad{ImageURL: "https://cdn.example.com/a.PNG"}).MediaKind())
	assert.Equal(t, AdMediaVideo, (&Ad{ImageURL: "/uploads/promo.mp4"}).MediaKind())
	assert.Equal(t, AdMediaVideo, (&Ad{ImageURL: "https://cdn.example.com/clip.webm?v=2"}).MediaKind())
	assert.Equal(t, AdMediaImage, (&Ad{ImageURL: ""}).MediaKind())
}

func TestAdWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.AddDate(0, 0, -7)
	after := now.AddDate(0, 0, 7)

	open := Ad{}
	assert.True(t, open.WithinWindow(now))
	assert.False(t, open.Expired(now))

	running := Ad{StartDate: &before, EndDate: &after}
	assert.True(t, running.WithinWindow(now))
	assert.False(t, running.Expired(now))

	upcoming := Ad{StartDate: &after}
	assert.False(t, upcoming.WithinWindow(now))

	ended := Ad{EndDate: &before}
	assert.False(t, ended.WithinWindow(now))
	assert.True(t, ended.Expired(now))
}
