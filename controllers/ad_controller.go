package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"concierge-backend/models"
	"concierge-backend/services"
	"concierge-backend/utils"
)

type AdController struct {
	service *services.AdService
}

func NewAdController(service *services.AdService) *AdController {
	return &AdController{service: service}
}

func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date " + raw)
}

// GetAds (GET /api/ads?hotel_id=&include_all=&filter_start_date=&filter_end_date=)
func (ac *AdController) GetAds(c *gin.Context) {
	filter := services.AdFilter{
		HotelID:    hotelIDFromQuery(c),
		IncludeAll: c.Query("include_all") == "true",
	}

	var err error
	if filter.FilterStart, err = parseDateQuery(c, "filter_start_date"); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if filter.FilterEnd, err = parseDateQuery(c, "filter_end_date"); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	ads, err := ac.service.List(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list ads")
		return
	}
	c.JSON(http.StatusOK, ads)
}

// CreateAd (POST /api/ads)
func (ac *AdController) CreateAd(c *gin.Context) {
	var ad models.Ad
	if err := c.ShouldBindJSON(&ad); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	ad.Title = strings.TrimSpace(ad.Title)
	if ad.Title == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}
	if ad.HotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}
	if ad.StartDate != nil && ad.EndDate != nil && ad.EndDate.Before(*ad.StartDate) {
		utils.JSONError(c, http.StatusBadRequest, "end_date cannot precede start_date")
		return
	}
	if ad.DisplayDuration <= 0 {
		ad.DisplayDuration = 10
	}

	if err := ac.service.Create(&ad); err != nil {
		log.Printf("❌ DB ERROR creating ad: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, ad)
}

// UpdateAd (PUT /api/ads/:id)
func (ac *AdController) UpdateAd(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid ad id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	stripImmutable(updates)

	err := ac.service.Update(id, updates)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "ad not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Ad updated successfully"})
}

// DeleteAd (DELETE /api/ads/:id)
func (ac *AdController) DeleteAd(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid ad id")
		return
	}

	err := ac.service.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "ad not found")
		return
	}
	if err != nil {
		log.Printf("❌ DB Error during ad deletion (ID: %d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete ad")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Ad deleted successfully"})
}
