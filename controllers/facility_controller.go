package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge-backend/config"
	"concierge-backend/models"
	"concierge-backend/utils"
)

type facilityPayload struct {
	HotelID     uint     `json:"hotel_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	OpeningTime string   `json:"opening_time"`
	ClosingTime string   `json:"closing_time"`
	ImageURL    string   `json:"image_url"`
	ImageURLs   []string `json:"image_urls"`
}

func (p *facilityPayload) images() []string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs
	}
	if p.ImageURL != "" {
		return []string{p.ImageURL}
	}
	return nil
}

// GetFacilities (GET /api/facilities?hotel_id=). Rows written before the
// multi-image column get their legacy single URL surfaced as a one-element
// image_urls array.
func GetFacilities(c *gin.Context) {
	var facilities []models.Facility
	q := config.DB.Order("id")
	if hotelID := hotelIDFromQuery(c); hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	if err := q.Find(&facilities).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list facilities")
		return
	}

	for i := range facilities {
		facilities[i].NormalizeImages()
	}
	c.JSON(http.StatusOK, facilities)
}

// CreateFacility (POST /api/facilities)
func CreateFacility(c *gin.Context) {
	var payload facilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	if payload.HotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}

	facility := models.Facility{
		HotelID:     payload.HotelID,
		Name:        payload.Name,
		Description: payload.Description,
		OpeningTime: payload.OpeningTime,
		ClosingTime: payload.ClosingTime,
	}
	if err := facility.SetImages(payload.images()); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image list")
		return
	}

	if err := config.DB.Create(&facility).Error; err != nil {
		log.Printf("❌ DB ERROR creating facility: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, facility)
}

// UpdateFacility (PUT /api/facilities/:id)
func UpdateFacility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid facility id")
		return
	}

	var facility models.Facility
	if err := config.DB.First(&facility, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "facility not found")
		return
	}

	var payload facilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	facility.Name = payload.Name
	facility.Description = payload.Description
	facility.OpeningTime = payload.OpeningTime
	facility.ClosingTime = payload.ClosingTime
	if err := facility.SetImages(payload.images()); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image list")
		return
	}

	if err := config.DB.Save(&facility).Error; err != nil {
		log.Printf("❌ Update Error for Facility %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	c.JSON(http.StatusOK, facility)
}

// DeleteFacility (DELETE /api/facilities/:id)
func DeleteFacility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid facility id")
		return
	}

	result := config.DB.Delete(&models.Facility{}, id)
	if result.Error != nil {
		log.Printf("❌ DB Error during facility deletion (ID: %d): %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete facility")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "facility not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Facility deleted successfully"})
}
