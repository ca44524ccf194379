package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"concierge-backend/config"
	"concierge-backend/models"
	"concierge-backend/utils"
)

// GetHotelSettingByHotel (GET /api/hotel-settings/by-hotel/:id). 404 when
// the hotel has never saved settings; the console treats that as defaults.
func GetHotelSettingByHotel(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || hotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var setting models.HotelSetting
	if err := config.DB.Where("hotel_id = ?", hotelID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "no settings for this hotel")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpsertHotelSetting (POST /api/hotel-settings/upsert) creates or replaces
// the single settings row for a hotel.
func UpsertHotelSetting(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.HotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}
	if payload.DefaultLayout == "" {
		payload.DefaultLayout = models.LayoutList
	}
	if !models.ValidLayout(payload.DefaultLayout) {
		utils.JSONError(c, http.StatusBadRequest, "default_layout must be list or grid")
		return
	}
	if payload.DisplaySize == "" {
		payload.DisplaySize = models.DisplaySizeNormal
	}
	if !models.ValidDisplaySize(payload.DisplaySize) {
		utils.JSONError(c, http.StatusBadRequest, "invalid display_size")
		return
	}
	if payload.NoItemSection == 0 {
		payload.NoItemSection = 2
	}
	if payload.NoItemSection < 1 || payload.NoItemSection > 6 {
		utils.JSONError(c, http.StatusBadRequest, "no_item_section must be between 1 and 6")
		return
	}

	var existing models.HotelSetting
	err := config.DB.Where("hotel_id = ?", payload.HotelID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := config.DB.Create(&payload).Error; err != nil {
			log.Printf("❌ DB ERROR creating hotel settings: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "database error")
			return
		}
		c.JSON(http.StatusCreated, payload)
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings")
	default:
		payload.ID = existing.ID
		payload.CreatedAt = existing.CreatedAt
		if err := config.DB.Save(&payload).Error; err != nil {
			log.Printf("❌ Update Error for HotelSetting (hotel %d): %v", payload.HotelID, err)
			utils.JSONError(c, http.StatusInternalServerError, "update failed")
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}
