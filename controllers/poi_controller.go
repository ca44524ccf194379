package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"concierge-backend/config"
	"concierge-backend/models"
	"concierge-backend/utils"
)

// GetPOIs (GET /api/pois). Points of interest are global, not hotel-scoped.
func GetPOIs(c *gin.Context) {
	var pois []models.POI
	if err := config.DB.Order("id").Find(&pois).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list pois")
		return
	}
	c.JSON(http.StatusOK, pois)
}

// CreatePOI (POST /api/pois)
func CreatePOI(c *gin.Context) {
	var poi models.POI
	if err := c.ShouldBindJSON(&poi); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := poi.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Create(&poi).Error; err != nil {
		log.Printf("❌ DB ERROR creating poi: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, poi)
}

// UpdatePOI (PUT /api/pois/:id). The full payload is validated against the
// type discriminator; switching types clears the other branch's fields.
func UpdatePOI(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid poi id")
		return
	}

	var existing models.POI
	if err := config.DB.First(&existing, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "poi not found")
		return
	}

	var poi models.POI
	if err := c.ShouldBindJSON(&poi); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := poi.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	existing.Title = poi.Title
	existing.Type = poi.Type
	existing.Description = poi.Description
	existing.ImageURL = poi.ImageURL
	existing.URL = poi.URL

	if err := config.DB.Save(&existing).Error; err != nil {
		log.Printf("❌ Update Error for POI %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	c.JSON(http.StatusOK, existing)
}

// DeletePOI (DELETE /api/pois/:id)
func DeletePOI(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid poi id")
		return
	}

	result := config.DB.Delete(&models.POI{}, id)
	if result.Error != nil {
		log.Printf("❌ DB Error during poi deletion (ID: %d): %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete poi")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "poi not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "POI deleted successfully"})
}
