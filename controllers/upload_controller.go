package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"concierge-backend/services"
	"concierge-backend/utils"
)

// Upload (POST /api/upload) accepts one multipart file and returns the URL
// the static /uploads route serves it at.
func Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read upload")
		return
	}
	defer file.Close()

	url, err := services.SaveUpload(file, fileHeader.Filename)
	if err != nil {
		log.Printf("❌ Upload failed (%s): %v", fileHeader.Filename, err)
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
