package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge-backend/models"
	"concierge-backend/services"
	"concierge-backend/utils"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

// GetRooms (GET /api/rooms?hotel_id=)
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.service.List(hotelIDFromQuery(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom (POST /api/rooms)
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		utils.JSONError(c, http.StatusBadRequest, "room number is required")
		return
	}
	if room.HotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}
	if !models.ValidRoomType(room.Type) {
		utils.JSONError(c, http.StatusBadRequest, "type must be one of standard, deluxe, suite, presidential")
		return
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(room.Status) {
		utils.JSONError(c, http.StatusBadRequest, "status must be one of available, occupied, maintenance")
		return
	}

	if err := rc.service.Create(&room); err != nil {
		log.Printf("❌ DB ERROR creating room: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom (PUT /api/rooms/:id)
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	stripImmutable(updates)

	if t, ok := updates["type"].(string); ok && !models.ValidRoomType(t) {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type")
		return
	}
	if s, ok := updates["status"].(string); ok && !models.ValidRoomStatus(s) {
		utils.JSONError(c, http.StatusBadRequest, "invalid room status")
		return
	}

	if err := rc.service.Update(id, updates); err != nil {
		log.Printf("❌ Update Error for Room %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room updated successfully"})
}

// DeleteRoom (DELETE /api/rooms/:id)
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	affected, err := rc.service.Delete(id)
	if err != nil {
		log.Printf("❌ DB Error during room deletion (ID: %d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	if affected == 0 {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted successfully"})
}

// BulkUpload (POST /api/rooms/bulk-upload?hotel_id=) takes a multipart CSV
// with columns number,type,price,floor_no,status. Valid rows insert; every
// rejected line comes back as its own error string for the console to list.
func (rc *RoomController) BulkUpload(c *gin.Context) {
	hotelID := hotelIDFromQuery(c)
	if hotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "csv file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read upload")
		return
	}
	defer file.Close()

	result, err := rc.service.BulkUpload(file, hotelID)
	if err != nil {
		log.Printf("❌ Bulk room upload failed for hotel %d: %v", hotelID, err)
		utils.JSONError(c, http.StatusInternalServerError, "bulk upload failed")
		return
	}
	c.JSON(http.StatusOK, result)
}
