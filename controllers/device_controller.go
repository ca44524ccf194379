package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"concierge-backend/config"
	"concierge-backend/models"
	"concierge-backend/utils"
)

// GetDevices (GET /api/devices?hotel_id=). Without a filter all devices come
// back and the console partitions assigned from the unassigned pool itself.
func GetDevices(c *gin.Context) {
	var devices []models.Device
	q := config.DB.Order("id")
	if hotelID := hotelIDFromQuery(c); hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	if err := q.Find(&devices).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list devices")
		return
	}

	resolveRoomNumbers(devices)
	c.JSON(http.StatusOK, devices)
}

func resolveRoomNumbers(devices []models.Device) {
	roomIDs := make([]uint, 0, len(devices))
	for _, d := range devices {
		if d.RoomID != 0 {
			roomIDs = append(roomIDs, d.RoomID)
		}
	}
	if len(roomIDs) == 0 {
		return
	}

	var rooms []models.Room
	if err := config.DB.Where("id IN ?", roomIDs).Find(&rooms).Error; err != nil {
		log.Printf("warning: failed to resolve room numbers: %v", err)
		return
	}
	numbers := make(map[uint]string, len(rooms))
	for _, r := range rooms {
		numbers[r.ID] = r.Number
	}
	for i := range devices {
		devices[i].RoomNumber = numbers[devices[i].RoomID]
	}
}

// CreateDevice (POST /api/devices). Registration comes either from staff
// (hotel+room known) or from a factory-fresh tablet joining the pool. The
// tablet supplies its own uuid; one is generated if absent.
func CreateDevice(c *gin.Context) {
	var device models.Device
	if err := c.ShouldBindJSON(&device); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	device.UUID = strings.TrimSpace(device.UUID)
	if device.UUID == "" {
		device.UUID = uuid.New().String()
	}
	if device.Status == "" {
		if device.Assigned() {
			device.Status = models.DeviceStatusActive
		} else {
			device.Status = models.DeviceStatusPending
		}
	}
	if device.Assigned() && device.RoomID != 0 {
		var room models.Room
		if err := config.DB.Where("id = ? AND hotel_id = ?", device.RoomID, device.HotelID).First(&room).Error; err != nil {
			utils.JSONError(c, http.StatusBadRequest, "room does not belong to the hotel")
			return
		}
	}

	if err := config.DB.Create(&device).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			utils.JSONError(c, http.StatusConflict, "device uuid already registered")
			return
		}
		log.Printf("❌ DB ERROR creating device: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, device)
}

// UpdateDevice (PUT /api/devices/:id) edits or claims a device. Claiming a
// pool device means setting hotel_id, room_id, name and status in one call.
// The uuid is tablet-assigned and immutable.
func UpdateDevice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid device id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	stripImmutable(updates)
	delete(updates, "uuid")

	var device models.Device
	if err := config.DB.First(&device, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "device not found")
		return
	}

	if hid, rid, ok := assignmentTarget(device, updates); ok {
		var room models.Room
		if err := config.DB.Where("id = ? AND hotel_id = ?", rid, hid).First(&room).Error; err != nil {
			utils.JSONError(c, http.StatusBadRequest, "room does not belong to the hotel")
			return
		}
	}

	if err := config.DB.Model(&device).Updates(updates).Error; err != nil {
		log.Printf("❌ Update Error for Device %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}

	config.DB.First(&device, id)
	out := []models.Device{device}
	resolveRoomNumbers(out)
	c.JSON(http.StatusOK, out[0])
}

// assignmentTarget resolves the hotel/room pair an update would leave the
// device with, when both end up set.
func assignmentTarget(device models.Device, updates map[string]interface{}) (uint, uint, bool) {
	hid := device.HotelID
	if v, ok := updates["hotel_id"].(float64); ok {
		hid = uint(v)
	}
	rid := device.RoomID
	if v, ok := updates["room_id"].(float64); ok {
		rid = uint(v)
	}
	return hid, rid, hid != 0 && rid != 0
}

// DeleteDevice (DELETE /api/devices/:id)
func DeleteDevice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid device id")
		return
	}

	result := config.DB.Delete(&models.Device{}, id)
	if result.Error != nil {
		log.Printf("❌ DB Error during device deletion (ID: %d): %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete device")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "device not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Device deleted successfully"})
}
