package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// hotelIDFromQuery reads the hotel_id filter; 0 means unscoped.
func hotelIDFromQuery(c *gin.Context) uint {
	raw := c.Query("hotel_id")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// stripImmutable drops fields a partial update must never touch.
func stripImmutable(updates map[string]interface{}) {
	delete(updates, "id")
	delete(updates, "ID")
	delete(updates, "created_at")
	delete(updates, "CreatedAt")
	delete(updates, "updated_at")
	delete(updates, "UpdatedAt")
	delete(updates, "deleted_at")
	delete(updates, "DeletedAt")
}
