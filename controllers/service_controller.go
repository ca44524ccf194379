package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge-backend/models"
	"concierge-backend/services"
	"concierge-backend/utils"
)

type ServiceController struct {
	menu *services.MenuService
}

func NewServiceController(menu *services.MenuService) *ServiceController {
	return &ServiceController{menu: menu}
}

// GetServices (GET /api/services?hotel_id=) lists services without their
// trees; the detail endpoint carries the aggregate.
func (sc *ServiceController) GetServices(c *gin.Context) {
	svcs, err := sc.menu.ListServices(hotelIDFromQuery(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services")
		return
	}
	c.JSON(http.StatusOK, svcs)
}

// GetService (GET /api/services/:id) returns the full menu tree in one
// response; the console rebuilds its whole editor view from it after every
// mutation.
func (sc *ServiceController) GetService(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	svc, err := sc.menu.GetServiceTree(id)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateService (POST /api/services)
func (sc *ServiceController) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	if svc.HotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}
	if !models.ValidServiceType(svc.Type) {
		utils.JSONError(c, http.StatusBadRequest, "type must be one of food, massage, laundry, cleaning, other")
		return
	}

	if err := sc.menu.CreateService(&svc); err != nil {
		log.Printf("❌ DB ERROR creating service: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService (PUT /api/services/:id) accepts partial payloads: the
// console saves just an image_url from the settings modal, or the whole
// name/type/price form.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	stripImmutable(updates)
	delete(updates, "categories")
	delete(updates, "hotel_id")

	if t, ok := updates["type"].(string); ok && !models.ValidServiceType(t) {
		utils.JSONError(c, http.StatusBadRequest, "invalid service type")
		return
	}

	err := sc.menu.UpdateService(id, updates)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		log.Printf("❌ Update Error for Service %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Service updated successfully"})
}

// DeleteService (DELETE /api/services/:id) cascades to categories, items,
// modifiers and options atomically.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	err := sc.menu.DeleteService(id)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		log.Printf("❌ DB Error during service deletion (ID: %d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Service deleted successfully"})
}
