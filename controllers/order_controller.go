package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"concierge-backend/services"
	"concierge-backend/utils"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// GetOrders (GET /api/orders?hotel_id=). The console polls this every 30
// seconds while the orders screen is mounted.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.service.List(hotelIDFromQuery(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus (PATCH /api/orders/:id/status). Only the legal
// transitions go through: pending may be accepted, confirmed or cancelled;
// accepted/confirmed orders may complete; terminal orders reject everything.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	order, err := oc.service.UpdateStatus(id, payload.Status)
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "order not found")
		return
	}
	if errors.Is(err, services.ErrIllegalTransition) {
		utils.JSONError(c, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		log.Printf("❌ Status update failed for Order %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	c.JSON(http.StatusOK, order)
}

type createOrderPayload struct {
	HotelID uint                        `json:"hotel_id"`
	RoomID  uint                        `json:"room_id"`
	Items   []services.OrderItemRequest `json:"items"`
}

// CreateOrder (POST /api/orders) serves the guest tablet, not the console;
// the console only reads and transitions.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var payload createOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.HotelID == 0 || payload.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id and room_id are required")
		return
	}

	order, err := oc.service.Create(payload.HotelID, payload.RoomID, payload.Items)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, order)
}
