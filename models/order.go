package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	gorm.Model

	HotelID     uint    `json:"hotel_id" gorm:"index;not null"`
	RoomID      uint    `json:"room_id" gorm:"index;not null"`
	Status      string  `json:"status" gorm:"size:50;index"`
	TotalAmount float64 `json:"total_amount"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItemService is the snapshot of what was ordered; menu edits after the
// fact must not rewrite order history.
type OrderItemService struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type OrderItem struct {
	gorm.Model

	OrderID    uint  `json:"order_id" gorm:"index;not null"`
	MenuItemID *uint `json:"menu_item_id,omitempty"`

	Service  OrderItemService `json:"service" gorm:"embedded;embeddedPrefix:service_"`
	Quantity int              `json:"quantity"`
	Price    float64          `json:"price"`
	Notes    string           `json:"notes" gorm:"type:text"`

	// Snapshot of the selected modifier options ([{ID, name, price_delta}]).
	ModifierOptions datatypes.JSON `json:"modifier_options,omitempty"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusConfirmed,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderStatusTerminal reports whether no further transition is allowed.
func OrderStatusTerminal(s string) bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransition enforces the monotonic status machine:
// pending -> in_progress | confirmed | cancelled, then
// in_progress/confirmed -> completed. Completed and cancelled are terminal.
func (o *Order) CanTransition(next string) bool {
	switch o.Status {
	case OrderStatusPending:
		return next == OrderStatusInProgress || next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusInProgress, OrderStatusConfirmed:
		return next == OrderStatusCompleted
	}
	return false
}
