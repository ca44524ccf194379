package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"concierge-backend/models"
)

var ErrIllegalTransition = errors.New("illegal status transition")

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// List returns orders newest first, items and option snapshots included.
func (s *OrderService) List(hotelID uint) ([]models.Order, error) {
	var orders []models.Order
	q := s.db.Preload("Items").Order("created_at DESC")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Find(&orders).Error
	return orders, err
}

// UpdateStatus applies one legal transition. Terminal orders and skipped
// states are rejected with ErrIllegalTransition.
func (s *OrderService) UpdateStatus(id uint, next string) (models.Order, error) {
	var order models.Order
	if !models.ValidOrderStatus(next) {
		return order, fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, next)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !order.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
		}
		if err := tx.Model(&order).Update("status", next).Error; err != nil {
			return err
		}
		order.Status = next
		return nil
	})
	if err != nil {
		return order, err
	}
	return order, s.db.Preload("Items").First(&order, id).Error
}

// OrderItemRequest is one line of an incoming guest order.
type OrderItemRequest struct {
	MenuItemID uint   `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
	OptionIDs  []uint `json:"option_ids"`
}

// Create places an order from the tablet: item names, prices and selected
// options are snapshotted so later menu edits never rewrite order history.
// Total = sum over lines of quantity * (item price + selected deltas).
func (s *OrderService) Create(hotelID, roomID uint, lines []OrderItemRequest) (models.Order, error) {
	var order models.Order
	if len(lines) == 0 {
		return order, errors.New("order needs at least one item")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("id = ? AND hotel_id = ?", roomID, hotelID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("room %d not found in hotel %d", roomID, hotelID)
			}
			return err
		}

		order = models.Order{
			HotelID: hotelID,
			RoomID:  roomID,
			Status:  models.OrderStatusPending,
		}

		for _, line := range lines {
			if line.Quantity <= 0 {
				return fmt.Errorf("quantity must be positive for item %d", line.MenuItemID)
			}

			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("menu item %d not found", line.MenuItemID)
				}
				return err
			}

			var cat models.MenuCategory
			if err := tx.First(&cat, item.CategoryID).Error; err != nil {
				return err
			}
			var svc models.Service
			if err := tx.First(&svc, cat.ServiceID).Error; err != nil {
				return err
			}

			var selected []models.ModifierOption
			if len(line.OptionIDs) > 0 {
				if err := tx.Where("id IN ?", line.OptionIDs).Find(&selected).Error; err != nil {
					return err
				}
				if len(selected) != len(line.OptionIDs) {
					return fmt.Errorf("unknown modifier option on item %d", line.MenuItemID)
				}
			}

			unitPrice := item.UnitPrice(selected)

			var snapshot datatypes.JSON
			if len(selected) > 0 {
				raw, err := json.Marshal(selected)
				if err != nil {
					return err
				}
				snapshot = datatypes.JSON(raw)
			}

			itemID := item.ID
			order.Items = append(order.Items, models.OrderItem{
				MenuItemID: &itemID,
				Service: models.OrderItemService{
					Name: item.Name,
					Type: svc.Type,
				},
				Quantity:        line.Quantity,
				Price:           unitPrice,
				Notes:           line.Notes,
				ModifierOptions: snapshot,
			})
			order.TotalAmount += unitPrice * float64(line.Quantity)
		}

		return tx.Create(&order).Error
	})

	return order, err
}
