package services

import (
	"errors"

	"gorm.io/gorm"

	"concierge-backend/models"
)

var ErrNotFound = errors.New("record not found")

// MenuService owns the service/menu aggregate. Reads return the whole
// categories > items > modifiers > options tree; deletes cascade inside a
// transaction so the client never observes a half-removed subtree.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func (s *MenuService) ListServices(hotelID uint) ([]models.Service, error) {
	var svcs []models.Service
	q := s.db.Order("id")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Find(&svcs).Error
	return svcs, err
}

// GetServiceTree loads one service with its full menu tree in id order.
func (s *MenuService) GetServiceTree(id uint) (models.Service, error) {
	var svc models.Service
	err := s.db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("menu_categories.id") }).
		Preload("Categories.Items", func(db *gorm.DB) *gorm.DB { return db.Order("menu_items.id") }).
		Preload("Categories.Items.Modifiers", func(db *gorm.DB) *gorm.DB { return db.Order("menu_modifiers.id") }).
		Preload("Categories.Items.Modifiers.Options", func(db *gorm.DB) *gorm.DB { return db.Order("modifier_options.id") }).
		First(&svc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return svc, ErrNotFound
	}
	return svc, err
}

func (s *MenuService) CreateService(svc *models.Service) error {
	return s.db.Create(svc).Error
}

func (s *MenuService) UpdateService(id uint, updates map[string]interface{}) error {
	result := s.db.Model(&models.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteService removes the service and its whole tree.
func (s *MenuService) DeleteService(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var catIDs []uint
		if err := tx.Model(&models.MenuCategory{}).Where("service_id = ?", id).Pluck("id", &catIDs).Error; err != nil {
			return err
		}
		if len(catIDs) > 0 {
			var itemIDs []uint
			if err := tx.Model(&models.MenuItem{}).Where("category_id IN ?", catIDs).Pluck("id", &itemIDs).Error; err != nil {
				return err
			}
			if err := deleteItemsCascade(tx, itemIDs); err != nil {
				return err
			}
			if err := tx.Where("service_id = ?", id).Delete(&models.MenuCategory{}).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&models.Service{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func deleteItemsCascade(tx *gorm.DB, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	var modIDs []uint
	if err := tx.Model(&models.MenuModifier{}).Where("menu_item_id IN ?", itemIDs).Pluck("id", &modIDs).Error; err != nil {
		return err
	}
	if len(modIDs) > 0 {
		if err := tx.Where("modifier_id IN ?", modIDs).Delete(&models.ModifierOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", modIDs).Delete(&models.MenuModifier{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", itemIDs).Delete(&models.MenuItem{}).Error
}

func (s *MenuService) CreateCategory(cat *models.MenuCategory) error {
	if err := s.db.First(&models.Service{}, cat.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Create(cat).Error
}

func (s *MenuService) CreateItem(item *models.MenuItem) error {
	if err := s.db.First(&models.MenuCategory{}, item.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Create(item).Error
}

func (s *MenuService) UpdateItem(id uint, updates map[string]interface{}) error {
	result := s.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes the item with its modifiers and options.
func (s *MenuService) DeleteItem(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.MenuItem{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return deleteModifiersOfItems(tx, []uint{id})
	})
}

func deleteModifiersOfItems(tx *gorm.DB, itemIDs []uint) error {
	var modIDs []uint
	if err := tx.Model(&models.MenuModifier{}).Where("menu_item_id IN ?", itemIDs).Pluck("id", &modIDs).Error; err != nil {
		return err
	}
	if len(modIDs) == 0 {
		return nil
	}
	if err := tx.Where("modifier_id IN ?", modIDs).Delete(&models.ModifierOption{}).Error; err != nil {
		return err
	}
	return tx.Where("menu_item_id IN ?", itemIDs).Delete(&models.MenuModifier{}).Error
}

func (s *MenuService) CreateModifier(mod *models.MenuModifier) error {
	if err := s.db.First(&models.MenuItem{}, mod.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Create(mod).Error
}

func (s *MenuService) UpdateModifier(id uint, updates map[string]interface{}) error {
	result := s.db.Model(&models.MenuModifier{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteModifier cascades to its options, matching what the console warns
// the operator about before confirming.
func (s *MenuService) DeleteModifier(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.MenuModifier{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("modifier_id = ?", id).Delete(&models.ModifierOption{}).Error
	})
}

func (s *MenuService) CreateOption(opt *models.ModifierOption) error {
	if err := s.db.First(&models.MenuModifier{}, opt.ModifierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Create(opt).Error
}

func (s *MenuService) UpdateOption(id uint, updates map[string]interface{}) error {
	result := s.db.Model(&models.ModifierOption{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) DeleteOption(id uint) error {
	result := s.db.Delete(&models.ModifierOption{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
