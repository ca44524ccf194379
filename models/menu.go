package models

import (
	"strings"

	"gorm.io/gorm"
)

// MenuPageSize is the fixed page size of the flattened item view.
const MenuPageSize = 6

type MenuCategory struct {
	gorm.Model

	ServiceID uint   `json:"service_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"size:255"`

	Items []MenuItem `json:"items" gorm:"foreignKey:CategoryID"`
}

type MenuItem struct {
	gorm.Model

	CategoryID  uint    `json:"category_id" gorm:"index;not null"`
	Name        string  `json:"name" gorm:"size:255"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url" gorm:"column:image_url;size:512"`

	Modifiers []MenuModifier `json:"modifiers" gorm:"foreignKey:MenuItemID"`
}

type MenuModifier struct {
	gorm.Model

	MenuItemID  uint   `json:"menu_item_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"size:255"`
	MultiSelect bool   `json:"multi_select"`

	Options []ModifierOption `json:"options" gorm:"foreignKey:ModifierID"`
}

type ModifierOption struct {
	gorm.Model

	ModifierID uint   `json:"modifier_id" gorm:"index;not null"`
	Name       string `json:"name" gorm:"size:255"`
	// Signed: an option may discount the item price.
	PriceDelta int `json:"price_delta"`
}

// FlatMenuItem is a menu item annotated with its category, the unit the
// admin console searches and paginates over.
type FlatMenuItem struct {
	MenuItem
	CategoryID   uint   `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// FlattenItems lists every item across all categories in tree order.
func (s *Service) FlattenItems() []FlatMenuItem {
	var flat []FlatMenuItem
	for _, cat := range s.Categories {
		for _, item := range cat.Items {
			flat = append(flat, FlatMenuItem{
				MenuItem:     item,
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
			})
		}
	}
	return flat
}

// FilterItems applies a case-insensitive substring match on the item name
// and an optional category filter (0 = all categories).
func FilterItems(items []FlatMenuItem, search string, categoryID uint) []FlatMenuItem {
	needle := strings.ToLower(strings.TrimSpace(search))
	var out []FlatMenuItem
	for _, it := range items {
		if categoryID != 0 && it.CategoryID != categoryID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(it.MenuItem.Name), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// PaginateItems slices one page out of the filtered list. Pages are
// 1-based; out-of-range pages return an empty slice.
func PaginateItems(items []FlatMenuItem, page int) []FlatMenuItem {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * MenuPageSize
	if start >= len(items) {
		return nil
	}
	end := start + MenuPageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages reports how many pages the filtered list spans.
func TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + MenuPageSize - 1) / MenuPageSize
}

// UnitPrice is the item base price plus the delta of every selected option.
func (i *MenuItem) UnitPrice(selected []ModifierOption) float64 {
	price := i.Price
	for _, opt := range selected {
		price += float64(opt.PriceDelta)
	}
	return price
}
