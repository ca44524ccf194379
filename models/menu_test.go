package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testService() *Service {
	drinks := MenuCategory{Model: gorm.Model{ID: 1}, Name: "Drinks"}
	for i := 1; i <= 4; i++ {
		drinks.Items = append(drinks.Items, MenuItem{
			Model: gorm.Model{ID: uint(i)},
			Name:  fmt.Sprintf("Juice %d", i),
			Price: 100,
		})
	}
	mains := MenuCategory{Model: gorm.Model{ID: 2}, Name: "Mains"}
	for i := 5; i <= 12; i++ {
		mains.Items = append(mains.Items, MenuItem{
			Model: gorm.Model{ID: uint(i)},
			Name:  fmt.Sprintf("Dish %d", i),
			Price: 250,
		})
	}
	return &Service{
		Name:       "Room Dining",
		Type:       ServiceTypeFood,
		Categories: []MenuCategory{drinks, mains},
	}
}

func TestFlattenItems(t *testing.T) {
	svc := testService()
	flat := svc.FlattenItems()
	require.Len(t, flat, 12)

	assert.Equal(t, "Juice 1", flat[0].MenuItem.Name)
	assert.Equal(t, uint(1), flat[0].CategoryID)
	assert.Equal(t, "Drinks", flat[0].CategoryName)

	assert.Equal(t, "Dish 12", flat[11].MenuItem.Name)
	assert.Equal(t, "Mains", flat[11].CategoryName)
}

func TestFilterItems(t *testing.T) {
	flat := testService().FlattenItems()

	assert.Len(t, FilterItems(flat, "juice", 0), 4)
	assert.Len(t, FilterItems(flat, "JUICE", 0), 4)
	assert.Len(t, FilterItems(flat, "", 2), 8)
	assert.Len(t, FilterItems(flat, "dish", 1), 0)
	assert.Empty(t, FilterItems(flat, "no such item", 0))
	assert.Len(t, FilterItems(flat, "", 0), 12)
}

func TestPaginateItems(t *testing.T) {
	flat := testService().FlattenItems()

	page1 := PaginateItems(flat, 1)
	require.Len(t, page1, MenuPageSize)
	assert.Equal(t, "Juice 1", page1[0].MenuItem.Name)

	page2 := PaginateItems(flat, 2)
	require.Len(t, page2, 6)
	assert.Equal(t, "Dish 7", page2[0].MenuItem.Name)

	assert.Nil(t, PaginateItems(flat, 3))
	// page 0 is clamped to 1
	assert.Equal(t, page1, PaginateItems(flat, 0))

	assert.Equal(t, 2, TotalPages(len(flat)))
	assert.Equal(t, 1, TotalPages(0))
	assert.Equal(t, 2, TotalPages(7))
}

func TestMenuItemUnitPrice(t *testing.T) {
	item := MenuItem{Price: 50000}

	assert.Equal(t, 50000.0, item.UnitPrice(nil))

	selected := []ModifierOption{
		{Name: "Extra shot", PriceDelta: 8000},
		{Name: "Small cup", PriceDelta: -5000},
	}
	assert.Equal(t, 53000.0, item.UnitPrice(selected))
}
