package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"concierge-backend/config"
	"concierge-backend/models"
	"concierge-backend/utils"
)

// GetHotels is deliberately unscoped: it feeds the hotel selector for every
// role and sits on the scoping exempt list.
func GetHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := config.DB.Order("name").Find(&hotels).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list hotels")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	hotel.Name = strings.TrimSpace(hotel.Name)
	if hotel.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		log.Printf("❌ DB ERROR creating hotel: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func UpdateHotel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	result := config.DB.Model(&models.Hotel{}).Where("id = ?", id).Update("name", payload.Name)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "hotel not found")
		return
	}

	var hotel models.Hotel
	config.DB.First(&hotel, id)
	c.JSON(http.StatusOK, hotel)
}

// DeleteHotel removes the hotel and everything scoped to it in one
// transaction, so a re-fetch never shows orphaned rows.
func DeleteHotel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("hotel_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
		}

		for _, m := range []interface{}{
			&models.Room{}, &models.Device{}, &models.Order{},
			&models.Ad{}, &models.Facility{}, &models.HotelSetting{},
		} {
			if err := tx.Where("hotel_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		var svcIDs []uint
		if err := tx.Model(&models.Service{}).Where("hotel_id = ?", id).Pluck("id", &svcIDs).Error; err != nil {
			return err
		}
		for _, svcID := range svcIDs {
			if err := deleteServiceTree(tx, svcID); err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Hotel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		utils.JSONError(c, http.StatusNotFound, "hotel not found")
		return
	}
	if err != nil {
		log.Printf("❌ DB ERROR deleting hotel %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete hotel")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Hotel deleted successfully"})
}

func deleteServiceTree(tx *gorm.DB, svcID uint) error {
	var catIDs []uint
	if err := tx.Model(&models.MenuCategory{}).Where("service_id = ?", svcID).Pluck("id", &catIDs).Error; err != nil {
		return err
	}
	if len(catIDs) > 0 {
		var itemIDs []uint
		if err := tx.Model(&models.MenuItem{}).Where("category_id IN ?", catIDs).Pluck("id", &itemIDs).Error; err != nil {
			return err
		}
		if len(itemIDs) > 0 {
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
			if err := tx.Where("id IN ?", itemIDs).Delete(&models.MenuItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("service_id = ?", svcID).Delete(&models.MenuCategory{}).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&models.Service{}, svcID).Error
}
