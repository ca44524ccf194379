package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge-backend/models"
	"concierge-backend/services"
	"concierge-backend/utils"
)

// MenuController serves the sub-resource endpoints of the menu tree. Each
// mutation touches one node; the console re-fetches the parent service tree
// afterwards instead of patching locally.
type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

func (mc *MenuController) respondMutationError(c *gin.Context, err error, noun string) {
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, noun+" not found")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "database error")
}

// CreateCategory (POST /api/menu/categories)
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var payload struct {
		ServiceID uint   `json:"service_id"`
		Name      string `json:"name"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.ServiceID == 0 || payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "service_id and name are required")
		return
	}

	cat := models.MenuCategory{ServiceID: payload.ServiceID, Name: payload.Name}
	if err := mc.menu.CreateCategory(&cat); err != nil {
		mc.respondMutationError(c, err, "service")
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// CreateItem (POST /api/menu/items)
func (mc *MenuController) CreateItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.CategoryID == 0 || item.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "category_id and name are required")
		return
	}
	if item.Price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "price cannot be negative")
		return
	}

	if err := mc.menu.CreateItem(&item); err != nil {
		mc.respondMutationError(c, err, "category")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem (PUT /api/menu/items/:id)
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid item id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	stripImmutable(updates)
	delete(updates, "modifiers")

	if p, ok := updates["price"].(float64); ok && p < 0 {
		utils.JSONError(c, http.StatusBadRequest, "price cannot be negative")
		return
	}

	if err := mc.menu.UpdateItem(id, updates); err != nil {
		mc.respondMutationError(c, err, "item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Item updated successfully"})
}

// DeleteItem (DELETE /api/menu/items/:id) cascades modifiers and options.
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid item id")
		return
	}
	if err := mc.menu.DeleteItem(id); err != nil {
		mc.respondMutationError(c, err, "item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Item deleted successfully"})
}

// CreateModifier (POST /api/menu/modifiers)
func (mc *MenuController) CreateModifier(c *gin.Context) {
	var mod models.MenuModifier
	if err := c.ShouldBindJSON(&mod); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	mod.Name = strings.TrimSpace(mod.Name)
	if mod.MenuItemID == 0 || mod.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "menu_item_id and name are required")
		return
	}

	if err := mc.menu.CreateModifier(&mod); err != nil {
		mc.respondMutationError(c, err, "item")
		return
	}
	c.JSON(http.StatusCreated, mod)
}

// UpdateModifier (PUT /api/menu/modifiers/:id)
func (mc *MenuController) UpdateModifier(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid modifier id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	stripImmutable(updates)
	delete(updates, "options")

	if err := mc.menu.UpdateModifier(id, updates); err != nil {
		mc.respondMutationError(c, err, "modifier")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Modifier updated successfully"})
}

// DeleteModifier (DELETE /api/menu/modifiers/:id). Options go with it; the
// console warns the operator but relies on the server for the cascade.
func (mc *MenuController) DeleteModifier(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid modifier id")
		return
	}
	if err := mc.menu.DeleteModifier(id); err != nil {
		mc.respondMutationError(c, err, "modifier")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Modifier deleted successfully"})
}

// CreateOption (POST /api/menu/options)
func (mc *MenuController) CreateOption(c *gin.Context) {
	var opt models.ModifierOption
	if err := c.ShouldBindJSON(&opt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	opt.Name = strings.TrimSpace(opt.Name)
	if opt.ModifierID == 0 || opt.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "modifier_id and name are required")
		return
	}

	if err := mc.menu.CreateOption(&opt); err != nil {
		mc.respondMutationError(c, err, "modifier")
		return
	}
	c.JSON(http.StatusCreated, opt)
}

// UpdateOption (PUT /api/menu/options/:id)
func (mc *MenuController) UpdateOption(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid option id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	stripImmutable(updates)

	if err := mc.menu.UpdateOption(id, updates); err != nil {
		mc.respondMutationError(c, err, "option")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Option updated successfully"})
}

// DeleteOption (DELETE /api/menu/options/:id)
func (mc *MenuController) DeleteOption(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid option id")
		return
	}
	if err := mc.menu.DeleteOption(id); err != nil {
		mc.respondMutationError(c, err, "option")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Option deleted successfully"})
}
