package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge-backend/config"
	"concierge-backend/models"
	"concierge-backend/utils"
)

type userPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	HotelID  *uint  `json:"hotel_id"`
	Password string `json:"password"`
}

func (p *userPayload) validate(requirePassword bool) string {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	if p.Name == "" || p.Email == "" {
		return "name and email are required"
	}
	if !models.ValidUserRole(p.Role) {
		return "invalid role"
	}
	if models.RoleRequiresHotel(p.Role) && (p.HotelID == nil || *p.HotelID == 0) {
		return "hotel_id is required for role " + p.Role
	}
	if requirePassword && p.Password == "" {
		return "password is required"
	}
	return ""
}

// GetUsers (GET /api/users?role=&hotel_id=)
func GetUsers(c *gin.Context) {
	var users []models.User
	q := config.DB.Order("id")
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if hotelID := hotelIDFromQuery(c); hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	if err := q.Find(&users).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser (POST /api/users). Password is write-only: hashed at rest,
// never serialized back.
func CreateUser(c *gin.Context) {
	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if msg := payload.validate(true); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg)
		return
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Role:     payload.Role,
		Password: hash,
	}
	if models.RoleRequiresHotel(payload.Role) {
		user.HotelID = payload.HotelID
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		log.Printf("❌ DB ERROR creating user: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser (PUT /api/users/:id). A blank password keeps the current one.
func UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}

	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if msg := payload.validate(false); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg)
		return
	}

	user.Name = payload.Name
	user.Email = payload.Email
	user.Role = payload.Role
	if models.RoleRequiresHotel(payload.Role) {
		user.HotelID = payload.HotelID
	} else {
		user.HotelID = nil
	}
	if payload.Password != "" {
		hash, err := utils.HashPassword(payload.Password)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
			return
		}
		user.Password = hash
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		log.Printf("❌ Update Error for User %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser (DELETE /api/users/:id)
func DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	result := config.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		log.Printf("❌ DB Error during user deletion (ID: %d): %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "User deleted successfully"})
}
