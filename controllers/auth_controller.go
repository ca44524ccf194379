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

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login issues the session token. hotel_admin tokens carry the user's hotel
// id; the scope middleware pins every later request to it.
func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !utils.CheckPasswordHash(payload.Password, user.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	claims := utils.TokenClaims{UserID: user.ID, Role: user.Role}
	if user.HotelID != nil {
		claims.HotelID = *user.HotelID
	}

	token, err := utils.GenerateToken(claims)
	if err != nil {
		log.Printf("❌ token generation failed for %s: %v", email, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	resp := gin.H{
		"token": token,
		"role":  user.Role,
	}
	if user.HotelID != nil {
		resp["hotel_id"] = *user.HotelID
	}
	c.JSON(http.StatusOK, resp)
}
