package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge-backend/utils"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID  = "userID"
	CtxRole    = "role"
	CtxHotelID = "hotelID"
)

// Auth validates the bearer token and aborts with 401 on any failure.
// Clients treat a 401 from any endpoint as "session over": they wipe their
// stored token, role and hotel selection and return to login.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := header
		if len(header) > 7 && strings.EqualFold(header[0:6], "bearer") {
			tokenString = strings.TrimSpace(header[7:])
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxHotelID, claims.HotelID)

		c.Next()
	}
}
