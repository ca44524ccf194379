package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge-backend/models"
	"concierge-backend/utils"
)

func TestAuthMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth())
	r.GET("/api/rooms", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth())
	r.GET("/api/rooms", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthValidTokenSetsContext(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken(utils.TokenClaims{
		UserID:  5,
		Role:    models.RoleHotelAdmin,
		HotelID: 12,
	})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	var userID, hotelID uint
	var role string
	r := gin.New()
	r.Use(Auth())
	r.GET("/api/rooms", func(c *gin.Context) {
		userID = c.GetUint(CtxUserID)
		role = c.GetString(CtxRole)
		hotelID = c.GetUint(CtxHotelID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), userID)
	assert.Equal(t, models.RoleHotelAdmin, role)
	assert.Equal(t, uint(12), hotelID)
}
