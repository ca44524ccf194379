package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"concierge-backend/models"
)

func TestScopeQuery(t *testing.T) {
	t.Run("injects into empty query", func(t *testing.T) {
		q, changed := ScopeQuery("/api/rooms", "", 7)
		assert.True(t, changed)
		assert.Equal(t, "hotel_id=7", q)
	})

	t.Run("appends to existing query", func(t *testing.T) {
		q, changed := ScopeQuery("/api/users", "role=hotel_guest", 7)
		assert.True(t, changed)
		assert.Equal(t, "role=hotel_guest&hotel_id=7", q)
	})

	t.Run("never overrides explicit hotel_id", func(t *testing.T) {
		q, changed := ScopeQuery("/api/rooms", "hotel_id=3", 7)
		assert.False(t, changed)
		assert.Equal(t, "hotel_id=3", q)
	})

	t.Run("exempt endpoints stay untouched", func(t *testing.T) {
		for _, path := range []string{"/api/login", "/api/hotels", "/health"} {
			_, changed := ScopeQuery(path, "", 7)
			assert.False(t, changed, path)
		}
	})

	t.Run("no hotel claim means no scoping", func(t *testing.T) {
		_, changed := ScopeQuery("/api/rooms", "", 0)
		assert.False(t, changed)
	})
}

func scopedRequest(t *testing.T, role string, hotelID uint, target string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var gotQuery string
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(CtxRole, role)
		c.Set(CtxHotelID, hotelID)
	})
	r.Use(HotelScope())
	r.GET("/api/rooms", func(c *gin.Context) {
		gotQuery = c.Request.URL.RawQuery
		c.Status(http.StatusOK)
	})
	r.GET("/api/hotels", func(c *gin.Context) {
		gotQuery = c.Request.URL.RawQuery
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	return gotQuery
}

func TestHotelScopeMiddleware(t *testing.T) {
	t.Run("hotel_admin gets pinned to the login hotel", func(t *testing.T) {
		q := scopedRequest(t, models.RoleHotelAdmin, 42, "/api/rooms")
		assert.Equal(t, "hotel_id=42", q)
	})

	t.Run("explicit hotel_id wins", func(t *testing.T) {
		q := scopedRequest(t, models.RoleHotelAdmin, 42, "/api/rooms?hotel_id=9")
		assert.Equal(t, "hotel_id=9", q)
	})

	t.Run("hotels endpoint is exempt", func(t *testing.T) {
		q := scopedRequest(t, models.RoleHotelAdmin, 42, "/api/hotels")
		assert.Empty(t, q)
	})

	t.Run("other roles scope themselves", func(t *testing.T) {
		assert.Empty(t, scopedRequest(t, models.RoleAdmin, 42, "/api/rooms"))
		assert.Empty(t, scopedRequest(t, models.RoleHotelReception, 42, "/api/rooms"))
	})
}
