package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge-backend/models"
)

// Endpoints that must never be hotel-scoped: login is unauthenticated,
// the hotel list feeds the selector itself, health is for probes.
var scopeExemptPaths = []string{"/login", "/hotels", "/health"}

func scopeExempt(path string) bool {
	for _, p := range scopeExemptPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// ScopeQuery returns the query string with hotel_id injected, and whether it
// changed. An explicit hotel_id already present is never overwritten.
func ScopeQuery(path, rawQuery string, hotelID uint) (string, bool) {
	if hotelID == 0 || scopeExempt(path) {
		return rawQuery, false
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		if strings.HasPrefix(pair, "hotel_id=") {
			return rawQuery, false
		}
	}

	param := "hotel_id=" + strconv.FormatUint(uint64(hotelID), 10)
	if rawQuery == "" {
		return param, true
	}
	return rawQuery + "&" + param, true
}

// HotelScope pins hotel_admin sessions to the hotel fixed in their token at
// login: every non-exempt request without an explicit hotel_id gets one
// injected before the handler reads its filters. Other roles pass through
// untouched and scope themselves per request.
func HotelScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role != models.RoleHotelAdmin {
			c.Next()
			return
		}

		hotelID, _ := c.Get(CtxHotelID)
		id, _ := hotelID.(uint)

		if scoped, changed := ScopeQuery(c.Request.URL.Path, c.Request.URL.RawQuery, id); changed {
			c.Request.URL.RawQuery = scoped
		}

		c.Next()
	}
}
