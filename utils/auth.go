package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims carried by every issued token. HotelID is 0 for global admins.
type TokenClaims struct {
	UserID  uint
	Role    string
	HotelID uint
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// GenerateToken issues an HS256 token. Expiry defaults to 24h, overridable
// via JWT_EXPIRY_HOURS.
func GenerateToken(claims TokenClaims) (string, error) {
	expiryHours := 24
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}

	mapClaims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(claims.UserID), 10),
		"role": claims.Role,
		"exp":  time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	if claims.HotelID != 0 {
		mapClaims["hotel_id"] = float64(claims.HotelID)
	}

	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(secret)
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenString string) (TokenClaims, error) {
	var out TokenClaims

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret()
	})
	if err != nil || !token.Valid {
		return out, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return out, errors.New("invalid token claims")
	}

	if sub, ok := claims["sub"].(string); ok {
		if id, err := strconv.ParseUint(sub, 10, 64); err == nil {
			out.UserID = uint(id)
		}
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if hid, ok := claims["hotel_id"].(float64); ok {
		out.HotelID = uint(hid)
	}
	return out, nil
}
