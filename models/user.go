package models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin            = "admin"
	RoleHotelAdmin       = "hotel_admin"
	RoleHotelReception   = "hotel_reception"
	RoleServiceReception = "service_reception"
	RoleHotelGuest       = "hotel_guest"
)

type User struct {
	gorm.Model

	Name  string `json:"name" gorm:"size:255"`
	Email string `json:"email" gorm:"uniqueIndex;size:255"`
	Role  string `json:"role" gorm:"size:50;index"`
	// Required for every role except admin.
	HotelID  *uint  `json:"hotel_id" gorm:"index"`
	Password string `json:"-" gorm:"size:255"` // bcrypt hash, never serialized
}

func ValidUserRole(r string) bool {
	switch r {
	case RoleAdmin, RoleHotelAdmin, RoleHotelReception, RoleServiceReception, RoleHotelGuest:
		return true
	}
	return false
}

// RoleRequiresHotel reports whether the role must be tied to a hotel.
func RoleRequiresHotel(r string) bool {
	return r != RoleAdmin
}
