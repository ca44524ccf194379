package models

import (
	"gorm.io/gorm"
)

const (
	RoomTypeStandard     = "standard"
	RoomTypeDeluxe       = "deluxe"
	RoomTypeSuite        = "suite"
	RoomTypePresidential = "presidential"

	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	HotelID uint    `json:"hotel_id" gorm:"index;not null"`
	Number  string  `json:"number" gorm:"size:50"`
	Type    string  `json:"type" gorm:"size:50"`
	Price   float64 `json:"price"`
	FloorNo int     `json:"floor_no" gorm:"column:floor_no"`
	Status  string  `json:"status" gorm:"size:50"`
}

func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite, RoomTypePresidential:
		return true
	}
	return false
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
