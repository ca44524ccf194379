package models

import (
	"gorm.io/gorm"
)

const (
	DeviceStatusActive   = "Active"
	DeviceStatusInactive = "Inactive"
	DeviceStatusPending  = "Pending"
)

// Device is an in-room tablet. HotelID 0 means the device sits in the
// unassigned pool waiting for staff to claim it into a hotel and room.
type Device struct {
	gorm.Model

	HotelID uint   `json:"hotel_id" gorm:"index"`
	RoomID  uint   `json:"room_id" gorm:"index"`
	Name    string `json:"name" gorm:"size:255"`
	// UUID comes from the physical tablet and never changes afterwards.
	UUID     string `json:"uuid" gorm:"column:uuid;uniqueIndex;size:64"`
	Status   string `json:"status" gorm:"size:50"`
	FCMToken string `json:"fcm_token,omitempty" gorm:"column:fcm_token;size:512"`

	// Resolved for responses, not stored.
	RoomNumber string `json:"room_number" gorm:"-"`
}

func (d *Device) Assigned() bool {
	return d.HotelID != 0
}
