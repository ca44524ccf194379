package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge-backend/models"
)

func TestParseRoomsCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"number,type,price,floor_no,status",
		"101,standard,450000,1,available",
		"102,deluxe,780000,1,occupied",
		"501,suite,1500000,5,maintenance",
	}, "\n")

	rooms, errs := ParseRoomsCSV(strings.NewReader(csvData), 3)

	assert.Empty(t, errs)
	require.Len(t, rooms, 3)

	assert.Equal(t, uint(3), rooms[0].HotelID)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, models.RoomTypeStandard, rooms[0].Type)
	assert.Equal(t, 450000.0, rooms[0].Price)
	assert.Equal(t, 1, rooms[0].FloorNo)
	assert.Equal(t, models.RoomStatusAvailable, rooms[0].Status)

	assert.Equal(t, models.RoomStatusMaintenance, rooms[2].Status)
	assert.Equal(t, 5, rooms[2].FloorNo)
}

func TestParseRoomsCSVWithoutHeader(t *testing.T) {
	rooms, errs := ParseRoomsCSV(strings.NewReader("101,standard,450000,1,available"), 1)

	assert.Empty(t, errs)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].Number)
}

func TestParseRoomsCSVReportsBadLines(t *testing.T) {
	csvData := strings.Join([]string{
		"number,type,price,floor_no,status",
		"101,standard,450000,1,available",
		"102,penthouse,780000,1,occupied",
		",standard,450000,1,available",
		"103,deluxe,not-a-price,1,available",
		"104,deluxe,780000,one,available",
		"105,deluxe,780000,1,demolished",
		"106,deluxe,780000",
	}, "\n")

	rooms, errs := ParseRoomsCSV(strings.NewReader(csvData), 7)

	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].Number)

	require.Len(t, errs, 6)
	assert.Contains(t, errs[0], "invalid room type")
	assert.Contains(t, errs[1], "number is required")
	assert.Contains(t, errs[2], "invalid price")
	assert.Contains(t, errs[3], "invalid floor_no")
	assert.Contains(t, errs[4], "invalid status")
	assert.Contains(t, errs[5], "expected 5 columns")
}

func TestParseRoomsCSVNormalizesCase(t *testing.T) {
	rooms, errs := ParseRoomsCSV(strings.NewReader("201, Deluxe ,780000,2, OCCUPIED"), 1)

	assert.Empty(t, errs)
	require.Len(t, rooms, 1)
	assert.Equal(t, models.RoomTypeDeluxe, rooms[0].Type)
	assert.Equal(t, models.RoomStatusOccupied, rooms[0].Status)
}

func TestParseRoomsCSVEmptyInput(t *testing.T) {
	rooms, errs := ParseRoomsCSV(strings.NewReader(""), 1)
	assert.Empty(t, rooms)
	assert.Empty(t, errs)
}
