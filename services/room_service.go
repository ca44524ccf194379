package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"concierge-backend/models"
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

func (s *RoomService) List(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	q := s.db.Order("floor_no, number")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Create(room *models.Room) error {
	return s.db.Create(room).Error
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) error {
	return s.db.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error
}

func (s *RoomService) Delete(id uint) (int64, error) {
	result := s.db.Delete(&models.Room{}, id)
	return result.RowsAffected, result.Error
}

// BulkUploadResult reports what a CSV import did. Errors carry one entry per
// rejected line; valid lines are inserted regardless of failures elsewhere.
type BulkUploadResult struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors"`
}

// ParseRoomsCSV reads rows of number,type,price,floor_no,status for one
// hotel. A header line starting with "number" is skipped. Every invalid line
// produces an error string; valid rows are returned for insertion.
func ParseRoomsCSV(r io.Reader, hotelID uint) ([]models.Room, []string) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var rooms []models.Room
	var errs []string

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			errs = append(errs, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "number") {
			continue
		}
		if len(record) < 5 {
			errs = append(errs, fmt.Sprintf("line %d: expected 5 columns (number,type,price,floor_no,status), got %d", line, len(record)))
			continue
		}

		number := strings.TrimSpace(record[0])
		roomType := strings.ToLower(strings.TrimSpace(record[1]))
		status := strings.ToLower(strings.TrimSpace(record[4]))

		if number == "" {
			errs = append(errs, fmt.Sprintf("line %d: number is required", line))
			continue
		}
		if !models.ValidRoomType(roomType) {
			errs = append(errs, fmt.Sprintf("line %d: invalid room type %q", line, record[1]))
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || price < 0 {
			errs = append(errs, fmt.Sprintf("line %d: invalid price %q", line, record[2]))
			continue
		}
		floorNo, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			errs = append(errs, fmt.Sprintf("line %d: invalid floor_no %q", line, record[3]))
			continue
		}
		if !models.ValidRoomStatus(status) {
			errs = append(errs, fmt.Sprintf("line %d: invalid status %q", line, record[4]))
			continue
		}

		rooms = append(rooms, models.Room{
			HotelID: hotelID,
			Number:  number,
			Type:    roomType,
			Price:   price,
			FloorNo: floorNo,
			Status:  status,
		})
	}

	return rooms, errs
}

// BulkUpload parses and inserts the valid rows in one batch.
func (s *RoomService) BulkUpload(r io.Reader, hotelID uint) (BulkUploadResult, error) {
	rooms, errs := ParseRoomsCSV(r, hotelID)
	result := BulkUploadResult{Errors: errs}

	if len(rooms) > 0 {
		if err := s.db.Create(&rooms).Error; err != nil {
			return result, err
		}
		result.Created = len(rooms)
	}
	if result.Errors == nil {
		result.Errors = []string{}
	}
	return result, nil
}
