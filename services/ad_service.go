package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"concierge-backend/models"
)

type AdService struct {
	db *gorm.DB
}

func NewAdService(db *gorm.DB) *AdService {
	return &AdService{db: db}
}

// AdFilter mirrors the console's query surface: by default only active ads
// inside their date window come back; include_all lifts both restrictions.
type AdFilter struct {
	HotelID    uint
	IncludeAll bool
	// Optional bounds on the ad window overlap.
	FilterStart *time.Time
	FilterEnd   *time.Time
}

func (s *AdService) List(f AdFilter) ([]models.Ad, error) {
	q := s.db.Order("created_at DESC")
	if f.HotelID != 0 {
		q = q.Where("hotel_id = ?", f.HotelID)
	}
	if !f.IncludeAll {
		now := time.Now()
		q = q.Where("is_active = ?", true).
			Where("start_date IS NULL OR start_date <= ?", now).
			Where("end_date IS NULL OR end_date >= ?", now)
	}
	if f.FilterStart != nil {
		q = q.Where("end_date IS NULL OR end_date >= ?", *f.FilterStart)
	}
	if f.FilterEnd != nil {
		q = q.Where("start_date IS NULL OR start_date <= ?", *f.FilterEnd)
	}

	var ads []models.Ad
	err := q.Find(&ads).Error
	return ads, err
}

func (s *AdService) Create(ad *models.Ad) error {
	return s.db.Create(ad).Error
}

func (s *AdService) Update(id uint, updates map[string]interface{}) error {
	result := s.db.Model(&models.Ad{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdService) Delete(id uint) error {
	result := s.db.Delete(&models.Ad{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateExpired flips off ads whose end date has passed. Runs from the
// cron sweep so tablets stop cycling dead campaigns without an admin visit.
func (s *AdService) DeactivateExpired(now time.Time) (int64, error) {
	result := s.db.Model(&models.Ad{}).
		Where("is_active = ? AND end_date IS NOT NULL AND end_date < ?", true, now).
		Update("is_active", false)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("ad sweep: deactivated %d expired ad(s)", result.RowsAffected)
	}
	return result.RowsAffected, result.Error
}
