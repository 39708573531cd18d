package services

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout is the wire format for check-in and check-out dates.
const DateLayout = "2006-01-02"

// AvailabilityService answers which rooms are taken for a date range.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRange(checkIn, checkOut time.Time) error {
	if !DateOnly(checkOut).After(DateOnly(checkIn)) {
		return fmt.Errorf("check-out %s must be after check-in %s: %w",
			checkOut.Format(DateLayout), checkIn.Format(DateLayout), ErrInvalidDateRange)
	}
	return nil
}

// overlapping keeps bookings whose stay touches [checkIn, checkOut]. The test
// is inclusive on both ends, so back-to-back stays sharing a boundary date
// count as overlapping.
func overlapping(checkIn, checkOut time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("bookings.check_in_date <= ? AND bookings.check_out_date >= ?",
			datatypes.Date(DateOnly(checkOut)), datatypes.Date(DateOnly(checkIn)))
	}
}

// reservedRoomIDs is the subquery form of UnavailableRoomIDs.
func reservedRoomIDs(db *gorm.DB, checkIn, checkOut time.Time) *gorm.DB {
	return overlapping(checkIn, checkOut)(db.Model(&models.Booking{}).Select("bookings.room_id"))
}

// UnavailableRoomIDs returns, in ascending order, every room with a booking
// overlapping the range.
func (s *AvailabilityService) UnavailableRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]uint, error) {
	if err := validRange(checkIn, checkOut); err != nil {
		return nil, err
	}
	ids := []uint{}
	err := s.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Scopes(overlapping(checkIn, checkOut)).
		Distinct("bookings.room_id").
		Order("bookings.room_id ASC").
		Pluck("bookings.room_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute unavailable rooms: %w", err)
	}
	return ids, nil
}

func (s *AvailabilityService) IsAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if err := validRange(checkIn, checkOut); err != nil {
		return false, err
	}
	return isRoomFree(s.DB.WithContext(ctx), roomID, checkIn, checkOut)
}

// isRoomFree runs on whatever handle it gets, so the booking transaction can
// use it under its row lock.
func isRoomFree(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var n int64
	err := db.Model(&models.Booking{}).
		Scopes(overlapping(checkIn, checkOut)).
		Where("bookings.room_id = ?", roomID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check availability of room %d: %w", roomID, err)
	}
	return n == 0, nil
}
