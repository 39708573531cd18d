package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hotel-booking/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventPublisher ships domain events to a broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// BookingNotifier tells a guest that their booking went through.
type BookingNotifier interface {
	SendBookingConfirmation(user *models.User, booking *models.Booking) error
}

const EventBookingCreated = "booking.created"

// BookingService is the booking ledger. Bookings are append-only.
type BookingService struct {
	DB       *gorm.DB
	Events   EventPublisher
	Notifier BookingNotifier
}

func NewBookingService(db *gorm.DB, events EventPublisher, notifier BookingNotifier) *BookingService {
	return &BookingService{DB: db, Events: events, Notifier: notifier}
}

// CreateBooking reserves one room. The room row is locked for the duration of
// the transaction so the availability check and the insert are atomic.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint, checkIn, checkOut time.Time) (*models.Booking, error) {
	if err := validRange(checkIn, checkOut); err != nil {
		return nil, err
	}
	checkIn, checkOut = DateOnly(checkIn), DateOnly(checkOut)

	var user models.User
	booking := &models.Booking{
		UserID:       userID,
		RoomID:       roomID,
		CheckInDate:  datatypes.Date(checkIn),
		CheckOutDate: datatypes.Date(checkOut),
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user", userID)
			}
			return err
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("room", roomID)
			}
			return err
		}

		free, err := isRoomFree(tx, room.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !free {
			return fmt.Errorf("room %s from %s to %s: %w",
				room.Number, checkIn.Format(DateLayout), checkOut.Format(DateLayout), ErrRoomUnavailable)
		}

		booking.HotelID = room.HotelID
		booking.ReferenceCode = uuid.NewString()
		return tx.Create(booking).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRoomUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.DB.WithContext(ctx).Preload("Hotel").Preload("Room").First(booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking %d: %w", booking.ID, err)
	}

	s.announce(ctx, &user, booking)
	return booking, nil
}

// announce is best-effort: the booking is already committed.
func (s *BookingService) announce(ctx context.Context, user *models.User, b *models.Booking) {
	if s.Events != nil {
		err := s.Events.PublishJSON(ctx, EventBookingCreated, map[string]any{
			"booking_id":     b.ID,
			"reference_code": b.ReferenceCode,
			"user_id":        b.UserID,
			"hotel_id":       b.HotelID,
			"room_id":        b.RoomID,
			"check_in_date":  time.Time(b.CheckInDate).Format(DateLayout),
			"check_out_date": time.Time(b.CheckOutDate).Format(DateLayout),
		})
		if err != nil {
			log.Printf("warning: failed to publish %s for booking %d: %v", EventBookingCreated, b.ID, err)
		}
	}
	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(user, b); err != nil {
			log.Printf("warning: failed to send confirmation for booking %d: %v", b.ID, err)
		}
	}
}

// ListBookingsForUser returns the user's bookings in creation order.
func (s *BookingService) ListBookingsForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	list := []models.Booking{}
	err := s.DB.WithContext(ctx).
		Preload("Hotel").
		Preload("Room").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %d: %w", userID, err)
	}
	return list, nil
}

// ListAll returns the whole ledger, newest first when newestFirst is set.
func (s *BookingService) ListAll(ctx context.Context, limit int, newestFirst bool) ([]models.Booking, error) {
	list := []models.Booking{}
	q := s.DB.WithContext(ctx).Preload("User").Preload("Hotel").Preload("Room")
	if newestFirst {
		q = q.Order("id DESC")
	} else {
		q = q.Order("id ASC")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Booking{}).Count(&n).Error
	return n, err
}
