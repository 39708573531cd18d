package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-booking/config"
	"hotel-booking/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite store with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDatabase(config.Config{
		DBDriver:    "sqlite",
		DatabaseURL: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBLogLevel:  "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// seeded returns a store with the sample catalog and one registered guest.
func seeded(t *testing.T) (*gorm.DB, *models.User) {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()

	_, err := NewCatalogService(db).SeedSampleData(ctx)
	require.NoError(t, err)

	user, err := NewIdentityService(db).Register(ctx, "alice", "alice@example.com", "secret")
	require.NoError(t, err)
	return db, user
}

func roomID(t *testing.T, db *gorm.DB, hotelName, number string) uint {
	t.Helper()
	var room models.Room
	err := db.Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("hotels.name = ? AND rooms.number = ?", hotelName, number).
		First(&room).Error
	require.NoError(t, err)
	return room.ID
}

type recordingPublisher struct {
	mu       sync.Mutex
	keys     []string
	payloads []any
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, v)
	return nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *recordingNotifier) SendBookingConfirmation(user *models.User, b *models.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, user.Email+" "+b.ReferenceCode)
	return nil
}
