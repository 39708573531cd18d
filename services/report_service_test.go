package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newReportService(t *testing.T) (*ReportService, *BookingService, uint) {
	t.Helper()
	db, user := seeded(t)
	bookings := NewBookingService(db, nil, nil)
	return NewReportService(NewIdentityService(db), NewCatalogService(db), bookings), bookings, user.ID
}

func TestDashboard(t *testing.T) {
	reports, bookings, userID := newReportService(t)
	ctx := context.Background()
	db := bookings.DB

	for i, n := range []string{"101", "102", "103"} {
		_, err := bookings.CreateBooking(ctx, userID, roomID(t, db, "Hotel A", n), day("2025-12-01").AddDate(0, 0, i), day("2025-12-05"))
		require.NoError(t, err)
	}

	d, err := reports.Dashboard(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.Users)
	assert.Equal(t, int64(4), d.Hotels)
	assert.Equal(t, int64(16), d.Rooms)
	assert.Equal(t, int64(3), d.Bookings)
	require.Len(t, d.RecentBookings, 2)
	assert.Greater(t, d.RecentBookings[0].ID, d.RecentBookings[1].ID)
}

func TestExportBookings(t *testing.T) {
	reports, bookings, userID := newReportService(t)
	ctx := context.Background()

	b, err := bookings.CreateBooking(ctx, userID, roomID(t, bookings.DB, "Hotel B", "203"), day("2026-01-10"), day("2026-01-12"))
	require.NoError(t, err)

	data, err := reports.ExportBookings(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Reference", rows[0][1])
	assert.Equal(t, b.ReferenceCode, rows[1][1])
	assert.Equal(t, "alice", rows[1][2])
	assert.Equal(t, "Hotel B", rows[1][3])
	assert.Equal(t, "203", rows[1][4])
	assert.Equal(t, "2026-01-10", rows[1][5])
	assert.Equal(t, "2", rows[1][7])
}
