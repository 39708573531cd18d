package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailableRoomIDs(t *testing.T) {
	db, user := seeded(t)
	ctx := context.Background()
	bookings := NewBookingService(db, nil, nil)
	avail := NewAvailabilityService(db)

	r101 := roomID(t, db, "Hotel A", "101")
	r203 := roomID(t, db, "Hotel B", "203")

	_, err := bookings.CreateBooking(ctx, user.ID, r101, day("2025-01-10"), day("2025-01-15"))
	require.NoError(t, err)
	_, err = bookings.CreateBooking(ctx, user.ID, r203, day("2025-01-12"), day("2025-01-13"))
	require.NoError(t, err)

	cases := []struct {
		in, out string
		want    []uint
	}{
		{"2025-01-01", "2025-01-05", []uint{}},
		{"2025-01-05", "2025-01-10", []uint{r101}},
		{"2025-01-15", "2025-01-20", []uint{r101}},
		{"2025-01-16", "2025-01-20", []uint{}},
		{"2025-01-11", "2025-01-12", []uint{r101, r203}},
		{"2025-01-01", "2025-02-01", []uint{r101, r203}},
	}
	for _, tc := range cases {
		t.Run(tc.in+"_"+tc.out, func(t *testing.T) {
			ids, err := avail.UnavailableRoomIDs(ctx, day(tc.in), day(tc.out))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids)
		})
	}

	_, err = avail.UnavailableRoomIDs(ctx, day("2025-01-10"), day("2025-01-10"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	_, err = avail.IsAvailable(ctx, r101, day("2025-01-10"), day("2025-01-09"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

// The store query must agree with the closed-interval overlap rule for every
// range around the existing stays.
func TestIsAvailableMatchesOverlapRule(t *testing.T) {
	db, user := seeded(t)
	ctx := context.Background()
	bookings := NewBookingService(db, nil, nil)
	avail := NewAvailabilityService(db)
	room := roomID(t, db, "Hotel C", "302")

	base := day("2025-03-01")
	at := func(d int) time.Time { return base.AddDate(0, 0, d) }
	stays := [][2]int{{5, 8}, {14, 16}}
	for _, s := range stays {
		_, err := bookings.CreateBooking(ctx, user.ID, room, at(s[0]), at(s[1]))
		require.NoError(t, err)
	}

	for ci := 0; ci <= 20; ci++ {
		for co := ci + 1; co <= 21; co++ {
			want := true
			for _, s := range stays {
				if s[0] <= co && s[1] >= ci {
					want = false
				}
			}
			got, err := avail.IsAvailable(ctx, room, at(ci), at(co))
			require.NoError(t, err)
			assert.Equal(t, want, got, fmt.Sprintf("range %d..%d", ci, co))
		}
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	got := DateOnly(time.Date(2025, 6, 1, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
}
