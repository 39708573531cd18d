package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"hotel-booking/models"

	"github.com/xuri/excelize/v2"
)

// Dashboard is the admin overview.
type Dashboard struct {
	Users          int64            `json:"users"`
	Hotels         int64            `json:"hotels"`
	Rooms          int64            `json:"rooms"`
	Bookings       int64            `json:"bookings"`
	RecentBookings []models.Booking `json:"recent_bookings"`
}

// ReportService builds admin views over the other stores.
type ReportService struct {
	Identity *IdentityService
	Catalog  *CatalogService
	Bookings *BookingService
}

func NewReportService(identity *IdentityService, catalog *CatalogService, bookings *BookingService) *ReportService {
	return &ReportService{Identity: identity, Catalog: catalog, Bookings: bookings}
}

func (s *ReportService) Dashboard(ctx context.Context, recent int) (*Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.Users, err = s.Identity.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if d.Hotels, d.Rooms, err = s.Catalog.Counts(ctx); err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}
	if d.Bookings, err = s.Bookings.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	if d.RecentBookings, err = s.Bookings.ListAll(ctx, recent, true); err != nil {
		return nil, err
	}
	return &d, nil
}

var bookingSheetHeader = []any{"ID", "Reference", "User", "Hotel", "Room", "Check-in", "Check-out", "Nights", "Price/night", "Created"}

// ExportBookings renders the ledger as an xlsx workbook.
func (s *ReportService) ExportBookings(ctx context.Context) ([]byte, error) {
	bookings, err := s.Bookings.ListAll(ctx, 0, false)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &bookingSheetHeader); err != nil {
		return nil, err
	}

	for i, b := range bookings {
		var username, hotel, room string
		var price float64
		if b.User != nil {
			username = b.User.Username
		}
		if b.Hotel != nil {
			hotel = b.Hotel.Name
		}
		if b.Room != nil {
			room = b.Room.Number
			price = b.Room.Price
		}
		row := []any{
			b.ID,
			b.ReferenceCode,
			username,
			hotel,
			room,
			time.Time(b.CheckInDate).Format(DateLayout),
			time.Time(b.CheckOutDate).Format(DateLayout),
			b.Nights(),
			price,
			b.CreatedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write booking %d: %w", b.ID, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
