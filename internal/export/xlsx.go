// Package export renders bookings as spreadsheets for offline review.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gdg-garage/tour-api/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Bookings"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []string{"ID", "Package", "Full Name", "Mobile", "Email", "Adults", "Children", "Total Amount", "Status", "Booked At"}

// BookingsXLSX writes one row per booking, in the order given.
func BookingsXLSX(bookings []models.Booking) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for r, b := range bookings {
		row := []interface{}{
			b.ID,
			b.ItineraryID,
			b.FullName,
			b.Mobile,
			b.Email,
			b.Adults,
			b.Children,
			b.TotalAmount,
			string(b.Status),
			b.CreatedAt().UTC().Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	return f.WriteToBuffer()
}

func Filename(now time.Time) string {
	return fmt.Sprintf("bookings-%s.xlsx", now.Format("20060102-150405"))
}
