// Package docs renders booking vouchers as PDF.
package docs

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/vochicuongg/mrleetravel/internal/booking"
	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// BuildVoucherPDF renders the customer-facing confirmation for one
// accepted booking. It returns the PDF bytes and a download filename.
func BuildVoucherPDF(p booking.Payload) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "MR LEE TRAVEL - BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Customer   : %s", safe(p.CustomerName, "-")),
		fmt.Sprintf("Phone      : %s", safe(p.CustomerPhone, "-")),
		fmt.Sprintf("Vehicle    : %s", safe(p.VehicleLabel, "-")),
		fmt.Sprintf("Service    : %s", safe(string(p.Category), "-")),
		fmt.Sprintf("Date       : %s", safe(p.Date, "-")),
		fmt.Sprintf("Time       : %s", safe(timeLabel(p), "-")),
	}
	lines = append(lines, detailLines(p)...)
	lines = append(lines,
		fmt.Sprintf("Price      : %s", safe(p.PriceLine, "-")),
		fmt.Sprintf("Total      : %s", utils.FormatVNDFull(p.Quote.Total)),
	)
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if p.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, "Notes: "+p.Notes, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6,
		"Please show this voucher at pickup. Issued "+time.Now().Format("2006-01-02 15:04")+".",
		"", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%s_%s.pdf",
		safeFilenamePart(p.VehicleID), safeFilenamePart(p.CustomerName))
	return buf.Bytes(), filename, nil
}

func detailLines(p booking.Payload) []string {
	switch p.Category {
	case domain.CategoryScooter:
		out := []string{fmt.Sprintf("Duration   : %d day(s)", p.RentalDays)}
		if p.ReturnDate != "" {
			out = append(out, fmt.Sprintf("Return     : %s", p.ReturnDate))
		}
		if p.Delivery == booking.DeliveryDeliver {
			out = append(out, fmt.Sprintf("Delivery   : %s", safe(hotelLine(p), "-")))
		} else {
			out = append(out, "Delivery   : pick up at shop")
		}
		return out
	case domain.CategoryTour:
		out := []string{fmt.Sprintf("Tour type  : %s", safe(string(p.TourType), "-"))}
		if p.GroupSize > 0 {
			out = append(out, fmt.Sprintf("Guests     : %d", p.GroupSize))
		}
		if p.HotelName != "" {
			out = append(out, fmt.Sprintf("Pickup at  : %s", hotelLine(p)))
		}
		return out
	case domain.CategoryTransfer:
		out := []string{fmt.Sprintf("Route      : %s -> %s", safe(string(p.Pickup), "-"), safe(string(p.Dropoff), "-"))}
		if p.HotelName != "" {
			out = append(out, fmt.Sprintf("Hotel      : %s", hotelLine(p)))
		}
		return out
	}
	return nil
}

func timeLabel(p booking.Payload) string {
	return strings.TrimPrefix(p.Time, "tour_")
}

func hotelLine(p booking.Payload) string {
	if p.HotelAddress != "" {
		return p.HotelName + ", " + p.HotelAddress
	}
	return p.HotelName
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "booking"
	}
	return b.String()
}
