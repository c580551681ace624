package voucher

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// Service генерирует PDF-ваучер для подтвержденного бронирования
type Service struct {
	catalog Catalog
	logger  Logger
}

// NewService создает новый экземпляр voucher-сервиса
func NewService(cat Catalog, logger Logger) *Service {
	return &Service{
		catalog: cat,
		logger:  logger,
	}
}

// Generate формирует PDF-ваучер по бронированию. Если пакет к этому моменту
// удален из справочника, в ваучере остается только его ID.
func (s *Service) Generate(ctx context.Context, booking *domain.Booking) ([]byte, error) {
	packageName := booking.PackageID
	if pkg, err := s.catalog.GetPackage(ctx, booking.PackageID); err == nil {
		packageName = pkg.Name
	} else {
		s.logger.Warn("Generate: package id=%s not found for booking ref=%s", booking.PackageID, booking.BookingRef)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Booking Voucher")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)
	writeRow := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(55, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 8, value, "", "L", false)
	}

	writeRow("Booking Reference:", booking.BookingRef)
	writeRow("Package:", packageName)
	writeRow("Departure Date:", booking.DepartureDate)
	writeRow("Room Configuration:", booking.RoomConfig)
	writeRow("Contact:", fmt.Sprintf("%s / %s, %s", booking.Contact.Email, booking.Contact.Phone, booking.Contact.City))
	if !booking.CreatedAt.IsZero() {
		writeRow("Booked At:", booking.CreatedAt.Format(time.RFC3339))
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Travellers")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	for i, t := range booking.Travellers {
		pdf.CellFormat(0, 7, fmt.Sprintf("%d. %s %s %s", i+1, t.Title, t.FirstName, t.LastName), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Price Summary")
	pdf.Ln(10)
	writeRow("Subtotal:", formatAmount(booking.Subtotal))
	writeRow("TCS (5%):", formatAmount(booking.TCS))
	if booking.DiscountApplied > 0 {
		writeRow("Discount:", "-"+formatAmount(booking.DiscountApplied))
	}
	writeRow("Total:", formatAmount(booking.Total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error("Generate: pdf output failed for booking ref=%s: %v", booking.BookingRef, err)
		return nil, fmt.Errorf("voucher: failed to render pdf: %w", err)
	}

	s.logger.Info("Generate: voucher rendered for booking ref=%s (%d bytes)", booking.BookingRef, buf.Len())
	return buf.Bytes(), nil
}

func formatAmount(v int64) string {
	return fmt.Sprintf("INR %d", v)
}
