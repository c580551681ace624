package voucher_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/infra/catalog"
	"github.com/m04kA/SMC-TravelService/internal/service/voucher"
)

type stubCatalog struct {
	packages map[string]*domain.Package
}

func (c *stubCatalog) GetPackage(_ context.Context, id string) (*domain.Package, error) {
	pkg, ok := c.packages[id]
	if !ok {
		return nil, catalog.ErrPackageNotFound
	}
	return pkg, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		BookingRef:    "BK-TEST-0001",
		PackageID:     "pkg1",
		DepartureDate: "2026-04-08",
		RoomConfig:    "1-2",
		Travellers: []domain.Traveller{
			{Title: "Mr", FirstName: "Arjun", LastName: "Mehta"},
			{Title: "Ms", FirstName: "Priya", LastName: "Mehta"},
		},
		Contact: domain.ContactInfo{
			Email: "arjun@example.com",
			Phone: "9876543210",
			City:  "New Delhi",
		},
		Subtotal:        351080,
		TCS:             17554,
		DiscountApplied: 1000,
		Total:           367634,
		CreatedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerate(t *testing.T) {
	svc := voucher.NewService(&stubCatalog{packages: map[string]*domain.Package{
		"pkg1": {ID: "pkg1", Name: "Amsterdam & Paris Delight"},
	}}, nopLogger{})

	pdf, err := svc.Generate(context.Background(), testBooking())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(pdf), 500)
}

func TestGenerate_UnknownPackageStillRenders(t *testing.T) {
	svc := voucher.NewService(&stubCatalog{}, nopLogger{})

	pdf, err := svc.Generate(context.Background(), testBooking())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
