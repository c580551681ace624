package booking_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-TravelService/internal/infra/storage/booking"
)

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
	}
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := bookingStorage.NewRepository(db)
	b := testBooking()

	travellers, err := json.Marshal(b.Travellers)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(
			b.BookingRef, b.PackageID, b.DepartureDate, b.RoomConfig, travellers,
			b.Contact.Email, b.Contact.Phone, b.Contact.City,
			b.GSTEnabled, nil, nil,
			b.Subtotal, b.TCS, b.DiscountApplied, b.Total,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := bookingStorage.NewRepository(db)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(assert.AnError)

	_, err = repo.Create(context.Background(), testBooking())

	assert.ErrorIs(t, err, bookingStorage.ErrExecQuery)
}

func TestGetByRef(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := bookingStorage.NewRepository(db)
	b := testBooking()

	travellers, err := json.Marshal(b.Travellers)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"booking_ref", "package_id", "departure_date", "room_config", "travellers",
		"contact_email", "contact_phone", "contact_city",
		"gst_enabled", "gst_number", "company_name",
		"subtotal", "tcs", "discount_applied", "total", "created_at",
	}).AddRow(
		b.BookingRef, b.PackageID, b.DepartureDate, b.RoomConfig, travellers,
		b.Contact.Email, b.Contact.Phone, b.Contact.City,
		b.GSTEnabled, nil, nil,
		b.Subtotal, b.TCS, b.DiscountApplied, b.Total, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(b.BookingRef).
		WillReturnRows(rows)

	got, err := repo.GetByRef(context.Background(), b.BookingRef)

	require.NoError(t, err)
	assert.Equal(t, b.BookingRef, got.BookingRef)
	assert.Equal(t, b.Total, got.Total)
	assert.Equal(t, b.Contact, got.Contact)
	require.Len(t, got.Travellers, 2)
	assert.Equal(t, "Arjun", got.Travellers[0].FirstName)
	assert.Equal(t, now, got.CreatedAt)
	assert.Nil(t, got.GSTNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByRef_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := bookingStorage.NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByRef(context.Background(), "missing")

	assert.ErrorIs(t, err, bookingStorage.ErrBookingNotFound)
}
