package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для работы с БД (*sql.DB или *sql.Tx)
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repository PostgreSQL-репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование. Запись неизменяема: один booking_ref
// записывается ровно один раз, конфликт по ref считается ошибкой.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	travellers, err := json.Marshal(booking.Travellers)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal travellers: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_ref",
			"package_id",
			"departure_date",
			"room_config",
			"travellers",
			"contact_email",
			"contact_phone",
			"contact_city",
			"gst_enabled",
			"gst_number",
			"company_name",
			"subtotal",
			"tcs",
			"discount_applied",
			"total",
		).
		Values(
			booking.BookingRef,
			booking.PackageID,
			booking.DepartureDate,
			booking.RoomConfig,
			travellers,
			booking.Contact.Email,
			booking.Contact.Phone,
			booking.Contact.City,
			booking.GSTEnabled,
			booking.GSTNumber,
			booking.CompanyName,
			booking.Subtotal,
			booking.TCS,
			booking.DiscountApplied,
			booking.Total,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	return booking, nil
}

// GetByRef получает бронирование по booking_ref
func (r *Repository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"booking_ref",
		"package_id",
		"departure_date",
		"room_config",
		"travellers",
		"contact_email",
		"contact_phone",
		"contact_city",
		"gst_enabled",
		"gst_number",
		"company_name",
		"subtotal",
		"tcs",
		"discount_applied",
		"total",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"booking_ref": ref}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var travellers []byte
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.BookingRef,
		&booking.PackageID,
		&booking.DepartureDate,
		&booking.RoomConfig,
		&travellers,
		&booking.Contact.Email,
		&booking.Contact.Phone,
		&booking.Contact.City,
		&booking.GSTEnabled,
		&booking.GSTNumber,
		&booking.CompanyName,
		&booking.Subtotal,
		&booking.TCS,
		&booking.DiscountApplied,
		&booking.Total,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByRef - scan row: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(travellers, &booking.Travellers); err != nil {
		return nil, fmt.Errorf("%w: GetByRef - unmarshal travellers: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}
