package enquiry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для работы с БД (*sql.DB или *sql.Tx)
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repository PostgreSQL-репозиторий заявок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку
func (r *Repository) Create(ctx context.Context, e *domain.Enquiry) (*domain.Enquiry, error) {
	query, args, err := psqlbuilder.Insert("enquiries").
		Columns(
			"ref",
			"package_id",
			"contact_email",
			"contact_phone",
			"contact_city",
		).
		Values(
			e.Ref,
			e.PackageID,
			e.Contact.Email,
			e.Contact.Phone,
			e.Contact.City,
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

	e.CreatedAt = createdAt.Time
	return e, nil
}
