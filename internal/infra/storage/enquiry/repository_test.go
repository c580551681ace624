package enquiry_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	enquiryStorage "github.com/m04kA/SMC-TravelService/internal/infra/storage/enquiry"
)

func testEnquiry() *domain.Enquiry {
	return &domain.Enquiry{
		Ref:       "ENQ-TEST-0001",
		PackageID: "pkg2",
		Contact: domain.ContactInfo{
			Email: "priya@example.com",
			Phone: "9876543210",
			City:  "Mumbai",
		},
	}
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := enquiryStorage.NewRepository(db)
	e := testEnquiry()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO enquiries").
		WithArgs(e.Ref, e.PackageID, e.Contact.Email, e.Contact.Phone, e.Contact.City).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.Create(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := enquiryStorage.NewRepository(db)

	mock.ExpectQuery("INSERT INTO enquiries").WillReturnError(assert.AnError)

	_, err = repo.Create(context.Background(), testEnquiry())

	assert.ErrorIs(t, err, enquiryStorage.ErrExecQuery)
}

func TestMemStore_AssignOnce(t *testing.T) {
	store := enquiryStorage.NewMemStore()
	ctx := context.Background()

	created, err := store.Create(ctx, testEnquiry())
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = store.Create(ctx, testEnquiry())
	assert.ErrorIs(t, err, enquiryStorage.ErrRefAlreadyExists)
	assert.Equal(t, 1, store.Len())
}
