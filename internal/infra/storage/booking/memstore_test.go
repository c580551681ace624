package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingStorage "github.com/m04kA/SMC-TravelService/internal/infra/storage/booking"
)

func TestMemStore_CreateAndGet(t *testing.T) {
	store := bookingStorage.NewMemStore()
	ctx := context.Background()

	created, err := store.Create(ctx, testBooking())
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.GetByRef(ctx, "BK-TEST-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(367634), got.Total)
	assert.Equal(t, 1, store.Len())
}

func TestMemStore_AssignOnce(t *testing.T) {
	store := bookingStorage.NewMemStore()
	ctx := context.Background()

	_, err := store.Create(ctx, testBooking())
	require.NoError(t, err)

	_, err = store.Create(ctx, testBooking())
	assert.ErrorIs(t, err, bookingStorage.ErrRefAlreadyExists)
	assert.Equal(t, 1, store.Len())
}

func TestMemStore_GetByRefNotFound(t *testing.T) {
	store := bookingStorage.NewMemStore()

	_, err := store.GetByRef(context.Background(), "missing")

	assert.ErrorIs(t, err, bookingStorage.ErrBookingNotFound)
}
