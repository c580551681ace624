package quotecache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/infra/quotecache"
)

func testQuote() *domain.Quote {
	return &domain.Quote{
		PricePerPerson: 48990,
		TotalAdults:    1,
		Subtotal:       48990,
		TCS:            2450,
		Total:          51440,
		TravellerEntities: []domain.TravellerEntity{
			{Type: domain.TravellerAdult},
		},
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "quote:pkg2:2026-05-10:1-1", quotecache.Key("pkg2", "2026-05-10", "1-1"))
}

func TestGet_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := quotecache.New(db, time.Minute)

	mock.ExpectGet(quotecache.Key("pkg2", "2026-05-10", "1-1")).RedisNil()

	_, err := cache.Get(context.Background(), "pkg2", "2026-05-10", "1-1")

	assert.ErrorIs(t, err, quotecache.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := quotecache.New(db, time.Minute)

	data, err := json.Marshal(testQuote())
	require.NoError(t, err)
	mock.ExpectGet(quotecache.Key("pkg2", "2026-05-10", "1-1")).SetVal(string(data))

	quote, err := cache.Get(context.Background(), "pkg2", "2026-05-10", "1-1")

	require.NoError(t, err)
	assert.Equal(t, testQuote(), quote)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_CorruptPayload(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := quotecache.New(db, time.Minute)

	mock.ExpectGet(quotecache.Key("pkg2", "2026-05-10", "1-1")).SetVal("{not json")

	_, err := cache.Get(context.Background(), "pkg2", "2026-05-10", "1-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, quotecache.ErrCacheMiss)
}

func TestSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := quotecache.New(db, 30*time.Second)

	data, err := json.Marshal(testQuote())
	require.NoError(t, err)
	mock.ExpectSet(quotecache.Key("pkg2", "2026-05-10", "1-1"), data, 30*time.Second).SetVal("OK")

	err = cache.Set(context.Background(), "pkg2", "2026-05-10", "1-1", testQuote())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
