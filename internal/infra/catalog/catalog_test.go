package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/infra/catalog"
)

const seedTOML = `
[[packages]]
id = "pkg1"
name = "Amsterdam & Paris Delight"
leaving_from = "New Delhi"
destination = "Amsterdam, Paris"
duration = 6
itinerary = "3N Amsterdam - 3N Paris"
inclusions = ["Flights", "Hotels"]

[[packages.hotels]]
name = "Hotel V Nesplein"
rating = 4
nights = 3
city = "Amsterdam"

[[packages.departure_dates]]
date = "2026-04-08"
return_date = "2026-04-14"
price_per_person = 175540
available = true

[[packages.departure_dates]]
date = "2026-05-20"
return_date = "2026-05-26"
price_per_person = 182340
available = false

[[packages]]
id = "pkg2"
name = "Himalayan Escape"
leaving_from = "Mumbai"
destination = "Manali, Shimla"
duration = 5

[[promos]]
code = "WELCOME1000"
amount = 1000
type = "fixed"
`

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(seedTOML), 0o644))
	return path
}

func TestNewFromFile(t *testing.T) {
	cat, promos, err := catalog.NewFromFile(writeSeed(t))
	require.NoError(t, err)

	ctx := context.Background()

	pkg, err := cat.GetPackage(ctx, "pkg1")
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam & Paris Delight", pkg.Name)
	assert.Equal(t, 6, pkg.Duration)
	assert.Equal(t, []string{"Flights", "Hotels"}, pkg.Inclusions)
	require.Len(t, pkg.Hotels, 1)
	assert.Equal(t, "Hotel V Nesplein", pkg.Hotels[0].Name)
	require.Len(t, pkg.DepartureDates, 2)
	assert.Equal(t, int64(175540), pkg.DepartureDates[0].PricePerPerson)
	assert.True(t, pkg.DepartureDates[0].Available)
	assert.False(t, pkg.DepartureDates[1].Available)

	code, ok := promos.Lookup(ctx, "WELCOME1000")
	require.True(t, ok)
	assert.Equal(t, int64(1000), code.Amount)
	assert.Equal(t, domain.PromoFixed, code.Type)

	_, ok = promos.Lookup(ctx, "UNKNOWN")
	assert.False(t, ok)
}

func TestNewFromFile_MissingFile(t *testing.T) {
	_, _, err := catalog.NewFromFile(filepath.Join(t.TempDir(), "nope.toml"))

	assert.ErrorIs(t, err, catalog.ErrLoadSeed)
}

func TestListPackages_StableOrder(t *testing.T) {
	cat, _, err := catalog.NewFromFile(writeSeed(t))
	require.NoError(t, err)

	list := cat.ListPackages(context.Background())

	require.Len(t, list, 2)
	assert.Equal(t, "pkg1", list[0].ID)
	assert.Equal(t, "pkg2", list[1].ID)
}

func TestGetPackage_NotFound(t *testing.T) {
	cat, _, err := catalog.NewFromFile(writeSeed(t))
	require.NoError(t, err)

	_, err = cat.GetPackage(context.Background(), "pkg999")

	assert.ErrorIs(t, err, catalog.ErrPackageNotFound)
}
