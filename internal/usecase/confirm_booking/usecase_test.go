package confirm_booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/infra/catalog"
	bookingStorage "github.com/m04kA/SMC-TravelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TravelService/internal/service/pricing"
	"github.com/m04kA/SMC-TravelService/internal/service/promo"
	confirmBookingUC "github.com/m04kA/SMC-TravelService/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-TravelService/pkg/ptr"
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

type stubPromoTable struct {
	codes map[string]*domain.PromoCode
}

func (t *stubPromoTable) Lookup(_ context.Context, code string) (*domain.PromoCode, bool) {
	c, ok := t.codes[code]
	return c, ok
}

type fixedRefProvider struct {
	ref string
}

func (p *fixedRefProvider) NewRef() string { return p.ref }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T) (*confirmBookingUC.UseCase, *bookingStorage.MemStore) {
	t.Helper()

	cat := &stubCatalog{packages: map[string]*domain.Package{
		"pkg1": {
			ID:   "pkg1",
			Name: "Amsterdam & Paris Delight",
			DepartureDates: []domain.DepartureDate{
				{Date: "2026-04-08", ReturnDate: "2026-04-14", PricePerPerson: 175540, Available: true},
				{Date: "2026-05-20", ReturnDate: "2026-05-26", PricePerPerson: 182340, Available: false},
			},
		},
	}}
	table := &stubPromoTable{codes: map[string]*domain.PromoCode{
		"WELCOME1000": {Code: "WELCOME1000", Amount: 1000, Type: domain.PromoFixed},
	}}

	store := bookingStorage.NewMemStore()
	uc := confirmBookingUC.NewUseCase(
		pricing.NewService(cat, nopLogger{}),
		promo.NewService(table, nopLogger{}),
		store,
		nopLogger{},
	).WithRefProvider(&fixedRefProvider{ref: "BK-TEST-0001"})

	return uc, store
}

func validRequest() *confirmBookingUC.Request {
	return &confirmBookingUC.Request{
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
		PassportAck:    ptr.Ptr(true),
		StepsCompleted: []string{"Trip Details", "Date Selection", "Price Summary", "Traveller Details"},
	}
}

func TestExecute_Success(t *testing.T) {
	uc, store := newFixture(t)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "BK-TEST-0001", resp.BookingRef)
	assert.Equal(t, int64(351080), resp.Subtotal)
	assert.Equal(t, int64(17554), resp.TCS)
	assert.Equal(t, int64(0), resp.DiscountApplied)
	assert.Equal(t, int64(368634), resp.Total)
	assert.False(t, resp.CreatedAt.IsZero())

	stored, err := store.GetByRef(context.Background(), "BK-TEST-0001")
	require.NoError(t, err)
	assert.Equal(t, resp.Total, stored.Total)
	assert.Len(t, stored.Travellers, 2)
}

func TestExecute_WithPromoCode(t *testing.T) {
	uc, store := newFixture(t)

	req := validRequest()
	req.PromoCode = "WELCOME1000"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), resp.DiscountApplied)
	assert.Equal(t, int64(367634), resp.Total)

	// Инвариант: total = subtotal + tcs - discount
	assert.Equal(t, resp.Subtotal+resp.TCS-resp.DiscountApplied, resp.Total)

	stored, err := store.GetByRef(context.Background(), "BK-TEST-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.DiscountApplied)
}

func TestExecute_InvalidPromoCode(t *testing.T) {
	uc, store := newFixture(t)

	req := validRequest()
	req.PromoCode = "EXPIRED99"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrInvalidPromoCode)
	assert.Equal(t, 0, store.Len())
}

func TestExecute_MissingRequiredFields(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.RoomConfig = ""

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrInvalidInput)
}

func TestExecute_MissingStep(t *testing.T) {
	uc, store := newFixture(t)

	req := validRequest()
	req.StepsCompleted = []string{"Trip Details", "Date Selection", "Traveller Details"}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrMissingStep)
	assert.Equal(t, 0, store.Len())
}

func TestExecute_StepsOutOfOrder(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.StepsCompleted = []string{"Date Selection", "Trip Details", "Price Summary", "Traveller Details"}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrStepsOutOfOrder)
}

func TestExecute_PassportAckMissing(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.PassportAck = nil

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrPassportAckRequired)
}

func TestExecute_InvalidContact(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.Contact.Email = "not-an-email"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestExecute_GSTFieldsRequired(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.GSTEnabled = true
	req.GSTNumber = ""

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrGSTFieldsRequired)
}

func TestExecute_GSTFieldsStored(t *testing.T) {
	uc, store := newFixture(t)

	req := validRequest()
	req.GSTEnabled = true
	req.GSTNumber = "27AAPFU0939F1ZV"
	req.CompanyName = "Acme Travels"

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	stored, err := store.GetByRef(context.Background(), "BK-TEST-0001")
	require.NoError(t, err)
	require.NotNil(t, stored.GSTNumber)
	require.NotNil(t, stored.CompanyName)
	assert.Equal(t, "27AAPFU0939F1ZV", *stored.GSTNumber)
	assert.Equal(t, "Acme Travels", *stored.CompanyName)
}

func TestExecute_TravellerCountMismatchLeavesStoreEmpty(t *testing.T) {
	uc, store := newFixture(t)

	req := validRequest()
	req.Travellers = req.Travellers[:1]

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrTravellerCountMismatch)
	assert.Contains(t, err.Error(), "expected 2")
	assert.Equal(t, 0, store.Len())
}

func TestExecute_IncompleteTraveller(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.Travellers[1].LastName = ""

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrIncompleteTraveller)
}

func TestExecute_PackageNotFound(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.PackageID = "unknown"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrPackageNotFound)
}

func TestExecute_DateNotAvailable(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.DepartureDate = "2026-05-20"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrDateNotAvailable)
}

func TestExecute_InvalidRoomConfig(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.RoomConfig = "2-x"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, confirmBookingUC.ErrInvalidRoomConfig)
}
