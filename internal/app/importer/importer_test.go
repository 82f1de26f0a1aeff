package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"marketplace-admin/internal/app/pricing"
	"marketplace-admin/internal/app/pricing/mock_pricing"
	"marketplace-admin/internal/app/pricing/pricingtest"
	"marketplace-admin/internal/app/role"
)

var admin = role.Actor{UserID: 1, Role: role.Admin}

func method(name, price string) pricing.MethodDraft {
	return pricing.MethodDraft{Name: name, PricingUnit: pricing.UnitFixed, BasePrice: decimal.RequireFromString(price), Active: true}
}

func TestImportServicesEmptyRowName(t *testing.T) {
	store := pricingtest.NewMemStore()
	im := New(store, store)

	rows := []pricing.ServiceDraft{
		{CategoryID: 1, Name: "Raid carry"},
		{CategoryID: 1, Name: "Dungeon run"},
		{CategoryID: 1, Name: ""},
		{CategoryID: 1, Name: "Arena boost"},
	}

	res, err := im.ImportServices(context.Background(), admin, rows)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Created)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Row)
	assert.Equal(t, "row 3", res.Errors[0].RowName)
	assert.Equal(t, "Name is required", res.Errors[0].Error)
	assert.True(t, res.Partial())

	services, _ := store.ListServices(context.Background())
	assert.Len(t, services, 3)
}

func TestImportServicesForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := mock_pricing.NewMockServiceStore(ctrl)
	methods := mock_pricing.NewMockMethodStore(ctrl)
	im := New(services, methods)

	for _, actor := range []role.Actor{{UserID: 2, Role: role.Buyer}, {UserID: 3, Role: role.Manager}} {
		_, err := im.ImportServices(context.Background(), actor, []pricing.ServiceDraft{{CategoryID: 1, Name: "x"}})
		assert.True(t, errors.Is(err, role.ErrForbidden))

		_, err = im.PreflightPricingMethods(context.Background(), actor, 1, nil)
		assert.True(t, errors.Is(err, role.ErrForbidden))
	}
}

func TestImportServicesCancelledBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	im := New(mock_pricing.NewMockServiceStore(ctrl), mock_pricing.NewMockMethodStore(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := im.ImportServices(ctx, admin, []pricing.ServiceDraft{{CategoryID: 1, Name: "x"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImportPricingMethodsStoreFailureDoesNotRollBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := mock_pricing.NewMockServiceStore(ctrl)
	methods := mock_pricing.NewMockMethodStore(ctrl)
	im := New(services, methods)
	ctx := context.Background()

	services.EXPECT().GetService(ctx, uint(7)).Return(pricing.Service{ID: 7, Name: "Raid"}, nil)
	methods.EXPECT().ListMethods(ctx, uint(7)).Return(nil, nil)

	storeErr := errors.New("connection reset")
	gomock.InOrder(
		methods.EXPECT().CreateMethod(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m pricing.PricingMethod) (pricing.PricingMethod, error) {
				assert.Equal(t, uint(7), m.ServiceID)
				m.ID = 1
				return m, nil
			}),
		methods.EXPECT().CreateMethod(gomock.Any(), gomock.Any()).
			Return(pricing.PricingMethod{}, storeErr),
		methods.EXPECT().CreateMethod(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m pricing.PricingMethod) (pricing.PricingMethod, error) {
				m.ID = 3
				return m, nil
			}),
	)

	res, err := im.ImportPricingMethods(ctx, admin, 7, []pricing.MethodDraft{
		method("Normal", "10"),
		method("Express", "15"),
		method("VIP", "30"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, []uint{1, 3}, res.CreatedIDs)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, RowError{Row: 2, RowName: "Express", Error: "connection reset"}, res.Errors[0])
}

func TestImportPricingMethodsValidatesEveryRow(t *testing.T) {
	store := pricingtest.NewMemStore()
	ctx := context.Background()
	svc, err := store.CreateService(ctx, pricing.Service{CategoryID: 1, Name: "Leveling"})
	require.NoError(t, err)
	_, err = store.CreateMethod(ctx, pricing.PricingMethod{ServiceID: svc.ID, Name: "Existing", PricingUnit: pricing.UnitFixed})
	require.NoError(t, err)

	perLevel := method("Levels", "2")
	perLevel.PricingUnit = pricing.UnitPerLevel
	start, end := 40, 30
	perLevel.StartLevel, perLevel.EndLevel = &start, &end

	im := New(store, store)
	res, err := im.ImportPricingMethods(ctx, admin, svc.ID, []pricing.MethodDraft{
		method("Fast", "5"),
		method("existing", "5"),
		perLevel,
		method("FAST", "6"),
		method("Zero", "0"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 4, res.Failed)
	rows := make([]int, 0, len(res.Errors))
	for _, e := range res.Errors {
		rows = append(rows, e.Row)
		assert.NotEmpty(t, e.Fields)
	}
	assert.Equal(t, []int{2, 3, 4, 5}, rows)
}

func TestImportPricingMethodsUnknownService(t *testing.T) {
	store := pricingtest.NewMemStore()
	im := New(store, store)

	_, err := im.ImportPricingMethods(context.Background(), admin, 42, []pricing.MethodDraft{method("a", "1")})
	assert.ErrorIs(t, err, pricing.ErrNotFound)

	_, err = im.ImportPricingMethods(context.Background(), admin, 0, nil)
	var ve *pricing.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestPreflightDoesNotWrite(t *testing.T) {
	store := pricingtest.NewMemStore()
	store.FailCreate = func(name string) error {
		t.Fatalf("preflight wrote %q", name)
		return nil
	}
	im := New(store, store)

	issues, err := im.PreflightServices(context.Background(), admin, []pricing.ServiceDraft{
		{CategoryID: 1, Name: "Ok"},
		{CategoryID: 0, Name: ""},
	})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Row)
	assert.Equal(t, "row 2", issues[0].RowName)
	assert.Len(t, issues[0].Fields, 2)
}

func TestDefaultRows(t *testing.T) {
	assert.Equal(t, DefaultServiceRow(), DefaultServiceRow())
	assert.True(t, DefaultServiceRow().Active)

	m := DefaultMethodRow()
	assert.Equal(t, pricing.UnitFixed, m.PricingUnit)
	assert.True(t, m.Active)
	assert.NotNil(t, m.Shortcuts)
}

func TestRowName(t *testing.T) {
	assert.Equal(t, "row 1", RowName(0, "  "))
	assert.Equal(t, "Boost", RowName(4, " Boost "))
}
