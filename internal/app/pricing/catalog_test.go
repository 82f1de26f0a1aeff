package pricing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-admin/internal/app/pricing"
	"marketplace-admin/internal/app/pricing/pricingtest"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T { return &v }

func seedService(t *testing.T, store *pricingtest.MemStore, name string) pricing.Service {
	t.Helper()
	svc, err := store.CreateService(context.Background(), pricing.Service{CategoryID: 1, Name: name, Active: true})
	require.NoError(t, err)
	return svc
}

func TestMethodCatalogCreateAndList(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	svc := seedService(t, store, "Raid")
	catalog := pricing.NewMethodCatalog(store, store)

	_, err := catalog.Create(ctx, svc.ID, pricing.MethodDraft{Name: "Second", PricingUnit: pricing.UnitFixed, BasePrice: price("20"), DisplayOrder: 2, Active: true})
	require.NoError(t, err)
	_, err = catalog.Create(ctx, svc.ID, pricing.MethodDraft{Name: "Hidden", PricingUnit: pricing.UnitFixed, BasePrice: price("5"), DisplayOrder: 0})
	require.NoError(t, err)
	first, err := catalog.Create(ctx, svc.ID, pricing.MethodDraft{Name: " First ", PricingUnit: pricing.UnitFixed, BasePrice: price("10"), DisplayOrder: 1, Active: true})
	require.NoError(t, err)
	assert.Equal(t, "First", first.Name)

	all, err := catalog.List(ctx, svc.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Hidden", all[0].Name)

	active, err := catalog.ListActive(ctx, svc.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "First", active[0].Name)
	assert.Equal(t, "Second", active[1].Name)
}

func TestMethodCatalogCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	svc := seedService(t, store, "Raid")
	catalog := pricing.NewMethodCatalog(store, store)

	_, err := catalog.Create(ctx, svc.ID, pricing.MethodDraft{
		Name:        "Leveling",
		PricingUnit: pricing.UnitPerLevel,
		BasePrice:   price("1"),
		StartLevel:  ptr(40),
		EndLevel:    ptr(30),
	})

	var ve *pricing.ValidationError
	require.True(t, errors.As(err, &ve))
	methods, _ := store.ListMethods(ctx, svc.ID)
	assert.Empty(t, methods)

	_, err = catalog.Create(ctx, 0, pricing.MethodDraft{Name: "x", PricingUnit: pricing.UnitFixed, BasePrice: price("1")})
	assert.True(t, errors.As(err, &ve))
}

func TestMethodCatalogCreateConflict(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	svc := seedService(t, store, "Raid")
	other := seedService(t, store, "Dungeon")
	catalog := pricing.NewMethodCatalog(store, store)
	d := pricing.MethodDraft{Name: "Express", PricingUnit: pricing.UnitFixed, BasePrice: price("10")}

	_, err := catalog.Create(ctx, svc.ID, d)
	require.NoError(t, err)

	_, err = catalog.Create(ctx, svc.ID, d)
	var ce *pricing.ConflictError
	assert.True(t, errors.As(err, &ce))

	// в другой услуге то же имя допустимо
	_, err = catalog.Create(ctx, other.ID, d)
	assert.NoError(t, err)
}

func TestMethodCatalogNameCollidesWithShortcut(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	svc := seedService(t, store, "Raid")
	catalog := pricing.NewMethodCatalog(store, store)

	express, err := catalog.Create(ctx, svc.ID, pricing.MethodDraft{
		Name: "Express", PricingUnit: pricing.UnitFixed, BasePrice: price("10"), Shortcuts: []string{"fast"}, Active: true,
	})
	require.NoError(t, err)

	_, err = catalog.Create(ctx, svc.ID, pricing.MethodDraft{Name: "Fast", PricingUnit: pricing.UnitFixed, BasePrice: price("5"), Active: true})
	var ce *pricing.ConflictError
	require.True(t, errors.As(err, &ce), "got %v", err)
	require.Len(t, ce.Fields, 1)
	assert.Equal(t, "name", ce.Fields[0].Field)

	_, err = catalog.Create(ctx, svc.ID, pricing.MethodDraft{
		Name: "Turbo", PricingUnit: pricing.UnitFixed, BasePrice: price("5"), Shortcuts: []string{"EXPRESS"},
	})
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, "shortcuts", ce.Fields[0].Field)

	turbo, err := catalog.Create(ctx, svc.ID, pricing.MethodDraft{
		Name: "Turbo", PricingUnit: pricing.UnitFixed, BasePrice: price("5"), Shortcuts: []string{"t"}, Active: true,
	})
	require.NoError(t, err)

	// переименование в чужое сокращение тоже конфликт
	_, err = catalog.Update(ctx, turbo.ID, pricing.MethodPatch{Name: ptr("FAST")})
	assert.True(t, errors.As(err, &ce), "got %v", err)

	methods, err := catalog.ListActive(ctx, svc.ID)
	require.NoError(t, err)
	m, ok := pricing.FindBySelector(methods, "fast")
	require.True(t, ok)
	assert.Equal(t, express.ID, m.ID)
}

func TestMethodCatalogCreateRequiresService(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	catalog := pricing.NewMethodCatalog(store, store)
	d := pricing.MethodDraft{Name: "Express", PricingUnit: pricing.UnitFixed, BasePrice: price("10")}

	_, err := catalog.Create(ctx, 424242, d)
	assert.True(t, errors.Is(err, pricing.ErrNotFound), "got %v", err)

	methods, _ := store.ListMethods(ctx, 424242)
	assert.Empty(t, methods)
}

func TestMethodCatalogUpdateRevalidatesMerged(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	svc := seedService(t, store, "Raid")
	catalog := pricing.NewMethodCatalog(store, store)

	m, err := catalog.Create(ctx, svc.ID, pricing.MethodDraft{
		Name: "Leveling", PricingUnit: pricing.UnitPerLevel, BasePrice: price("1"),
		StartLevel: ptr(10), EndLevel: ptr(20), Active: true,
	})
	require.NoError(t, err)
	_, err = catalog.Create(ctx, svc.ID, pricing.MethodDraft{Name: "Other", PricingUnit: pricing.UnitFixed, BasePrice: price("3")})
	require.NoError(t, err)

	// только start меняется, end остается 20
	_, err = catalog.Update(ctx, m.ID, pricing.MethodPatch{StartLevel: ptr(25)})
	var ve *pricing.ValidationError
	require.True(t, errors.As(err, &ve))

	// своё имя не считается дублем
	updated, err := catalog.Update(ctx, m.ID, pricing.MethodPatch{Name: ptr("Leveling"), BasePrice: ptr(price("2"))})
	require.NoError(t, err)
	assert.True(t, updated.BasePrice.Equal(price("2")))

	_, err = catalog.Update(ctx, m.ID, pricing.MethodPatch{Name: ptr("other")})
	var ce *pricing.ConflictError
	assert.True(t, errors.As(err, &ce))

	_, err = catalog.Update(ctx, 999, pricing.MethodPatch{})
	assert.True(t, errors.Is(err, pricing.ErrNotFound))
}

func TestFindBySelector(t *testing.T) {
	methods := []pricing.PricingMethod{
		{ID: 1, Name: "Express", Shortcuts: []string{"exp"}, Active: false},
		{ID: 2, Name: "Express Plus", Shortcuts: []string{"EXP", "xp"}, Active: true},
	}

	m, ok := pricing.FindBySelector(methods, "exp")
	require.True(t, ok)
	assert.Equal(t, uint(2), m.ID)

	_, ok = pricing.FindBySelector(methods, "express")
	assert.False(t, ok)

	_, ok = pricing.FindBySelector(methods, " ")
	assert.False(t, ok)
}

func TestFindBySelectorPrefersName(t *testing.T) {
	methods := []pricing.PricingMethod{
		{ID: 1, Name: "Express", Shortcuts: []string{"fast"}, Active: true},
		{ID: 2, Name: "Fast", Active: true},
	}

	m, ok := pricing.FindBySelector(methods, "FAST")
	require.True(t, ok)
	assert.Equal(t, uint(2), m.ID)

	methods[1].Active = false
	m, ok = pricing.FindBySelector(methods, "fast")
	require.True(t, ok)
	assert.Equal(t, uint(1), m.ID)
}

func TestModifierSetLifecycle(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	svc := seedService(t, store, "Raid")
	other := seedService(t, store, "Dungeon")
	set := pricing.NewModifierSet(store, store)

	mod, err := set.Create(ctx, svc.ID, pricing.ModifierDraft{Name: "Express", Type: pricing.ModifierPercentage, Value: ptr(price("10")), Active: true})
	require.NoError(t, err)
	assert.Equal(t, pricing.DisplayNormal, mod.DisplayType)

	toggled, err := set.ToggleActive(ctx, svc.ID, mod.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)
	assert.Equal(t, mod.Name, toggled.Name)
	assert.True(t, toggled.Value.Equal(mod.Value))

	applicable, err := set.ListApplicable(ctx, svc.ID)
	require.NoError(t, err)
	assert.Empty(t, applicable)

	all, err := set.List(ctx, svc.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = set.Update(ctx, svc.ID, mod.ID, pricing.ModifierPatch{
		Condition: pricing.PriceRange{Min: price("10"), Max: price("1")},
	})
	var ve *pricing.ValidationError
	assert.True(t, errors.As(err, &ve))

	// модификатор другой услуги не виден
	_, err = set.ToggleActive(ctx, other.ID, mod.ID)
	assert.True(t, errors.Is(err, pricing.ErrNotFound))

	require.NoError(t, set.Delete(ctx, svc.ID, mod.ID))
	assert.True(t, errors.Is(set.Delete(ctx, svc.ID, mod.ID), pricing.ErrNotFound))
}

func TestModifierSetCreateRequiresService(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	set := pricing.NewModifierSet(store, store)
	d := pricing.ModifierDraft{Name: "Express", Type: pricing.ModifierPercentage, Value: ptr(price("10"))}

	_, err := set.Create(ctx, 424242, d)
	assert.True(t, errors.Is(err, pricing.ErrNotFound), "got %v", err)

	_, err = set.Create(ctx, 0, d)
	var ve *pricing.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "serviceId", ve.Fields[0].Field)

	mods, _ := store.ListModifiers(ctx, 424242)
	assert.Empty(t, mods)
}

func TestQuoterPreconditions(t *testing.T) {
	ctx := context.Background()
	store := pricingtest.NewMemStore()
	svc := seedService(t, store, "Raid")
	other := seedService(t, store, "Dungeon")
	catalog := pricing.NewMethodCatalog(store, store)
	set := pricing.NewModifierSet(store, store)
	quoter := pricing.NewQuoter(store, store)

	active, err := catalog.Create(ctx, svc.ID, pricing.MethodDraft{Name: "Base", PricingUnit: pricing.UnitFixed, BasePrice: price("100"), Shortcuts: []string{"b"}, Active: true})
	require.NoError(t, err)
	inactive, err := catalog.Create(ctx, svc.ID, pricing.MethodDraft{Name: "Old", PricingUnit: pricing.UnitFixed, BasePrice: price("50")})
	require.NoError(t, err)
	_, err = set.Create(ctx, svc.ID, pricing.ModifierDraft{Name: "Express", Type: pricing.ModifierPercentage, Value: ptr(price("10")), Priority: 1, Active: true})
	require.NoError(t, err)
	_, err = set.Create(ctx, svc.ID, pricing.ModifierDraft{Name: "Promo", Type: pricing.ModifierFixed, Value: ptr(price("-5")), Priority: 2, Active: true})
	require.NoError(t, err)

	q, err := quoter.Quote(ctx, svc.ID, active.ID, pricing.QuoteContext{Quantity: price("1")})
	require.NoError(t, err)
	assert.True(t, q.FinalPrice.Equal(price("105")), "got %s", q.FinalPrice)

	q, err = quoter.QuoteBySelector(ctx, svc.ID, "B", pricing.QuoteContext{Quantity: price("1")})
	require.NoError(t, err)
	assert.Equal(t, active.ID, q.MethodID)

	var pe *pricing.PreconditionError

	_, err = quoter.Quote(ctx, svc.ID, inactive.ID, pricing.QuoteContext{Quantity: price("1")})
	require.True(t, errors.As(err, &pe))
	assert.True(t, errors.Is(err, pricing.ErrMethodInactive))

	_, err = quoter.Quote(ctx, svc.ID, 999, pricing.QuoteContext{Quantity: price("1")})
	require.True(t, errors.As(err, &pe))
	assert.True(t, errors.Is(err, pricing.ErrMethodNotFound))

	_, err = quoter.Quote(ctx, other.ID, active.ID, pricing.QuoteContext{Quantity: price("1")})
	assert.True(t, errors.Is(err, pricing.ErrMethodNotFound))

	_, err = quoter.QuoteBySelector(ctx, svc.ID, "old", pricing.QuoteContext{Quantity: price("1")})
	assert.True(t, errors.Is(err, pricing.ErrMethodNotFound))
}

func TestServiceCatalogCreate(t *testing.T) {
	ctx := context.Background()
	catalog := pricing.NewServiceCatalog(pricingtest.NewMemStore())

	svc, err := catalog.Create(ctx, pricing.ServiceDraft{CategoryID: 1, Name: " Raid ", Emoji: "⚔️", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "Raid", svc.Name)

	_, err = catalog.Create(ctx, pricing.ServiceDraft{CategoryID: 1, Name: "raid"})
	var ce *pricing.ConflictError
	assert.True(t, errors.As(err, &ce))

	got, err := catalog.Get(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, svc, got)
}
