package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/importer"
	"marketplace-admin/internal/app/pricing"
	"marketplace-admin/internal/app/pricing/pricingtest"
	"marketplace-admin/internal/app/role"
)

type fakeStore struct {
	*pricingtest.MemStore
	categories []ds.Category
	users      []ds.User
}

func (s *fakeStore) CreateCategory(_ context.Context, name string) (ds.Category, error) {
	c := ds.Category{ID: uint(len(s.categories) + 1), Name: name}
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *fakeStore) ListCategories(_ context.Context) ([]ds.Category, error) {
	return s.categories, nil
}

func (s *fakeStore) CreateUser(_ context.Context, login, hash, fullName string, r role.Role) (*ds.User, error) {
	u := ds.User{ID: uint(len(s.users) + 1), Login: login, Password: hash, FullName: fullName, Role: int(r)}
	s.users = append(s.users, u)
	return &u, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{MemStore: pricingtest.NewMemStore()}
}

func run(t *testing.T, store *fakeStore, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(func(context.Context) (Store, error) { return store, nil })
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportServices(t *testing.T) {
	store := newFakeStore()
	path := writeFile(t, `[
		{"categoryId": 1, "name": "Raid"},
		{"categoryId": 1, "name": "Dungeon"},
		{"categoryId": 1, "name": ""},
		{"categoryId": 1, "name": "Arena"}
	]`)

	out, err := run(t, store, "import", "services", path)
	assert.ErrorIs(t, err, errRowsFailed)
	assert.Contains(t, out, "Created: 3, failed: 1")
	assert.Contains(t, out, "row 3 (row 3): Name is required")

	services, _ := store.ListServices(context.Background())
	require.Len(t, services, 3)
	assert.True(t, services[0].Active)
}

func TestImportServicesDryRunJSON(t *testing.T) {
	store := newFakeStore()
	path := writeFile(t, `[{"categoryId": 1, "name": "Raid"}]`)

	out, err := run(t, store, "import", "services", "--dry-run", "--json", path)
	require.NoError(t, err)

	var resp struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Valid)

	services, _ := store.ListServices(context.Background())
	assert.Empty(t, services)
}

func TestImportMethods(t *testing.T) {
	store := newFakeStore()
	svc, err := store.CreateService(context.Background(), pricing.Service{CategoryID: 1, Name: "Leveling"})
	require.NoError(t, err)

	path := writeFile(t, `[
		{"name": "Normal", "basePrice": 10, "shortcuts": ["n"]},
		{"name": "Levels", "pricingUnit": "PER_LEVEL", "basePrice": "1.5", "startLevel": 1, "endLevel": 60}
	]`)

	out, err := run(t, store, "import", "methods", "--service", "1", "--json", path)
	require.NoError(t, err)

	var res importer.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Created)

	methods, _ := store.ListMethods(context.Background(), svc.ID)
	require.Len(t, methods, 2)
	assert.Equal(t, pricing.UnitFixed, methods[0].PricingUnit)

	_, err = run(t, store, "import", "methods", path)
	assert.Error(t, err)
}

func TestImportRejectsBadFile(t *testing.T) {
	store := newFakeStore()

	_, err := run(t, store, "import", "services", writeFile(t, `{"rows": []}`))
	assert.Error(t, err)

	_, err = run(t, store, "import", "services", writeFile(t, `[]`))
	assert.ErrorContains(t, err, "no rows")

	_, err = run(t, store, "import", "services", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestImportDefaults(t *testing.T) {
	out, err := run(t, newFakeStore(), "import", "defaults")
	require.NoError(t, err)
	assert.Contains(t, out, `"pricingUnit": "FIXED"`)
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc, err := store.CreateService(ctx, pricing.Service{CategoryID: 1, Name: "Raid"})
	require.NoError(t, err)
	method, err := pricing.NewMethodCatalog(store, store).Create(ctx, svc.ID, pricing.MethodDraft{
		Name: "Normal", PricingUnit: pricing.UnitFixed, BasePrice: decimal.NewFromInt(100), Shortcuts: []string{"n"}, Active: true,
	})
	require.NoError(t, err)
	ten := decimal.NewFromInt(10)
	_, err = pricing.NewModifierSet(store, store).Create(ctx, svc.ID, pricing.ModifierDraft{
		Name: "Express", Type: pricing.ModifierPercentage, Value: &ten, Active: true,
	})
	require.NoError(t, err)

	out, err := run(t, store, "quote", "--service", fmt.Sprint(svc.ID), "--method", "N")
	require.NoError(t, err)
	assert.Contains(t, out, "Base price:")
	assert.Contains(t, out, "+10.00")
	assert.Regexp(t, `Final price:\s+110\.00`, out)

	_, err = run(t, store, "quote", "--service", "1")
	assert.Error(t, err)

	_, err = run(t, store, "quote", "--service", "1", "--method-id", "999")
	assert.ErrorIs(t, err, pricing.ErrMethodNotFound)

	_, err = run(t, store, "quote", "--service", "1", "--method-id", fmt.Sprint(method.ID), "--quantity", "-1")
	assert.Error(t, err)

	_, err = run(t, store, "quote", "--service", "1", "--method-id", fmt.Sprint(method.ID), "--quantity", "two")
	assert.Error(t, err)
}

func TestQuoteFractionalHours(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc, err := store.CreateService(ctx, pricing.Service{CategoryID: 1, Name: "Coaching"})
	require.NoError(t, err)
	_, err = pricing.NewMethodCatalog(store, store).Create(ctx, svc.ID, pricing.MethodDraft{
		Name: "Hourly", PricingUnit: pricing.UnitPerHour, BasePrice: decimal.NewFromInt(40), Active: true,
	})
	require.NoError(t, err)

	out, err := run(t, store, "quote", "--service", fmt.Sprint(svc.ID), "--method", "hourly", "-q", "1.5")
	require.NoError(t, err)
	assert.Regexp(t, `Base price:\s+60\.00`, out)
	assert.Regexp(t, `Final price:\s+60\.00`, out)
}

func TestAdminCreate(t *testing.T) {
	store := newFakeStore()

	out, err := run(t, store, "admin", "create", "--login", "root", "--password", "s3cret-pass", "--full-name", "Root")
	require.NoError(t, err)
	assert.Contains(t, out, "Created user 1 root (admin)")

	require.Len(t, store.users, 1)
	assert.Equal(t, int(role.Admin), store.users[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.users[0].Password), []byte("s3cret-pass")))

	_, err = run(t, store, "admin", "create", "--login", "m", "--password", "short")
	assert.Error(t, err)

	_, err = run(t, store, "admin", "create", "--login", "m", "--password", "long-enough", "--role", "owner")
	assert.Error(t, err)
	assert.Len(t, store.users, 1)
}

func TestCategory(t *testing.T) {
	store := newFakeStore()

	out, err := run(t, store, "category", "create", "Boosting")
	require.NoError(t, err)
	assert.Contains(t, out, "Created category 1 Boosting")

	out, err = run(t, store, "category", "list")
	require.NoError(t, err)
	assert.Equal(t, "1\tBoosting\n", out)
}
