package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCanManageCatalog(t *testing.T) {
	assert.False(t, Buyer.CanManageCatalog())
	assert.False(t, Manager.CanManageCatalog())
	assert.True(t, Admin.CanManageCatalog())
	assert.True(t, Operator().Role.CanManageCatalog())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, Buyer.Valid())
	assert.True(t, Admin.Valid())
	assert.False(t, Role(7).Valid())
	assert.Equal(t, "unknown", Role(-1).String())
	assert.Equal(t, "manager", Manager.String())
}

func TestParse(t *testing.T) {
	r, err := Parse(" Admin ")
	require.NoError(t, err)
	assert.Equal(t, Admin, r)

	r, err = Parse("buyer")
	require.NoError(t, err)
	assert.Equal(t, Buyer, r)

	_, err = Parse("owner")
	assert.Error(t, err)
}
