package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toko-pos/utils"
)

func TestAdminSeedDefaultPasswordVerifies(t *testing.T) {
	t.Setenv("SEED_ADMIN_EMAIL", "")
	t.Setenv("SEED_ADMIN_PASSWORD", "")

	email, hash, err := adminSeedCredentials()
	require.NoError(t, err)
	assert.Equal(t, "admin@tokoapril.id", email)

	ok, err := utils.VerifyPassword(hash, "admin123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAdminSeedUsesConfiguredCredentials(t *testing.T) {
	t.Setenv("SEED_ADMIN_EMAIL", "pemilik@tokoapril.id")
	t.Setenv("SEED_ADMIN_PASSWORD", "rahasia-toko")

	email, hash, err := adminSeedCredentials()
	require.NoError(t, err)
	assert.Equal(t, "pemilik@tokoapril.id", email)

	ok, err := utils.VerifyPassword(hash, "rahasia-toko")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = utils.VerifyPassword(hash, "admin123")
	require.NoError(t, err)
	assert.False(t, ok)
}
