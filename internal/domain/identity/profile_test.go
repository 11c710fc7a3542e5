package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	dealerID := uuid.New()
	userID := uuid.New()

	t.Run("creates active profile", func(t *testing.T) {
		profile, err := NewProfile(dealerID, userID, "Ana", "ana@autos.cr", RoleAdmin)
		require.NoError(t, err)

		assert.Equal(t, dealerID, profile.DealerID)
		assert.Equal(t, userID, profile.UserID)
		assert.True(t, profile.IsAdmin())
		assert.Equal(t, ProfileStatusActive, profile.Status)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewProfile(dealerID, userID, "", "", Role("owner"))
		require.Error(t, err)
	})

	t.Run("rejects nil user id", func(t *testing.T) {
		_, err := NewProfile(dealerID, uuid.Nil, "", "", RoleUser)
		require.Error(t, err)
	})
}

func TestProfileAccess(t *testing.T) {
	dealerID := uuid.New()
	profile, err := NewProfile(dealerID, uuid.New(), "", "", RoleUser)
	require.NoError(t, err)

	assert.True(t, profile.CanAccess(dealerID))
	assert.False(t, profile.CanAccess(uuid.New()))

	require.NoError(t, profile.Disable())
	assert.False(t, profile.CanAccess(dealerID))

	require.NoError(t, profile.Enable())
	assert.True(t, profile.CanAccess(dealerID))
}

func TestProfileChangeRole(t *testing.T) {
	profile, err := NewProfile(uuid.New(), uuid.New(), "", "", RoleUser)
	require.NoError(t, err)

	require.NoError(t, profile.ChangeRole(RoleAdmin))
	assert.True(t, profile.IsAdmin())

	err = profile.ChangeRole(Role("superuser"))
	require.Error(t, err)
}
