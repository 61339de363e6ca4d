package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-api/internal/models"
)

func TestCanAccess(t *testing.T) {
	owner := models.User{ID: "u1", Role: models.RoleUser}
	stranger := models.User{ID: "u2", Role: models.RoleUser}
	coach := models.User{ID: "u3", Role: models.RoleCoach}
	admin := models.User{ID: "u4", Role: models.RoleAdmin}

	require.True(t, CanAccess("u1", owner))
	require.False(t, CanAccess("u1", stranger))
	require.False(t, CanAccess("u1", coach), "coach is not elevated")
	require.True(t, CanAccess("u1", admin))

	// system-owned records have no owner; only admins may touch them
	require.False(t, CanAccess("", owner))
	require.False(t, CanAccess("", coach))
	require.True(t, CanAccess("", admin))
}
