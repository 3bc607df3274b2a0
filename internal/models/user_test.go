package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	u := &User{Email: "ada@example.com"}
	require.NoError(t, u.SetPassword("s3cret-pass"))

	assert.NotEqual(t, "s3cret-pass", u.Password)
	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestSanitizeDropsPassword(t *testing.T) {
	u := &User{FullName: "Ada", Email: "ada@example.com", Role: RolePatient}
	u.ID = "user-1"
	require.NoError(t, u.SetPassword("s3cret-pass"))

	s := u.Sanitize()
	assert.Equal(t, "user-1", s.ID)
	assert.Equal(t, "ada@example.com", s.Email)
	assert.Equal(t, RolePatient, s.Role)
}

func TestAppointmentStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusScheduled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}
