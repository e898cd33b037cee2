package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("")
	assert.NoError(t, err)
	assert.Equal(t, RoleTrainee, r)

	r, err = ParseRole("trainer")
	assert.NoError(t, err)
	assert.Equal(t, RoleTrainer, r)

	_, err = ParseRole("superhero")
	assert.Error(t, err)
}

func TestPasswordResetToken_Usable(t *testing.T) {
	now := time.Now()

	fresh := &PasswordResetToken{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, fresh.Usable(now))
	assert.False(t, fresh.Expired(now))

	used := &PasswordResetToken{ExpiresAt: now.Add(time.Hour), IsUsed: true}
	assert.False(t, used.Usable(now))

	expired := &PasswordResetToken{ExpiresAt: now.Add(-time.Second)}
	assert.False(t, expired.Usable(now))
	assert.True(t, expired.Expired(now))

	// boundary: now == expires_at is no longer usable
	edge := &PasswordResetToken{ExpiresAt: now}
	assert.False(t, edge.Usable(now))
}
