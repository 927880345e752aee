//go:build unit
// +build unit

package users

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *User {
	return &User{
		ID:        uuid.New().String(),
		Name:      "Asha Verma",
		Phone:     "+919876543210",
		CreatedAt: time.Now(),
	}
}

func TestUserValidation(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		require.NoError(t, validUser().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		u := validUser()
		u.Name = ""
		require.Error(t, u.Validate())
	})

	t.Run("phone with letters", func(t *testing.T) {
		u := validUser()
		u.Phone = "98765abcde"
		require.Error(t, u.Validate())
	})

	t.Run("phone too short", func(t *testing.T) {
		u := validUser()
		u.Phone = "12345"
		require.Error(t, u.Validate())
	})

	t.Run("phone without plus", func(t *testing.T) {
		u := validUser()
		u.Phone = "9876543210"
		require.NoError(t, u.Validate())
	})
}

func TestLoginChallengeExpiry(t *testing.T) {
	now := time.Now()
	c := &LoginChallenge{Phone: "+919876543210", Code: "482913", ExpiresAt: now.Add(5 * time.Minute)}

	assert.False(t, c.Expired(now))
	assert.False(t, c.Expired(now.Add(4*time.Minute)))
	assert.True(t, c.Expired(now.Add(6*time.Minute)))
}
