//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
)

func TestUserSqliteRepository_Upsert_Creates(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	created, err := ctx.UserRepo.Upsert(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.ID)

	fetched, err := ctx.UserRepo.GetByPhone(context.Background(), user.Phone)
	require.NoError(t, err)
	assert.Equal(t, user.Name, fetched.Name)
}

func TestUserSqliteRepository_Upsert_RefreshesExisting(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	first, err := ctx.UserRepo.Upsert(context.Background(), user)
	require.NoError(t, err)

	// Same phone, new name: must reuse the existing row
	again := CreateTestUser(t)
	again.Name = "Renamed User"
	again.LastLogin = time.Now().Add(time.Hour)

	second, err := ctx.UserRepo.Upsert(context.Background(), again)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Renamed User", second.Name)
}

func TestUserSqliteRepository_Upsert_InvalidUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.Upsert(context.Background(), &users.User{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_GetByPhone_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByPhone(context.Background(), "+910000000000")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
