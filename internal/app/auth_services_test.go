//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/session"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/testutil"
)

func testAuthSettings() *config.AuthSettings {
	return &config.AuthSettings{
		SessionSecret:     "0123456789abcdef0123456789abcdef",
		Issuer:            "claim-guard",
		Audience:          "claim-guard-web",
		SessionTTLMinutes: 60,
		OtpTTLSeconds:     300,
		ExposeOtp:         true,
	}
}

func setupAuthService(t *testing.T, userRepo users.UserRepository) users.AuthService {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	settings := testAuthSettings()

	sessions, err := session.NewManager(settings)
	require.NoError(t, err)

	svc, err := NewAuthService(userRepo, NewMemoryOtpStore(), NewLogSmsSender(log), sessions, settings, log)
	require.NoError(t, err)
	return svc
}

func TestAuthService_Login_IssuesCode(t *testing.T) {
	svc := setupAuthService(t, &MockUserRepository{})

	code, err := svc.Login(context.Background(), "Asha Verma", "+919876543210")
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestAuthService_Login_RejectsInvalidInput(t *testing.T) {
	svc := setupAuthService(t, &MockUserRepository{})

	_, err := svc.Login(context.Background(), "", "+919876543210")
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), "Asha", "not-a-phone")
	assert.Error(t, err)
}

func TestAuthService_VerifyFlow(t *testing.T) {
	userRepo := &MockUserRepository{}
	userRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(u *users.User) bool {
		return u.Phone == "+919876543210" && u.Name == "Asha Verma"
	})).Return(&users.User{
		ID:        "b2c8e0f0-1111-4222-8333-444455556666",
		Name:      "Asha Verma",
		Phone:     "+919876543210",
		CreatedAt: time.Now(),
		LastLogin: time.Now(),
	}, nil)

	svc := setupAuthService(t, userRepo)

	code, err := svc.Login(context.Background(), "Asha Verma", "+919876543210")
	require.NoError(t, err)

	sess, err := svc.Verify(context.Background(), "+919876543210", code)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "b2c8e0f0-1111-4222-8333-444455556666", sess.UserID)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	userRepo.AssertExpectations(t)
}

func TestAuthService_Verify_WrongCode(t *testing.T) {
	svc := setupAuthService(t, &MockUserRepository{})

	code, err := svc.Login(context.Background(), "Asha", "+919876543210")
	require.NoError(t, err)

	wrong := "999999"
	if code == wrong {
		wrong = "000000"
	}

	_, err = svc.Verify(context.Background(), "+919876543210", wrong)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect")

	// The challenge is consumed on first attempt
	_, err = svc.Verify(context.Background(), "+919876543210", wrong)
	assert.Contains(t, err.Error(), "no pending verification")
}

func TestAuthService_Verify_NoChallenge(t *testing.T) {
	svc := setupAuthService(t, &MockUserRepository{})

	_, err := svc.Verify(context.Background(), "+910000000000", "123456")
	assert.Error(t, err)
}

func TestMemoryOtpStore_TakeRemoves(t *testing.T) {
	store := NewMemoryOtpStore()

	store.Put(&users.LoginChallenge{Phone: "+911234567890", Code: "111111", ExpiresAt: time.Now().Add(time.Minute)})

	challenge, ok := store.Take("+911234567890")
	require.True(t, ok)
	assert.Equal(t, "111111", challenge.Code)

	_, ok = store.Take("+911234567890")
	assert.False(t, ok)
}
