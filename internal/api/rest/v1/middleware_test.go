//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/session"
)

func testSessionManager(t *testing.T) *session.Manager {
	t.Helper()

	manager, err := session.NewManager(&config.AuthSettings{
		SessionSecret:     "0123456789abcdef0123456789abcdef",
		Issuer:            "claim-guard",
		Audience:          "claim-guard-web",
		SessionTTLMinutes: 60,
		OtpTTLSeconds:     300,
	})
	require.NoError(t, err)
	return manager
}

func protectedRouter(t *testing.T, sessions *session.Manager) *gin.Engine {
	t.Helper()

	r := gin.New()
	r.GET("/protected", SessionAuth(sessions), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, userIDFromContext(ctx))
	})
	return r
}

func TestSessionAuth_ValidCookie(t *testing.T) {
	sessions := testSessionManager(t)
	r := protectedRouter(t, sessions)

	token, _, err := sessions.Mint("b2c8e0f0-1111-4222-8333-444455556666", "Asha", "+919876543210")
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b2c8e0f0-1111-4222-8333-444455556666", w.Body.String())
}

func TestSessionAuth_MissingCookie(t *testing.T) {
	r := protectedRouter(t, testSessionManager(t))

	req, _ := http.NewRequest("GET", "/protected", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	r := protectedRouter(t, testSessionManager(t))

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-token"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired")
}
