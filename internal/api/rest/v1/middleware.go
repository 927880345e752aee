package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/session"
)

// userIDKey is the gin context key the session middleware stores the
// authenticated user ID under.
const userIDKey = "userID"

// SessionAuth verifies the session cookie and stores the authenticated user
// ID in the request context. Requests without a valid session get a 401.
func SessionAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(session.CookieName)
		if err != nil {
			var errorResponse ErrorResponse
			errorMessage := "authentication required"
			errorResponse.Message = &errorMessage
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			var errorResponse ErrorResponse
			errorMessage := "session is invalid or expired"
			errorResponse.Message = &errorMessage
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		ctx.Set(userIDKey, claims.UserID)
		ctx.Next()
	}
}

// userIDFromContext returns the authenticated user ID set by SessionAuth.
func userIDFromContext(ctx *gin.Context) string {
	return ctx.GetString(userIDKey)
}
