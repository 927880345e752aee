package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/session"
)

// AuthHandler defines the interface for handling the OTP login flow
type AuthHandler interface {
	Login(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	authService   users.AuthService
	otpTTLSeconds int
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, otpTTLSeconds int) AuthHandler {
	return &authHandler{
		authService:   authService,
		otpTTLSeconds: otpTTLSeconds,
	}
}

// Login starts the OTP flow by dispatching a one-time code to the phone number
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorMessage := "name and phone are required"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	code, err := handler.authService.Login(ctx, request.Name, request.Phone)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("login failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	response := LoginResponse{
		Message:       "verification code sent",
		OtpTTLSeconds: handler.otpTTLSeconds,
	}
	if code != "" {
		response.DevCode = &code
	}

	ctx.JSON(http.StatusOK, response)
}

// Verify redeems a one-time code and sets the session cookie
func (handler *authHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorMessage := "phone and code are required"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	sess, err := handler.authService.Verify(ctx, request.Phone, request.Code)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("verification failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusUnauthorized, errorResponse)
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	ctx.SetCookie(session.CookieName, sess.Token, maxAge, "/", "", false, true)

	ctx.JSON(http.StatusOK, SessionResponse{
		UserID:    sess.UserID,
		Name:      sess.Name,
		Phone:     sess.Phone,
		ExpiresAt: sess.ExpiresAt,
	})
}

// Logout clears the session cookie
func (handler *authHandler) Logout(ctx *gin.Context) {
	ctx.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	var infoResponse InfoResponse
	infoMessage := "logged out"
	infoResponse.Message = &infoMessage
	ctx.JSON(http.StatusOK, infoResponse)
}
