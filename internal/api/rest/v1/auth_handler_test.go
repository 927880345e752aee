//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
)

func jsonRequest(t *testing.T, method, url, body string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return w, c
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 300)

	mockAuthService.On("Login", mock.Anything, "Asha Verma", "+919876543210").Return("123456", nil)

	w, c := jsonRequest(t, "POST", "/auth/login", `{"name":"Asha Verma","phone":"+919876543210"}`)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "verification code sent")
	assert.Contains(t, w.Body.String(), "123456")
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Login_HidesCodeWhenNotExposed(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 300)

	mockAuthService.On("Login", mock.Anything, "Asha", "+919876543210").Return("", nil)

	w, c := jsonRequest(t, "POST", "/auth/login", `{"name":"Asha","phone":"+919876543210"}`)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "dev_code")
}

func TestAuthHandler_Login_MissingFields_Error(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService), 300)

	w, c := jsonRequest(t, "POST", "/auth/login", `{"name":"Asha"}`)

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name and phone are required")
}

func TestAuthHandler_Login_ServiceError(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 300)

	mockAuthService.On("Login", mock.Anything, "Asha", "not-a-phone").Return("", errors.New("invalid phone number"))

	w, c := jsonRequest(t, "POST", "/auth/login", `{"name":"Asha","phone":"not-a-phone"}`)

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid phone number")
}

func TestAuthHandler_Verify_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 300)

	sess := &users.Session{
		Token:     "signed-token",
		UserID:    "b2c8e0f0-1111-4222-8333-444455556666",
		Name:      "Asha Verma",
		Phone:     "+919876543210",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	mockAuthService.On("Verify", mock.Anything, "+919876543210", "123456").Return(sess, nil)

	w, c := jsonRequest(t, "POST", "/auth/verify", `{"phone":"+919876543210","code":"123456"}`)

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), sess.UserID)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "cg_session=signed-token")
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Verify_WrongCode_Error(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 300)

	mockAuthService.On("Verify", mock.Anything, "+919876543210", "000000").
		Return(nil, errors.New("the code is incorrect"))

	w, c := jsonRequest(t, "POST", "/auth/verify", `{"phone":"+919876543210","code":"000000"}`)

	handler.Verify(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect")
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService), 300)

	w, c := jsonRequest(t, "POST", "/auth/logout", `{}`)

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "logged out")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "cg_session=;")
}
