package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/validators"
)

// User entity: one registered policy holder identified by phone number.
type User struct {
	ID        string    `validate:"required,uuid4"`
	Name      string    `validate:"required,min=1,max=100"`
	Phone     string    `validate:"required,phoneValidation"`
	CreatedAt time.Time `validate:"required"`
	LastLogin time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("phoneValidation", validators.PhoneValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// LoginChallenge is the pending OTP state for a phone number.
type LoginChallenge struct {
	Phone     string
	Name      string
	Code      string
	ExpiresAt time.Time
}

// Expired reports whether the challenge can no longer be redeemed.
func (c *LoginChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Session is an authenticated user's session as minted after OTP verification.
type Session struct {
	Token     string
	UserID    string
	Name      string
	Phone     string
	ExpiresAt time.Time
}
