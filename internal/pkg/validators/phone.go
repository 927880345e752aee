// Package validators contains custom validator/v10 validation functions
// registered on domain entities.
package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts an optional leading + followed by 7 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// PhoneValidation validates that a field holds a plausible phone number.
func PhoneValidation(fl validator.FieldLevel) bool {
	return ValidPhone(fl.Field().String())
}

// ValidPhone reports whether s is a plausible phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
