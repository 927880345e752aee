//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+919876543210", true},
		{"919876543210", true},
		{"1234567", true},
		{"+1234567", true},
		{"123456", false},
		{"", false},
		{"+91 98765 43210", false},
		{"98765-43210", false},
		{"not-a-phone", false},
		{"+1234567890123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidPhone(tt.phone))
		})
	}
}
