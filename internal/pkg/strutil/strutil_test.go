//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 42, ConvertToInt("42"))
	assert.Equal(t, 0, ConvertToInt("not-a-number"))
	assert.Equal(t, 0, ConvertToInt(""))
}

func TestConvertToInt64(t *testing.T) {
	assert.Equal(t, int64(16777216), ConvertToInt64("16777216"))
	assert.Equal(t, int64(0), ConvertToInt64("16MB"))
}

func TestConvertToFloat64(t *testing.T) {
	assert.Equal(t, 500000.0, ConvertToFloat64("500000"))
	assert.Equal(t, 0.0, ConvertToFloat64("five lakh"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "waiting per...", Truncate("waiting period of 2 years", 11))
}
