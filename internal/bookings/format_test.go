package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.5", FormatHours(1.5))
	assert.Equal(t, "2", FormatHours(2))
	assert.Equal(t, "0", FormatHours(0))
	assert.Equal(t, "0.5", FormatHours(0.5))
}

func TestFormatGuaranies(t *testing.T) {
	assert.Equal(t, "90.000", FormatGuaranies(90000))
	assert.Equal(t, "1.234.567", FormatGuaranies(1234567))
	assert.Equal(t, "500", FormatGuaranies(500))
	assert.Equal(t, "0", FormatGuaranies(0))
}
