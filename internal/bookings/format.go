package bookings

import (
	"strconv"
	"strings"

	"github.com/go-playground/locales/es_PY"
)

var paraguay = es_PY.New()

// FormatHours renders a duration for display: one decimal place, with a
// trailing ".0" suppressed so 1.5 stays "1.5" but 2.0 becomes "2".
func FormatHours(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatGuaranies renders a monetary amount with es-PY digit grouping and no
// decimals; Guaranies has no subunit.
func FormatGuaranies(amount float64) string {
	return paraguay.FmtNumber(amount, 0)
}
