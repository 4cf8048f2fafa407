package agenda

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales/es"
)

// dateKeyLayout is the section title format.
const dateKeyLayout = "2006-01-02"

var spanish = es.New()

// SectionLabel derives the sticky header text for a section date:
// "MARTES 6 DE ENERO", prefixed with "HOY," or "MAÑANA," when the date is
// the current or the next calendar day. Pure in (dateKey, now) so tests can
// pin the clock.
func SectionLabel(dateKey string, now time.Time) (string, error) {
	date, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return "", fmt.Errorf("section date %q: %w", dateKey, err)
	}

	label := fmt.Sprintf("%s %d DE %s",
		spanish.WeekdayWide(date.Weekday()),
		date.Day(),
		spanish.MonthWide(date.Month()),
	)
	label = strings.ToUpper(label)

	switch dateKey {
	case now.Format(dateKeyLayout):
		label = "HOY, " + label
	case now.AddDate(0, 0, 1).Format(dateKeyLayout):
		label = "MAÑANA, " + label
	}

	return label, nil
}

// CountLabel renders the per-section booking count badge.
func CountLabel(count int) string {
	if count == 1 {
		return "1 Reserva"
	}
	return fmt.Sprintf("%d Reservas", count)
}
