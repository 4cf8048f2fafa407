package bookings

import (
	"strings"

	"courtdesk/internal/reva"
)

// Classification is the badge set derived from a booking's origin and flags.
// The same derivation feeds both the agenda row and the detail header, so it
// lives in exactly one place.
type Classification struct {
	IsAppBooking  bool `json:"is_app_booking"`
	IsAdminOrigin bool `json:"is_admin_origin"`
	IsRecurring   bool `json:"is_recurring"`
	IsConfirmed   bool `json:"is_confirmed"`
}

// Classify derives the badge booleans for one booking.
//
// Origin matching is case-insensitive. When the origin is missing entirely,
// "made through the app" falls back to whether any client identifier is
// present on the record.
func Classify(record reva.BookingRecord) Classification {
	origin := strings.ToLower(strings.TrimSpace(record.Origin))
	known := origin != ""

	appOrigin := strings.Contains(origin, "search") ||
		strings.Contains(origin, "favorite") ||
		origin == "app" || origin == "web" || origin == "mobile"

	adminOrigin := strings.Contains(origin, "admin") ||
		origin == "auto-extent" || origin == "manual"

	appBooking := appOrigin && !adminOrigin
	if !known {
		appBooking = record.HasClient()
	}

	modality := strings.ToLower(strings.TrimSpace(record.Modality))
	recurring := modality == "recurring" || modality == "fixed" ||
		(record.Recurring != nil && bool(*record.Recurring)) ||
		origin == "auto-extent"

	// Only an explicit false counts as confirmed; an absent pending flag
	// does not
	confirmed := record.Pending != nil && !bool(*record.Pending)

	return Classification{
		IsAppBooking:  appBooking,
		IsAdminOrigin: adminOrigin,
		IsRecurring:   recurring,
		IsConfirmed:   confirmed,
	}
}

// CreatedByLabel is the detail header caption for the booking channel.
func (c Classification) CreatedByLabel() string {
	if c.IsAppBooking {
		return "Reserva Online (App)"
	}
	return "Carga Administrativa"
}

// StatusLabel is the payment badge caption.
func (c Classification) StatusLabel() string {
	if c.IsConfirmed {
		return "CONFIRMADA"
	}
	return "PENDIENTE DE PAGO"
}
