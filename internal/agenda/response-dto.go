package agenda

import "courtdesk/internal/bookings"

// AgendaResponse is the full payload behind GET /agenda.
type AgendaResponse struct {
	VenueName string            `json:"venue_name"`
	Start     string            `json:"start"`
	End       string            `json:"end"`
	Degraded  bool              `json:"degraded"` // upstream fetch failed, fallback view
	Sections  []SectionResponse `json:"sections"`
}

// SectionResponse is one collapsible day of the agenda.
type SectionResponse struct {
	Title      string       `json:"title"`
	Label      string       `json:"label"`
	Count      int          `json:"count"`
	CountLabel string       `json:"count_label"`
	Collapsed  bool         `json:"collapsed"`
	Bookings   []BookingRow `json:"bookings"`
}

// BookingRow is one agenda list entry.
type BookingRow struct {
	BookingID     string                  `json:"booking_id"`
	Date          string                  `json:"date"`
	StartClock    string                  `json:"start_clock"`
	EndClock      string                  `json:"end_clock"`
	FieldName     string                  `json:"field_name"`
	Establishment string                  `json:"establishment"`
	ClientName    string                  `json:"client_name,omitempty"`
	PictureURL    string                  `json:"picture_url,omitempty"`
	Badges        bookings.Classification `json:"badges"`
}
