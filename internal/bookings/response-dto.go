package bookings

// DetailResponse is the full payload behind GET /bookings/:id.
type DetailResponse struct {
	BookingID     string          `json:"booking_id"`
	ClientName    string          `json:"client_name"`
	CreatedBy     string          `json:"created_by"`
	Badges        Classification  `json:"badges"`
	StatusLabel   string          `json:"status_label"`
	FieldName     string          `json:"field_name"`
	SportName     string          `json:"sport_name,omitempty"`
	Establishment string          `json:"establishment"`
	PictureURL    string          `json:"picture_url,omitempty"`
	Date          string          `json:"date"`
	StartClock    string          `json:"start_clock"`
	EndClock      string          `json:"end_clock"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentLabel  string          `json:"payment_label"`
	Products      []ProductLine   `json:"products"`
	Pricing       PricingResponse `json:"pricing"`
}

// PricingResponse carries the breakdown values plus their display renderings
// so every client formats money and hours identically.
type PricingResponse struct {
	Hours             float64 `json:"hours"`
	HoursLabel        string  `json:"hours_label"`
	HourlyRate        float64 `json:"hourly_rate"`
	HourlyRateLabel   string  `json:"hourly_rate_label"`
	BaseSubtotal      float64 `json:"base_subtotal"`
	BaseSubtotalLabel string  `json:"base_subtotal_label"`
	ExtrasTotal       float64 `json:"extras_total"`
	ExtrasTotalLabel  string  `json:"extras_total_label"`
	GrandTotal        float64 `json:"grand_total"`
	GrandTotalLabel   string  `json:"grand_total_label"`
}

func toPricingResponse(b Breakdown) PricingResponse {
	return PricingResponse{
		Hours:             b.Hours,
		HoursLabel:        FormatHours(b.Hours),
		HourlyRate:        b.HourlyRate,
		HourlyRateLabel:   FormatGuaranies(b.HourlyRate),
		BaseSubtotal:      b.BaseSubtotal,
		BaseSubtotalLabel: FormatGuaranies(b.BaseSubtotal),
		ExtrasTotal:       b.ExtrasTotal,
		ExtrasTotalLabel:  FormatGuaranies(b.ExtrasTotal),
		GrandTotal:        b.GrandTotal,
		GrandTotalLabel:   FormatGuaranies(b.GrandTotal),
	}
}
