package bookings

import (
	"courtdesk/internal/reva"
)

// Breakdown is the derived cost view for one booking: how long it runs, what
// that works out to per hour, and what the extras add on top.
type Breakdown struct {
	Hours        float64 `json:"hours"`
	HourlyRate   float64 `json:"hourly_rate"`
	BaseSubtotal float64 `json:"base_subtotal"`
	ExtrasTotal  float64 `json:"extras_total"`
	GrandTotal   float64 `json:"grand_total"`
}

// ComputeBreakdown derives the price breakdown for a booking plus the
// operator's current product selection.
//
// The record's price field is the total for the whole slot, not a per-hour
// rate; the hourly rate is derived backwards from it. When either timestamp
// is missing the duration is zero and the rate falls back to the subtotal,
// so there is never a division by zero. A present-but-malformed timestamp
// fails loudly instead.
func ComputeBreakdown(record reva.BookingRecord, products []ProductLine) (Breakdown, error) {
	base := record.Amount()

	hours := 0.0
	if record.StartTime != "" && record.EndTime != "" {
		start, err := record.Start()
		if err != nil {
			return Breakdown{}, err
		}
		end, err := record.End()
		if err != nil {
			return Breakdown{}, err
		}
		hours = end.Sub(start).Hours()
	}

	rate := base
	if hours > 0 {
		rate = base / hours
	}

	extras := ExtrasTotal(products)

	return Breakdown{
		Hours:        hours,
		HourlyRate:   rate,
		BaseSubtotal: base,
		ExtrasTotal:  extras,
		GrandTotal:   base + extras,
	}, nil
}
