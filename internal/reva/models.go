package reva

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the fixed wire format for booking timestamps.
// Values are naive local venue time, no timezone marker.
const TimestampLayout = "2006-01-02 15:04:05"

// BookingRecord is one reservation as the upstream API ships it.
// The upstream payload is loosely typed: money arrives as a number or a
// numeric string, booleans as real booleans or "true"/"false" strings, and
// several fields have aliases. All of that is resolved here, at the boundary,
// so the rest of the service works with one well-defined shape.
type BookingRecord struct {
	BookingID     FlexString  `json:"booking_id"`
	StartTime     string      `json:"start_time"`
	EndTime       string      `json:"end_time"`
	FieldName     string      `json:"field_name"`
	Establishment string      `json:"establishment_public_name"`
	SportName     string      `json:"sport_name"`
	Price         *FlexAmount `json:"price"`
	FieldAmount   *FlexAmount `json:"field_amount"`
	Origin        string      `json:"origin"`
	Modality      string      `json:"modality"`
	Recurring     *FlexBool   `json:"recurring"`
	Pending       *FlexBool   `json:"pending"`
	PaymentStatus string      `json:"payment_status"`
	UserID        FlexString  `json:"user_id"`
	Name          string      `json:"name"`
	UserName      string      `json:"user_name"`
	PictureURL    string      `json:"field_picture_url"`
}

// Amount resolves the booking's total price. Fallback order: price, then
// field_amount, then zero. The value covers the whole duration, it is not a
// per-hour rate.
func (r BookingRecord) Amount() float64 {
	if r.Price != nil {
		return float64(*r.Price)
	}
	if r.FieldAmount != nil {
		return float64(*r.FieldAmount)
	}
	return 0
}

// ClientName resolves the client identity aliases. Empty means the booking
// carries no client name at all.
func (r BookingRecord) ClientName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.UserName
}

// HasClient reports whether any client identifier is present.
func (r BookingRecord) HasClient() bool {
	return r.UserID != "" || r.ClientName() != ""
}

// StartDateKey returns the calendar-date portion of start_time
// ("YYYY-MM-DD"). The layout is fixed-width and zero-padded, so the key is
// safe to compare lexicographically.
func (r BookingRecord) StartDateKey() string {
	date, _, _ := strings.Cut(r.StartTime, " ")
	return date
}

// StartClock returns the time-of-day portion of start_time ("HH:mm:ss").
func (r BookingRecord) StartClock() string {
	_, clock, _ := strings.Cut(r.StartTime, " ")
	return clock
}

// EndClock returns the time-of-day portion of end_time.
func (r BookingRecord) EndClock() string {
	_, clock, _ := strings.Cut(r.EndTime, " ")
	return clock
}

// Start parses start_time under the strict timestamp contract.
func (r BookingRecord) Start() (time.Time, error) {
	return ParseTimestamp(r.StartTime)
}

// End parses end_time under the strict timestamp contract.
func (r BookingRecord) End() (time.Time, error) {
	return ParseTimestamp(r.EndTime)
}

// ParseTimestamp parses a "YYYY-MM-DD HH:mm:ss" value. Malformed input
// fails loudly with a *MalformedTimestampError rather than producing a
// zero time silently.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, &MalformedTimestampError{Value: s}
	}
	return t, nil
}

// FlexString decodes a JSON string or number into a string. Upstream ids
// switch between the two depending on which backend produced the record.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	*s = FlexString(n.String())
	return nil
}

// FlexAmount decodes a JSON number or numeric string into a float64.
// Money is in Guaranies, the venue currency, which has no subunit.
type FlexAmount float64

func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		if v == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("flex amount %q: %w", v, err)
		}
		*a = FlexAmount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("flex amount: %w", err)
	}
	*a = FlexAmount(f)
	return nil
}

// FlexBool decodes a JSON bool, "true"/"false" string, or 0/1 number.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "", "null":
		*b = false
		return nil
	case "true", `"true"`, "1", `"1"`:
		*b = true
		return nil
	case "false", `"false"`, "0", `"0"`:
		*b = false
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("flex bool %s: %w", data, err)
	}
	*b = FlexBool(v)
	return nil
}
