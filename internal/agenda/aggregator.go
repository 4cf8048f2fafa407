package agenda

import (
	"sort"

	"courtdesk/internal/reva"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Section is one day's worth of bookings, the unit of the collapsible list.
// Sections are rebuilt from scratch on every fetch and never mutated in place.
type Section struct {
	Title    string              // date key, "YYYY-MM-DD"
	Bookings []reva.BookingRecord
	Count    int
}

// Aggregate turns a flat booking list into date-grouped, sorted sections.
//
// Ordering is total and deterministic: records sort by time-of-day first
// (lexicographic on the fixed-width "HH:mm:ss" portion), then by field name
// with case-insensitive, numeric-aware comparison so "Cancha 2" comes before
// "Cancha 10". Sections come out in ascending date order. The caller's slice
// is never reordered.
//
// Every record must carry a parseable start_time; a malformed one fails the
// whole aggregation with a *reva.MalformedTimestampError.
func Aggregate(records []reva.BookingRecord) ([]Section, error) {
	if len(records) == 0 {
		return []Section{}, nil
	}

	for _, r := range records {
		if _, err := r.Start(); err != nil {
			return nil, err
		}
	}

	sorted := make([]reva.BookingRecord, len(records))
	copy(sorted, records)

	// Numeric so court numbers compare as numbers, Loose so case and
	// accents are ignored, matching how the venue names its courts.
	fieldOrder := collate.New(language.Spanish, collate.Numeric, collate.Loose)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].StartClock(), sorted[j].StartClock()
		if ti != tj {
			return ti < tj
		}
		return fieldOrder.CompareString(sorted[i].FieldName, sorted[j].FieldName) < 0
	})

	groups := make(map[string][]reva.BookingRecord)
	for _, r := range sorted {
		key := r.StartDateKey()
		groups[key] = append(groups[key], r)
	}

	// Ascending lexicographic date keys equal chronological order for
	// the "YYYY-MM-DD" layout.
	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	sections := make([]Section, 0, len(dates))
	for _, date := range dates {
		sections = append(sections, Section{
			Title:    date,
			Bookings: groups[date],
			Count:    len(groups[date]),
		})
	}

	return sections, nil
}
