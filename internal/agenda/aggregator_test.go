package agenda

import (
	"testing"

	"courtdesk/internal/reva"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, start, end, field string) reva.BookingRecord {
	return reva.BookingRecord{
		BookingID: reva.FlexString(id),
		StartTime: start,
		EndTime:   end,
		FieldName: field,
	}
}

func TestAggregate_EmptyAndNilInput(t *testing.T) {
	sections, err := Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, sections)

	sections, err = Aggregate([]reva.BookingRecord{})
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestAggregate_GroupsByDateInAscendingOrder(t *testing.T) {
	records := []reva.BookingRecord{
		record("3", "2025-01-03 10:00:00", "2025-01-03 11:00:00", "Cancha 1"),
		record("1", "2025-01-01 10:00:00", "2025-01-01 11:00:00", "Cancha 1"),
		record("2", "2025-01-02 10:00:00", "2025-01-02 11:00:00", "Cancha 1"),
	}

	sections, err := Aggregate(records)
	require.NoError(t, err)
	require.Len(t, sections, 3)

	assert.Equal(t, "2025-01-01", sections[0].Title)
	assert.Equal(t, "2025-01-02", sections[1].Title)
	assert.Equal(t, "2025-01-03", sections[2].Title)
}

func TestAggregate_SortsByTimeThenNaturalFieldName(t *testing.T) {
	records := []reva.BookingRecord{
		record("a", "2025-01-01 09:00:00", "2025-01-01 10:00:00", "Cancha 10"),
		record("b", "2025-01-01 09:00:00", "2025-01-01 10:00:00", "cancha 2"),
		record("c", "2025-01-01 08:00:00", "2025-01-01 09:00:00", "Cancha 5"),
	}

	sections, err := Aggregate(records)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	got := sections[0].Bookings
	require.Len(t, got, 3)
	// 08:00 first, then the two 09:00 entries with numeric-aware,
	// case-insensitive field ordering: "cancha 2" before "Cancha 10"
	assert.Equal(t, "c", string(got[0].BookingID))
	assert.Equal(t, "b", string(got[1].BookingID))
	assert.Equal(t, "a", string(got[2].BookingID))
}

func TestAggregate_MissingFieldNameSortsAsEmpty(t *testing.T) {
	records := []reva.BookingRecord{
		record("named", "2025-01-01 09:00:00", "2025-01-01 10:00:00", "Cancha 1"),
		record("anon", "2025-01-01 09:00:00", "2025-01-01 10:00:00", ""),
	}

	sections, err := Aggregate(records)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Bookings, 2)
	assert.Equal(t, "anon", string(sections[0].Bookings[0].BookingID))
}

func TestAggregate_CountsSumToInputLength(t *testing.T) {
	records := []reva.BookingRecord{
		record("1", "2025-01-01 09:00:00", "2025-01-01 10:00:00", "A"),
		record("2", "2025-01-01 10:00:00", "2025-01-01 11:00:00", "B"),
		record("3", "2025-01-02 09:00:00", "2025-01-02 10:00:00", "A"),
		record("4", "2025-01-03 09:00:00", "2025-01-03 10:00:00", "C"),
	}

	sections, err := Aggregate(records)
	require.NoError(t, err)

	total := 0
	for _, s := range sections {
		assert.Equal(t, len(s.Bookings), s.Count)
		total += s.Count
	}
	assert.Equal(t, len(records), total)
}

func TestAggregate_DoesNotMutateCallerSlice(t *testing.T) {
	records := []reva.BookingRecord{
		record("2", "2025-01-01 10:00:00", "2025-01-01 11:00:00", "B"),
		record("1", "2025-01-01 09:00:00", "2025-01-01 10:00:00", "A"),
	}

	_, err := Aggregate(records)
	require.NoError(t, err)

	assert.Equal(t, "2", string(records[0].BookingID))
	assert.Equal(t, "1", string(records[1].BookingID))
}

func TestAggregate_Idempotent(t *testing.T) {
	records := []reva.BookingRecord{
		record("2", "2025-01-01 10:00:00", "2025-01-01 11:00:00", "B"),
		record("1", "2025-01-01 09:00:00", "2025-01-01 10:00:00", "A"),
		record("3", "2025-01-02 09:00:00", "2025-01-02 10:00:00", "C"),
	}

	first, err := Aggregate(records)
	require.NoError(t, err)
	second, err := Aggregate(records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_MalformedStartTimeFailsLoudly(t *testing.T) {
	records := []reva.BookingRecord{
		record("1", "2025-01-01 09:00:00", "2025-01-01 10:00:00", "A"),
		record("2", "not a timestamp", "2025-01-01 10:00:00", "B"),
	}

	_, err := Aggregate(records)
	require.Error(t, err)
	assert.ErrorIs(t, err, reva.ErrMalformedTimestamp)
}

func TestAggregate_EndToEndScenario(t *testing.T) {
	// Three bookings on day one at 09:00, 08:00, 09:00 plus one on day two.
	records := []reva.BookingRecord{
		record("d1-0900-c2", "2025-03-10 09:00:00", "2025-03-10 10:00:00", "Cancha 2"),
		record("d1-0800", "2025-03-10 08:00:00", "2025-03-10 09:00:00", "Cancha 3"),
		record("d1-0900-c1", "2025-03-10 09:00:00", "2025-03-10 10:00:00", "Cancha 1"),
		record("d2", "2025-03-11 09:00:00", "2025-03-11 10:00:00", "Cancha 1"),
	}

	sections, err := Aggregate(records)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	assert.Equal(t, "2025-03-10", sections[0].Title)
	assert.Equal(t, 3, sections[0].Count)
	assert.Equal(t, "2025-03-11", sections[1].Title)
	assert.Equal(t, 1, sections[1].Count)

	dayOne := sections[0].Bookings
	assert.Equal(t, "d1-0800", string(dayOne[0].BookingID))
	assert.Equal(t, "d1-0900-c1", string(dayOne[1].BookingID))
	assert.Equal(t, "d1-0900-c2", string(dayOne[2].BookingID))
}
