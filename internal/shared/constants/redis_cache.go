package constants

import "fmt"

// Redis Cache Configuration
// This file centralizes all Redis cache keys for the courtdesk gateway.
// Pattern: courtdesk:{module}:{operation}:{identifier}:{params?}
//
// TTL values live in config because operators tune them per deployment;
// key shapes are fixed here so every module builds them the same way.

const (
	CACHE_PREFIX = "courtdesk"
)

// ================== AGENDA MODULE ==================

// Agenda Cache Keys
const (
	// Raw upstream fetch results, keyed by date range
	CACHE_KEY_FETCH_RANGE = CACHE_PREFIX + ":agenda:fetch:range:" // + start:end

	// Per-session collapse flags for the agenda list
	CACHE_KEY_COLLAPSE_STATE = CACHE_PREFIX + ":agenda:collapse:session:" // + session-id
)

// ================== BOOKINGS MODULE ==================

// Booking Cache Keys
const (
	// Snapshot of one upstream record, written at fetch time so the
	// detail view never needs a second upstream lookup
	CACHE_KEY_BOOKING_SNAPSHOT = CACHE_PREFIX + ":bookings:snapshot:id:" // + booking-id

	// Per-session product selection for one booking's detail view
	CACHE_KEY_PRODUCT_SELECTION = CACHE_PREFIX + ":bookings:products:session:" // + session-id:booking-id

	// Per-session payment status override for one booking
	CACHE_KEY_PAYMENT_STATUS = CACHE_PREFIX + ":bookings:payment:session:" // + session-id:booking-id
)

// ================== HELPER FUNCTIONS ==================

// BuildFetchRangeKey constructs the cache key for a raw fetch of a date range
// Example: BuildFetchRangeKey("2025-01-01", "2025-01-07")
// -> "courtdesk:agenda:fetch:range:2025-01-01:2025-01-07"
func BuildFetchRangeKey(start, end string) string {
	return CACHE_KEY_FETCH_RANGE + start + ":" + end
}

func BuildCollapseStateKey(sessionID string) string {
	return CACHE_KEY_COLLAPSE_STATE + sessionID
}

func BuildBookingSnapshotKey(bookingID string) string {
	return CACHE_KEY_BOOKING_SNAPSHOT + bookingID
}

func BuildProductSelectionKey(sessionID, bookingID string) string {
	return fmt.Sprintf("%s%s:%s", CACHE_KEY_PRODUCT_SELECTION, sessionID, bookingID)
}

func BuildPaymentStatusKey(sessionID, bookingID string) string {
	return fmt.Sprintf("%s%s:%s", CACHE_KEY_PAYMENT_STATUS, sessionID, bookingID)
}
