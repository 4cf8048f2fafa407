package bookings

import "errors"

// ErrBookingNotFound means no snapshot of the booking exists, either because
// it was never part of a fetched agenda or because its snapshot expired.
var ErrBookingNotFound = errors.New("booking not found")
