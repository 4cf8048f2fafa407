package agenda

import "errors"

// ErrInvalidDateRange marks a request whose start/end values are not valid
// "YYYY-MM-DD" dates or are out of order.
var ErrInvalidDateRange = errors.New("invalid date range")
