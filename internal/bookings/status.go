package bookings

// PaymentStatus is the operator-facing paid/pending toggle on the detail
// footer. It never propagates upstream; it lives only in session state.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// Toggled flips between paid and pending.
func (s PaymentStatus) Toggled() PaymentStatus {
	if s == PaymentStatusPaid {
		return PaymentStatusPending
	}
	return PaymentStatusPaid
}

// ActionLabel is the caption on the detail footer's payment button.
func (s PaymentStatus) ActionLabel() string {
	if s == PaymentStatusPaid {
		return "COBRADO EN EFECTIVO"
	}
	return "COBRAR EFECTIVO"
}
