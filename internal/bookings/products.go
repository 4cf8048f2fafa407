package bookings

// ProductLine is one extras-catalog entry with the quantity the operator has
// currently selected. Lines are never removed from the catalog; deselecting
// a product just takes its quantity back to zero.
type ProductLine struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// DefaultCatalog returns the fixed extras inventory with nothing selected.
func DefaultCatalog() []ProductLine {
	return []ProductLine{
		{ID: 1, Name: "Agua 500ml", UnitPrice: 5000},
		{ID: 2, Name: "Gatorade", UnitPrice: 12000},
		{ID: 3, Name: "Alquiler Paleta", UnitPrice: 20000},
		{ID: 4, Name: "Tubo Pelotas", UnitPrice: 45000},
	}
}

// SetQuantity applies a quantity delta to one line and returns a new slice;
// the input is never mutated. Quantities clamp at zero no matter how large a
// negative delta arrives. Unknown ids leave the catalog unchanged.
func SetQuantity(lines []ProductLine, id, delta int) []ProductLine {
	next := make([]ProductLine, len(lines))
	copy(next, lines)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		q := next[i].Quantity + delta
		if q < 0 {
			q = 0
		}
		next[i].Quantity = q
	}
	return next
}

// ExtrasTotal sums unit price times quantity across the selection.
func ExtrasTotal(lines []ProductLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
