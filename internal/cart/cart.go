package cart

import "github.com/comandareal/comanda-backend/internal/product"

// Line is a product snapshot plus the quantity in the cart. There is at
// most one line per product id; repeated adds bump the quantity instead
// of appending. A quantity below one is not representable — removal is
// always explicit.
type Line struct {
	ProductID      int    `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// Add merges p into lines: an existing line gains one unit, otherwise a
// new line with quantity 1 is appended. The input slice is not mutated.
func Add(lines []Line, p product.Product) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)

	for i, ln := range out {
		if ln.ProductID == p.ID {
			out[i].Quantity++
			return out
		}
	}

	return append(out, Line{
		ProductID:      p.ID,
		Name:           p.Name,
		UnitPriceCents: p.PriceCents,
		Quantity:       1,
	})
}

// Remove drops the line with productID. Removing an absent product is a
// no-op, not an error.
func Remove(lines []Line, productID int) []Line {
	out := make([]Line, 0, len(lines))
	for _, ln := range lines {
		if ln.ProductID != productID {
			out = append(out, ln)
		}
	}
	return out
}

// Clear returns the empty cart.
func Clear() []Line {
	return []Line{}
}

// TotalCents sums unit price times quantity over all lines.
func TotalCents(lines []Line) int64 {
	var total int64
	for _, ln := range lines {
		total += ln.UnitPriceCents * int64(ln.Quantity)
	}
	return total
}

// ItemCount sums the quantities over all lines.
func ItemCount(lines []Line) int {
	count := 0
	for _, ln := range lines {
		count += ln.Quantity
	}
	return count
}
