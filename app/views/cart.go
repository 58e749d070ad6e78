package views

import (
	"github.com/manduca/menu/app/services"
	"github.com/manduca/menu/pkg/format"
)

// CartLine is one rendered cart row with its quantity-control states.
type CartLine struct {
	Key          string
	Name         string
	Price        string
	Quantity     int
	CanIncrement bool // false at max stock
	CanDecrement bool // false at one unit
}

// CartView is the whole cart sidebar: rows, totals and the header badge.
type CartView struct {
	Lines     []CartLine
	Subtotal  string
	Total     string
	Badge     int  // total item count
	ShowBadge bool // hidden at zero
	Empty     bool
	Summary   string // checkout header line
}

// Cart renders the cart from the service's current lines.
func Cart(cart *services.Cart) CartView {
	lines := cart.Lines()
	view := CartView{
		Badge: cart.TotalItems(),
		Empty: len(lines) == 0,
	}
	view.ShowBadge = view.Badge > 0

	for _, line := range lines {
		view.Lines = append(view.Lines, CartLine{
			Key:          line.Key,
			Name:         line.Name,
			Price:        format.Price(line.Price),
			Quantity:     line.Quantity,
			CanIncrement: line.Quantity < line.MaxStock,
			CanDecrement: line.Quantity > 1,
		})
	}

	subtotal := format.Price(cart.Subtotal())
	view.Subtotal = subtotal
	view.Total = subtotal // no shipping or taxes client-side
	view.Summary = format.Number(view.Badge) + " productos - Total " + subtotal
	return view
}
