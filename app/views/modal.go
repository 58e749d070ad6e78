package views

import (
	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/services"
	"github.com/manduca/menu/pkg/format"
	"github.com/manduca/menu/pkg/notify"
)

// Modal is the product detail overlay. While open it holds exactly one
// product and marks the page scroll as locked; Close restores it. Adding to
// the cart from the modal closes it immediately.
type Modal struct {
	cart *services.Cart

	product      *models.Product
	scrollLocked bool
}

func NewModal(cart *services.Cart) *Modal {
	return &Modal{cart: cart}
}

// Open shows the overlay for product. A missing product reference signals an
// error and leaves the modal closed.
func (m *Modal) Open(product *models.Product) bool {
	if product == nil {
		notify.Push(notify.Error, "Error", "Producto no encontrado")
		return false
	}
	m.product = product
	m.scrollLocked = true
	return true
}

// Close hides the overlay and restores scrolling. Backs the close button,
// the overlay click, and the Escape key.
func (m *Modal) Close() {
	m.product = nil
	m.scrollLocked = false
}

// IsOpen reports the overlay state.
func (m *Modal) IsOpen() bool { return m.product != nil }

// ScrollLocked reports whether the underlying page scroll is held.
func (m *Modal) ScrollLocked() bool { return m.scrollLocked }

// AddToCart delegates to the cart and closes the overlay regardless of
// whether the addition was accepted.
func (m *Modal) AddToCart() {
	if m.product == nil {
		return
	}
	m.cart.Add(m.product, 1)
	m.Close()
}

// Detail is the rendered modal body.
type Detail struct {
	Category    string
	Name        string
	Description string
	Price       string
	OldPrice    string
	Unit        string
}

// View renders the open product; the bool is false when the modal is closed.
func (m *Modal) View() (Detail, bool) {
	if m.product == nil {
		return Detail{}, false
	}
	p := m.product
	detail := Detail{
		Category:    p.CategoryName,
		Name:        p.Name,
		Description: p.Description,
		Price:       format.Price(p.EffectivePrice()),
		Unit:        p.Unit,
	}
	if p.HasDiscount() {
		detail.OldPrice = format.Price(p.Price)
	}
	return detail, true
}
