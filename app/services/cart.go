// Package services holds the state-owning components of the menu client:
// the catalogue (products, categories, daily dishes, filtering), the cart,
// and the checkout flow. Services mutate the shared application state and
// signal the user through the notify bus; they never render anything.
package services

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/state"
	"github.com/manduca/menu/pkg/logger"
	"github.com/manduca/menu/pkg/notify"
	"github.com/manduca/menu/pkg/storage"
)

// Local-storage keys, fixed identifiers shared with the original front end.
const (
	cartStorageKey     = "manduca_cart"
	customerNameKey    = "manduca_customer_name"
	deliveryAddressKey = "manduca_delivery_address"
)

// defaultMaxStock caps lines whose product never reported a stock figure.
const defaultMaxStock = 999

// ConfirmFunc asks the user a yes/no question, e.g. before emptying the cart.
type ConfirmFunc func(prompt string) bool

// Cart owns the cart portion of the application state: merge-by-key adds,
// stock-bounded quantity updates, removal, and persistence after every
// mutation.
type Cart struct {
	state   *state.App
	store   *storage.Store
	confirm ConfirmFunc
}

// NewCart builds the cart service and rehydrates any persisted cart.
// confirm guards Clear; pass nil to skip the confirmation step.
func NewCart(st *state.App, store *storage.Store, confirm ConfirmFunc) *Cart {
	c := &Cart{state: st, store: store, confirm: confirm}
	c.loadFromStorage()
	return c
}

// loadFromStorage rehydrates the cart, re-deriving key and max_stock
// defensively. Malformed JSON discards the cart wholesale rather than
// recovering pieces of it.
func (c *Cart) loadFromStorage() {
	raw, ok := c.store.Get(cartStorageKey)
	if !ok {
		return
	}

	var lines []models.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		logger.Error("cart: discarding unreadable persisted cart", "error", err)
		c.state.Cart = nil
		return
	}

	for i := range lines {
		line := &lines[i]
		if line.Type != models.TypeDaily {
			line.Type = models.TypeProduct
		}
		line.Key = line.ItemKey().String()
		if line.MaxStock <= 0 {
			if line.Stock > 0 {
				line.MaxStock = line.Stock
			} else {
				line.MaxStock = defaultMaxStock
			}
		}
	}
	c.state.Cart = lines
}

func (c *Cart) save() {
	raw, err := json.Marshal(c.state.Cart)
	if err != nil {
		logger.Error("cart: marshal", "error", err)
		return
	}
	if err := c.store.Put(cartStorageKey, raw); err != nil {
		logger.Error("cart: persist", "error", err)
	}
}

// Add puts qty units of product into the cart, merging into an existing line
// when the tagged key already exists. The addition is rejected with a stock
// warning when it would push the line past its max stock. Returns true when
// the cart changed.
func (c *Cart) Add(product *models.Product, qty int) bool {
	if product == nil {
		notify.Push(notify.Error, "Error", "Producto no encontrado")
		return false
	}
	if qty < 1 {
		qty = 1
	}

	key := product.Key()
	if existing := c.state.CartLine(key); existing != nil {
		if existing.Quantity+qty > existing.MaxStock {
			c.stockWarning(existing.MaxStock)
			return false
		}
		existing.Quantity += qty
	} else {
		max := product.Stock
		if max < 0 {
			// Negative stock means the backend never reported one.
			max = defaultMaxStock
		}
		if qty > max {
			c.stockWarning(max)
			return false
		}
		c.state.Cart = append(c.state.Cart, models.Line{
			Key:      key.String(),
			ID:       product.ID,
			Type:     product.Type,
			Name:     product.Name,
			Price:    product.Price,
			Category: product.CategoryName,
			Quantity: qty,
			MaxStock: max,
		})
	}

	c.save()
	notify.Push(notify.Success, "Producto agregado", product.Name+" agregado al carrito")
	return true
}

// UpdateQuantity sets a line to n units. Zero or less removes the line;
// exceeding max stock warns and leaves the cart unchanged.
func (c *Cart) UpdateQuantity(key models.ItemKey, n int) {
	line := c.state.CartLine(key)
	if line == nil {
		return
	}

	if n <= 0 {
		c.Remove(key)
		return
	}

	if n > line.MaxStock {
		c.stockWarning(line.MaxStock)
		return
	}

	line.Quantity = n
	c.save()
}

// Increment adds one unit to a line.
func (c *Cart) Increment(key models.ItemKey) {
	if line := c.state.CartLine(key); line != nil {
		c.UpdateQuantity(key, line.Quantity+1)
	}
}

// Decrement removes one unit from a line; the line disappears at zero.
func (c *Cart) Decrement(key models.ItemKey) {
	if line := c.state.CartLine(key); line != nil {
		c.UpdateQuantity(key, line.Quantity-1)
	}
}

// Remove deletes a line outright.
func (c *Cart) Remove(key models.ItemKey) {
	// Copy the line before compacting: the in-place shift below reuses its
	// slot for the next kept line.
	var removed models.Line
	found := false
	if line := c.state.CartLine(key); line != nil {
		removed = *line
		found = true
	}

	kept := c.state.Cart[:0]
	for _, line := range c.state.Cart {
		if line.ItemKey() != key {
			kept = append(kept, line)
		}
	}
	c.state.Cart = kept
	c.save()

	if found {
		notify.Push(notify.Info, "Producto eliminado", removed.Name+" eliminado del carrito")
	}
}

// Clear empties the cart after user confirmation. Empty carts are a no-op.
func (c *Cart) Clear() {
	if len(c.state.Cart) == 0 {
		return
	}
	if c.confirm != nil && !c.confirm("¿Estás seguro de vaciar el carrito?") {
		return
	}

	c.state.Cart = nil
	c.save()
	notify.Push(notify.Info, "Carrito vaciado", "Todos los productos fueron eliminados")
}

// reset empties the cart without confirmation, used after a submitted order.
func (c *Cart) reset() {
	c.state.Cart = nil
	c.save()
}

// Subtotal is Σ price×quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.state.Cart {
		sum = sum.Add(line.Total())
	}
	return sum
}

// TotalItems is Σ quantity over all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.state.Cart {
		total += line.Quantity
	}
	return total
}

// Lines returns a copy of the cart in display order.
func (c *Cart) Lines() []models.Line {
	out := make([]models.Line, len(c.state.Cart))
	copy(out, c.state.Cart)
	return out
}

func (c *Cart) stockWarning(max int) {
	notify.Push(notify.Warning, "Stock limitado",
		fmt.Sprintf("Solo hay %d unidades disponibles", max))
}
