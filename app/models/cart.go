package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemType discriminates regular products from daily dishes so the two can
// share a numeric id without colliding in the cart.
type ItemType string

const (
	TypeProduct ItemType = "product"
	TypeDaily   ItemType = "daily"
)

// ItemKey is the tagged identity of a cart line. It is an explicit variant
// rather than a "type:id" string so it can be compared and used as a map key
// without string parsing.
type ItemKey struct {
	Type ItemType
	ID   int64
}

// String renders the composite form used in persisted carts and on the CLI.
func (k ItemKey) String() string {
	return string(k.Type) + ":" + strconv.FormatInt(k.ID, 10)
}

// ParseKey turns the composite "type:id" form back into an ItemKey. A missing
// type tag defaults to "product", matching carts written before daily dishes
// existed.
func ParseKey(s string) (ItemKey, error) {
	typ, idPart, found := strings.Cut(s, ":")
	if !found {
		idPart, typ = typ, string(TypeProduct)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return ItemKey{}, fmt.Errorf("models: bad item key %q", s)
	}
	t := ItemType(typ)
	if t != TypeDaily {
		t = TypeProduct
	}
	return ItemKey{Type: t, ID: id}, nil
}

// Line is one cart entry. JSON tags match the shape the original front end
// wrote to localStorage, so carts persisted by either implementation are
// interchangeable. Invariant: 1 <= Quantity <= MaxStock.
type Line struct {
	Key      string          `json:"key"`
	ID       int64           `json:"id"`
	Type     ItemType        `json:"type"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
	Quantity int             `json:"quantity"`
	MaxStock int             `json:"max_stock"`

	// Stock survives from carts written by older clients that stored the raw
	// stock instead of max_stock; rehydration falls back to it.
	Stock int `json:"stock,omitempty"`
}

// ItemKey returns the line's tagged identity.
func (l Line) ItemKey() ItemKey {
	return ItemKey{Type: l.Type, ID: l.ID}
}

// Total is price × quantity for this line.
func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
