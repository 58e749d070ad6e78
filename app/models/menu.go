// Package models holds the wire and domain types of the menu client.
package models

import "github.com/shopspring/decimal"

// Menu is the response of GET /menu, the single read endpoint.
type Menu struct {
	Site        Site           `json:"site"`
	Categories  []MenuCategory `json:"categories"`
	DailyDishes []DailyDish    `json:"daily_dishes"`
}

// Site carries establishment metadata; IsOpen gates the "taking orders"
// warning on load.
type Site struct {
	Name   string `json:"name"`
	IsOpen bool   `json:"is_open"`
}

// MenuCategory is a category as it arrives on the wire, products nested.
type MenuCategory struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Products []MenuProduct `json:"products"`
}

// MenuProduct is the nested wire form of a product. PriceRetail arrives as a
// JSON string; decimal accepts both quoted and bare numbers.
type MenuProduct struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	PriceRetail       decimal.Decimal `json:"price_retail"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}

// DailyDish is a time-limited special, listed outside the category tree.
type DailyDish struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// Category is the read-only category view kept in application state.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DailyCategoryName labels daily dishes wherever a category name is shown.
const DailyCategoryName = "Plato del día"

// Product is the uniform in-memory product: regular products and daily
// dishes share this shape so search, cart and the detail view treat them
// alike. Immutable once fetched.
type Product struct {
	ID                int64
	Type              ItemType
	Name              string
	Description       string
	Price             decimal.Decimal
	DiscountPrice     decimal.Decimal // zero when the backend sent none
	IsNew             bool
	Stock             int
	LowStockThreshold int
	Unit              string
	CategoryID        int64 // 0 for daily dishes
	CategoryName      string
}

// Key returns the product's tagged identity.
func (p Product) Key() ItemKey {
	return ItemKey{Type: p.Type, ID: p.ID}
}

// HasDiscount reports whether a lower discount price should replace the
// regular one on display.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice.IsPositive() && p.DiscountPrice.LessThan(p.Price)
}

// EffectivePrice is the price a buyer actually pays.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.HasDiscount() {
		return p.DiscountPrice
	}
	return p.Price
}
