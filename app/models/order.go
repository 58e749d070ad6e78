package models

import "github.com/shopspring/decimal"

// Delivery types accepted by the order endpoint.
const (
	DeliveryLocal    = "local"
	DeliveryDelivery = "delivery"
)

// Order is the body of POST /menu/orders.
type Order struct {
	CustomerName    string      `json:"customer_name"`
	DeliveryType    string      `json:"delivery_type"`
	DeliveryAddress *string     `json:"delivery_address"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is one cart line flattened into the order payload.
type OrderItem struct {
	Type      ItemType        `json:"type"`
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
