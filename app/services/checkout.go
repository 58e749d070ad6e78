package services

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/state"
	"github.com/manduca/menu/pkg/api"
	"github.com/manduca/menu/pkg/logger"
	"github.com/manduca/menu/pkg/notify"
	"github.com/manduca/menu/pkg/storage"
	"github.com/manduca/menu/pkg/validate"
)

// ErrFormClosed is returned when Submit is called without an open form.
var ErrFormClosed = errors.New("checkout: form is not open")

// ErrSubmitInFlight is returned when a second submission races an
// outstanding one; the first request keeps running.
var ErrSubmitInFlight = errors.New("checkout: submission already in flight")

// ErrInvalidInput is returned when local validation blocks the submission.
var ErrInvalidInput = errors.New("checkout: invalid input")

// Input is what the checkout form collects. The delivery address is only
// required for delivery orders.
type Input struct {
	CustomerName    string `json:"customer_name"    validate:"required,max=120"`
	DeliveryType    string `json:"delivery_type"    validate:"required,in=local,delivery"`
	DeliveryAddress string `json:"delivery_address" validate:"required_if=delivery_type,delivery"`
	Notes           string `json:"notes"            validate:"max=500"`
}

// Checkout drives the checkout form: a two-state machine (closed/open) plus
// a single-flight submission against the order endpoint.
type Checkout struct {
	state *state.App
	cart  *Cart
	api   *api.Client
	store *storage.Store

	open     bool
	inFlight atomic.Bool
}

func NewCheckout(st *state.App, cart *Cart, client *api.Client, store *storage.Store) *Checkout {
	return &Checkout{state: st, cart: cart, api: client, store: store}
}

// Open moves the form closed → open. An empty cart blocks it with a warning
// and no state change. Returns whether the form is now open.
func (c *Checkout) Open() bool {
	if len(c.state.Cart) == 0 {
		notify.Push(notify.Warning, "Carrito vacío", "Agrega productos antes de realizar el pedido")
		return false
	}
	c.open = true
	return true
}

// Close moves the form open → closed; it backs the explicit close control,
// the overlay click, and the Escape key alike.
func (c *Checkout) Close() {
	c.open = false
}

// IsOpen reports the form state.
func (c *Checkout) IsOpen() bool { return c.open }

// Prefill builds the initial form values from the customer data saved on
// previous orders. A saved address flips the delivery type to "delivery".
func (c *Checkout) Prefill() Input {
	name := c.store.GetString(customerNameKey)
	address := strings.TrimSpace(c.store.GetString(deliveryAddressKey))

	deliveryType := models.DeliveryLocal
	if address != "" {
		deliveryType = models.DeliveryDelivery
	}

	return Input{
		CustomerName:    name,
		DeliveryType:    deliveryType,
		DeliveryAddress: address,
	}
}

// Submit validates the form, builds the order payload from the cart, and
// posts it. On success the customer data is saved for reuse, the cart is
// emptied and the form closes. On failure the server's message (or a generic
// fallback) is surfaced and the cart is left untouched. The in-flight guard
// releases on every path, so the submit control is always re-enabled.
func (c *Checkout) Submit(ctx context.Context, input Input) error {
	if !c.open {
		return ErrFormClosed
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		notify.Push(notify.Warning, "Pedido en curso", "Tu pedido ya se está enviando")
		return ErrSubmitInFlight
	}
	defer c.inFlight.Store(false)

	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.DeliveryAddress = strings.TrimSpace(input.DeliveryAddress)
	input.Notes = strings.TrimSpace(input.Notes)

	if errs := validate.Struct(input); validate.HasErrors(errs) {
		c.reportValidation(errs)
		return ErrInvalidInput
	}

	order := models.Order{
		CustomerName: input.CustomerName,
		DeliveryType: input.DeliveryType,
		Notes:        input.Notes,
		Items:        make([]models.OrderItem, 0, len(c.state.Cart)),
	}
	if input.DeliveryType == models.DeliveryDelivery {
		order.DeliveryAddress = &input.DeliveryAddress
	}
	for _, line := range c.state.Cart {
		order.Items = append(order.Items, models.OrderItem{
			Type:      line.Type,
			ID:        line.ID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}

	if err := c.api.SubmitOrder(ctx, order); err != nil {
		message := "No se pudo procesar el pedido."
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		logger.Error("checkout: submit failed", "error", err)
		notify.Push(notify.Error, "Error", message)
		return err
	}

	if err := c.store.PutString(customerNameKey, input.CustomerName); err != nil {
		logger.Warn("checkout: saving customer name", "error", err)
	}
	if input.DeliveryType == models.DeliveryDelivery {
		if err := c.store.PutString(deliveryAddressKey, input.DeliveryAddress); err != nil {
			logger.Warn("checkout: saving delivery address", "error", err)
		}
	}

	notify.Push(notify.Success, "Pedido enviado", "Tu pedido fue enviado al local")
	c.cart.reset()
	c.Close()
	return nil
}

// reportValidation maps field errors onto the warning toasts the site shows;
// only the first applicable one fires, name before address.
func (c *Checkout) reportValidation(errs map[string]string) {
	if _, ok := errs["customer_name"]; ok {
		notify.Push(notify.Warning, "Nombre requerido", "Ingresa tu nombre para continuar")
		return
	}
	if _, ok := errs["delivery_address"]; ok {
		notify.Push(notify.Warning, "Dirección requerida", "Ingresa una dirección para el envío")
		return
	}
	for field, msg := range errs {
		logger.Warn("checkout: invalid input", "field", field, "error", msg)
		notify.Push(notify.Warning, "Datos inválidos", msg)
		return
	}
}
