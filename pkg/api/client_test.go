package api_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/pkg/api"
	"github.com/manduca/menu/pkg/fetch"
	"github.com/manduca/menu/pkg/testkit"
)

func newClient(t *testing.T) (*api.Client, *testkit.MockTransport) {
	t.Helper()
	mt := testkit.NewMockTransport()
	fetch.DefaultClient.Transport = mt
	t.Cleanup(fetch.ResetTransport)
	return api.New("https://backend.test/api", time.Second), mt
}

func TestMenuDecodesStringPrices(t *testing.T) {
	client, mt := newClient(t)
	mt.Stub("GET", "/menu", 200, `{
		"site": {"name": "Manducá", "is_open": true},
		"categories": [
			{"id": 1, "name": "Bebidas", "products": [
				{"id": 10, "name": "Jugo", "description": "", "price_retail": "1500.50", "stock": 10, "low_stock_threshold": 5}
			]}
		],
		"daily_dishes": [
			{"id": 4, "name": "Guiso", "description": "", "price": 4500, "stock": 8}
		]
	}`)

	menu, err := client.Menu(context.Background())
	require.NoError(t, err)

	assert.True(t, menu.Site.IsOpen)
	require.Len(t, menu.Categories, 1)
	p := menu.Categories[0].Products[0]
	// price_retail arrives quoted; daily price arrives bare. Both decode.
	assert.True(t, p.PriceRetail.Equal(decimal.NewFromFloat(1500.50)), "got %s", p.PriceRetail)
	require.Len(t, menu.DailyDishes, 1)
	assert.True(t, menu.DailyDishes[0].Price.Equal(decimal.NewFromInt(4500)))
}

func TestMenuSendsExpectedHeaders(t *testing.T) {
	client, mt := newClient(t)
	stub := mt.Stub("GET", "/menu", 200, `{"site":{},"categories":[],"daily_dishes":[]}`)

	_, err := client.Menu(context.Background())
	require.NoError(t, err)

	req := stub.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "XMLHttpRequest", req.Header.Get("X-Requested-With"))
}

func TestMenuErrorParsesMessage(t *testing.T) {
	client, mt := newClient(t)
	mt.Stub("GET", "/menu", 503, `{"message": "En mantenimiento"}`)

	_, err := client.Menu(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.Status)
	assert.Equal(t, "En mantenimiento", apiErr.Message)
}

func TestMenuErrorFallsBackOnNonJSONBody(t *testing.T) {
	client, mt := newClient(t)
	mt.Stub("GET", "/menu", 500, `<html>Internal Server Error</html>`)

	_, err := client.Menu(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.FallbackMessage, apiErr.Message)
}

func TestMenuErrorFallsBackOnEmptyMessage(t *testing.T) {
	client, mt := newClient(t)
	mt.Stub("GET", "/menu", 500, `{"message": ""}`)

	_, err := client.Menu(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.FallbackMessage, apiErr.Message)
}

func TestSubmitOrderPostsJSON(t *testing.T) {
	client, mt := newClient(t)
	stub := mt.Stub("POST", "/menu/orders", 201, `{"id": 7}`)

	address := "Av. Siempreviva 742"
	order := models.Order{
		CustomerName:    "Ana",
		DeliveryType:    models.DeliveryDelivery,
		DeliveryAddress: &address,
		Items: []models.OrderItem{
			{Type: models.TypeProduct, ID: 1, Name: "Café", Quantity: 2, UnitPrice: decimal.NewFromInt(1200)},
		},
	}
	require.NoError(t, client.SubmitOrder(context.Background(), order))

	req := stub.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{
		"customer_name": "Ana",
		"delivery_type": "delivery",
		"delivery_address": "Av. Siempreviva 742",
		"notes": "",
		"items": [
			{"type": "product", "id": 1, "name": "Café", "quantity": 2, "unit_price": "1200"}
		]
	}`, string(stub.LastBody()))
}

func TestSubmitOrderSurfacesValidationError(t *testing.T) {
	client, mt := newClient(t)
	mt.Stub("POST", "/menu/orders", 422, `{"message": "Stock insuficiente para Café"}`)

	err := client.SubmitOrder(context.Background(), models.Order{CustomerName: "Ana"})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "Stock insuficiente para Café", apiErr.Message)
}
