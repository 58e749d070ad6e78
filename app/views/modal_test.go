package views_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/services"
	"github.com/manduca/menu/app/state"
	"github.com/manduca/menu/app/views"
	"github.com/manduca/menu/pkg/notify"
	"github.com/manduca/menu/pkg/storage"
)

func newCart(t *testing.T, st *state.App) *services.Cart {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	return services.NewCart(st, store, nil)
}

func TestModalOpenClose(t *testing.T) {
	defer notify.Flush()

	st := demoState()
	modal := views.NewModal(newCart(t, st))

	assert.False(t, modal.IsOpen())
	if _, ok := modal.View(); ok {
		t.Fatal("closed modal must not render")
	}

	p := st.FindProduct(models.ItemKey{Type: models.TypeProduct, ID: 10})
	require.True(t, modal.Open(p))
	assert.True(t, modal.IsOpen())
	assert.True(t, modal.ScrollLocked())

	detail, ok := modal.View()
	require.True(t, ok)
	assert.Equal(t, "Jugo", detail.Name)
	assert.Equal(t, "$ 1.500,00", detail.Price)
	assert.Equal(t, "Bebidas", detail.Category)

	modal.Close()
	assert.False(t, modal.IsOpen())
	assert.False(t, modal.ScrollLocked())
}

func TestModalOpenMissingProduct(t *testing.T) {
	got, done := notify.Capture()
	defer done()

	st := demoState()
	modal := views.NewModal(newCart(t, st))

	assert.False(t, modal.Open(st.FindProduct(models.ItemKey{Type: models.TypeProduct, ID: 999})))
	assert.False(t, modal.IsOpen())

	require.NotEmpty(t, *got)
	assert.Equal(t, notify.Error, (*got)[0].Level)
	assert.Equal(t, "Producto no encontrado", (*got)[0].Message)
}

func TestModalAddToCartClosesEitherWay(t *testing.T) {
	defer notify.Flush()

	st := demoState()
	cart := newCart(t, st)
	modal := views.NewModal(cart)

	p := st.FindProduct(models.ItemKey{Type: models.TypeProduct, ID: 20})
	require.True(t, modal.Open(p))
	modal.AddToCart()
	assert.False(t, modal.IsOpen())
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 1, st.Cart[0].Quantity)

	// Fill the line to max stock, reopen and add again: the addition is
	// rejected but the modal still closes.
	cart.UpdateQuantity(p.Key(), p.Stock)
	require.True(t, modal.Open(p))
	modal.AddToCart()
	assert.False(t, modal.IsOpen())
	assert.Equal(t, p.Stock, st.Cart[0].Quantity)
}

func TestModalDiscountDetail(t *testing.T) {
	defer notify.Flush()

	st := demoState()
	modal := views.NewModal(newCart(t, st))

	p := &models.Product{
		ID: 7, Type: models.TypeProduct, Name: "Torta",
		Price:         decimal.NewFromInt(5000),
		DiscountPrice: decimal.NewFromInt(4000),
		Stock:         5,
	}
	require.True(t, modal.Open(p))
	detail, ok := modal.View()
	require.True(t, ok)
	assert.Equal(t, "$ 4.000,00", detail.Price)
	assert.Equal(t, "$ 5.000,00", detail.OldPrice)
}
