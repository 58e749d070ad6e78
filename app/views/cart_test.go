package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/views"
	"github.com/manduca/menu/pkg/notify"
)

func TestCartViewEmpty(t *testing.T) {
	defer notify.Flush()

	cart := newCart(t, demoState())
	view := views.Cart(cart)

	assert.True(t, view.Empty)
	assert.False(t, view.ShowBadge)
	assert.Zero(t, view.Badge)
	assert.Equal(t, "$ 0,00", view.Subtotal)
}

func TestCartViewLines(t *testing.T) {
	defer notify.Flush()

	st := demoState()
	cart := newCart(t, st)

	jugo := st.FindProduct(models.ItemKey{Type: models.TypeProduct, ID: 10})
	cafe := st.FindProduct(models.ItemKey{Type: models.TypeProduct, ID: 20})
	require.True(t, cart.Add(jugo, 2))   // 1500 each, stock 10
	require.True(t, cart.Add(cafe, 3))   // 1800 each, stock 3

	view := views.Cart(cart)
	assert.False(t, view.Empty)
	assert.True(t, view.ShowBadge)
	assert.Equal(t, 5, view.Badge)
	require.Len(t, view.Lines, 2)

	first := view.Lines[0]
	assert.Equal(t, "product:10", first.Key)
	assert.Equal(t, "$ 1.500,00", first.Price)
	assert.True(t, first.CanIncrement)
	assert.True(t, first.CanDecrement)

	// At max stock the plus control disables.
	second := view.Lines[1]
	assert.False(t, second.CanIncrement)

	assert.Equal(t, "$ 8.400,00", view.Subtotal)
	assert.Equal(t, view.Subtotal, view.Total)
	assert.Equal(t, "5 productos - Total $ 8.400,00", view.Summary)
}

func TestCartViewSingleUnitCannotDecrement(t *testing.T) {
	defer notify.Flush()

	st := demoState()
	cart := newCart(t, st)
	require.True(t, cart.Add(st.FindProduct(models.ItemKey{Type: models.TypeProduct, ID: 10}), 1))

	view := views.Cart(cart)
	require.Len(t, view.Lines, 1)
	assert.False(t, view.Lines[0].CanDecrement)
	assert.True(t, view.Lines[0].CanIncrement)
}
