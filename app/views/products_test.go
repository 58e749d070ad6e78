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
)

func demoState() *state.App {
	st := state.New()
	st.Categories = []models.Category{
		{ID: 1, Name: "Bebidas"},
		{ID: 2, Name: "Cafetería"},
	}
	st.Products = []models.Product{
		{ID: 10, Type: models.TypeProduct, Name: "Jugo", Price: decimal.NewFromInt(1500), Stock: 10, Unit: "unidad", CategoryID: 1, CategoryName: "Bebidas"},
		{ID: 20, Type: models.TypeProduct, Name: "Café", Price: decimal.NewFromInt(1800), Stock: 3, Unit: "unidad", CategoryID: 2, CategoryName: "Cafetería"},
		{ID: 30, Type: models.TypeDaily, Name: "Guiso", Price: decimal.NewFromInt(4500), Stock: 8, Unit: "unidad", CategoryName: models.DailyCategoryName},
	}
	st.DailyDishes = []models.Product{st.Products[2]}
	st.Filtered = append([]models.Product(nil), st.Products...)
	return st
}

func TestStatusForTiers(t *testing.T) {
	cases := []struct {
		stock int
		tier  views.StockTier
		text  string
	}{
		{0, views.TierUnavailable, "Sin stock"},
		{-1, views.TierUnavailable, "Sin stock"},
		{1, views.TierLow, "Solo 1 unidades"},
		{9, views.TierLow, "Solo 9 unidades"},
		{10, views.TierAvailable, "Disponible"},
		{500, views.TierAvailable, "Disponible"},
	}
	for _, c := range cases {
		got := views.StatusFor(c.stock)
		assert.Equal(t, c.tier, got.Tier, "stock %d", c.stock)
		assert.Equal(t, c.text, got.Text, "stock %d", c.stock)
		assert.Equal(t, c.tier != views.TierUnavailable, got.Available, "stock %d", c.stock)
	}
}

func TestCardDiscount(t *testing.T) {
	p := models.Product{
		ID: 1, Type: models.TypeProduct, Name: "Torta",
		Price:         decimal.NewFromInt(5000),
		DiscountPrice: decimal.NewFromInt(4000),
		Stock:         10,
	}
	card := views.Card(p)
	assert.Equal(t, "$ 4.000,00", card.Price)
	assert.Equal(t, "$ 5.000,00", card.OldPrice)

	p.DiscountPrice = decimal.Zero
	card = views.Card(p)
	assert.Equal(t, "$ 5.000,00", card.Price)
	assert.Empty(t, card.OldPrice)
}

func TestCardOutOfStockCannotAdd(t *testing.T) {
	card := views.Card(models.Product{ID: 1, Type: models.TypeProduct, Name: "Agotado"})
	assert.False(t, card.CanAdd)
}

func TestGridShowsDailySectionOnceOnAll(t *testing.T) {
	st := demoState()
	catalog := services.NewCatalog(st, nil)

	grid := views.Products(st, catalog)
	require.Len(t, grid.Daily, 1)
	assert.Equal(t, "Guiso", grid.Daily[0].Name)

	// The daily dish does not repeat in the general cards.
	for _, card := range grid.Cards {
		assert.NotEqual(t, models.TypeDaily, card.Key.Type)
	}
	assert.Len(t, grid.Cards, 2)
	assert.False(t, grid.Empty)
	assert.Equal(t, "3 productos disponibles", grid.CountLabel)
	assert.Equal(t, "Todos los Productos", grid.Title)
}

func TestGridHidesDailySectionUnderCategory(t *testing.T) {
	st := demoState()
	catalog := services.NewCatalog(st, nil)
	catalog.SelectCategory(2)

	grid := views.Products(st, catalog)
	assert.Empty(t, grid.Daily)
	require.Len(t, grid.Cards, 1)
	assert.Equal(t, "Café", grid.Cards[0].Name)
	assert.Equal(t, "Cafetería", grid.Title)
	assert.Equal(t, "1 producto disponibles", grid.CountLabel)
}

func TestGridEmptySearch(t *testing.T) {
	st := demoState()
	catalog := services.NewCatalog(st, nil)
	catalog.Search("milanesa")

	grid := views.Products(st, catalog)
	assert.True(t, grid.Empty)
	assert.Equal(t, "0 productos encontrados", grid.CountLabel)
	assert.Equal(t, `Resultados para "milanesa"`, grid.Title)
}

func TestGridSearchKeepsMatchingDailyInSection(t *testing.T) {
	st := demoState()
	catalog := services.NewCatalog(st, nil)
	catalog.Search("guiso")

	// Searching keeps category "all", so the matching daily stays in its own
	// section and the general cards end up empty, not the whole grid.
	grid := views.Products(st, catalog)
	require.Len(t, grid.Daily, 1)
	assert.Empty(t, grid.Cards)
	assert.False(t, grid.Empty)
	assert.Equal(t, "1 producto encontrados", grid.CountLabel)
}
