// Package views turns application state into plain view models. Nothing in
// here performs I/O or mutates state, so the render policy (daily-dish
// dedupe, stock tiers, empty states) is testable without any presentation
// layer. The CLI is one consumer; any other renderer could sit on top.
package views

import (
	"fmt"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/services"
	"github.com/manduca/menu/app/state"
	"github.com/manduca/menu/pkg/format"
)

// StockTier is the derived availability state of a product.
type StockTier int

const (
	TierUnavailable StockTier = iota
	TierLow
	TierAvailable
)

// lowStockBoundary: anything under 10 units shows the exact count.
const lowStockBoundary = 10

// StockStatus is the badge shown on a product card.
type StockStatus struct {
	Tier      StockTier
	Available bool
	Text      string
}

// StatusFor derives the stock badge from a raw count: 0 is unavailable,
// 1..9 low with the exact count, 10 and up plain available.
func StatusFor(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatus{Tier: TierUnavailable, Text: "Sin stock"}
	case stock < lowStockBoundary:
		return StockStatus{
			Tier:      TierLow,
			Available: true,
			Text:      fmt.Sprintf("Solo %d unidades", stock),
		}
	default:
		return StockStatus{Tier: TierAvailable, Available: true, Text: "Disponible"}
	}
}

// ProductCard is one rendered product.
type ProductCard struct {
	Key         models.ItemKey
	Category    string
	Name        string
	Description string
	Price       string
	OldPrice    string // set only when a discount applies
	Unit        string
	IsNew       bool
	Stock       StockStatus
	CanAdd      bool
}

// Card builds the view model for a single product.
func Card(p models.Product) ProductCard {
	status := StatusFor(p.Stock)
	card := ProductCard{
		Key:         p.Key(),
		Category:    p.CategoryName,
		Name:        p.Name,
		Description: p.Description,
		Price:       format.Price(p.EffectivePrice()),
		Unit:        p.Unit,
		IsNew:       p.IsNew,
		Stock:       status,
		CanAdd:      status.Available,
	}
	if p.HasDiscount() {
		card.OldPrice = format.Price(p.Price)
	}
	return card
}

// Grid is the whole product area: an optional daily-dish section, the
// general cards, and the header labels.
type Grid struct {
	Title      string
	CountLabel string
	Daily      []ProductCard // dedicated section, "all" view only
	Cards      []ProductCard
	Empty      bool
}

// Products renders the grid for the current filters.
//
// Policy: with category "all" and daily dishes present, dailies appear once
// in their own section and are excluded from the general cards; under any
// specific category they do not appear at all (they have no category id).
func Products(st *state.App, catalog *services.Catalog) Grid {
	g := Grid{Title: catalog.CategoryName()}

	showDailySection := st.SelectedCategory == state.AllCategories && len(st.DailyDishes) > 0
	if showDailySection {
		for _, dish := range st.DailyDishes {
			g.Daily = append(g.Daily, Card(dish))
		}
	}

	for _, p := range st.Filtered {
		if showDailySection && p.Type == models.TypeDaily {
			continue // already in the dedicated section
		}
		g.Cards = append(g.Cards, Card(p))
	}

	g.Empty = len(g.Cards) == 0 && len(g.Daily) == 0

	count := len(st.Filtered)
	noun := "productos"
	if count == 1 {
		noun = "producto"
	}
	verb := "disponibles"
	if st.SearchQuery != "" {
		verb = "encontrados"
	}
	g.CountLabel = fmt.Sprintf("%s %s %s", format.Number(count), noun, verb)

	return g
}
