package views

import (
	"github.com/manduca/menu/app/services"
	"github.com/manduca/menu/app/state"
	"github.com/manduca/menu/pkg/format"
)

// CategoryButton is one entry in the category bar.
type CategoryButton struct {
	ID     int64 // state.AllCategories for the "Todos" button
	Name   string
	Icon   string
	Active bool
}

// CategoryBar renders the category buttons and dispatches selections. It
// reads categories from state already populated by the catalogue load; it
// never fetches on its own, so products must have loaded first.
type CategoryBar struct {
	state   *state.App
	catalog *services.Catalog
}

func NewCategoryBar(st *state.App, catalog *services.Catalog) *CategoryBar {
	return &CategoryBar{state: st, catalog: catalog}
}

// Buttons builds the bar; the fixed "Todos" button always leads.
func (b *CategoryBar) Buttons() []CategoryButton {
	buttons := []CategoryButton{{
		ID:     state.AllCategories,
		Name:   "Todos",
		Active: b.state.SelectedCategory == state.AllCategories,
	}}
	for _, cat := range b.state.Categories {
		buttons = append(buttons, CategoryButton{
			ID:     cat.ID,
			Name:   cat.Name,
			Icon:   format.CategoryIcon(cat.Name),
			Active: b.state.SelectedCategory == cat.ID,
		})
	}
	return buttons
}

// Select activates a category (state.AllCategories for "Todos"): the filter
// changes, any search text is cleared, and the caller re-renders the grid.
func (b *CategoryBar) Select(id int64) {
	b.catalog.SelectCategory(id)
}
