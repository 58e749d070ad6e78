// Package state defines the application state shared by the menu components.
// It is an explicit object owned by the coordinator and passed to each
// component, never an ambient global; only the main event flow mutates it.
package state

import "github.com/manduca/menu/app/models"

// AllCategories is the sentinel for "no category filter".
const AllCategories int64 = 0

// App is the whole client state: catalogue, daily dishes, the derived
// filtered view, the cart, and the active filters.
type App struct {
	Site models.Site

	Categories  []models.Category
	Products    []models.Product // unified list; daily dishes included
	DailyDishes []models.Product // separate list for the dedicated section
	Filtered    []models.Product // derived view

	Cart []models.Line // insertion order = display order

	SelectedCategory int64 // AllCategories or a category id
	SearchQuery      string
}

// New returns an empty application state with default (unfiltered) filters.
func New() *App {
	return &App{SelectedCategory: AllCategories}
}

// FindProduct locates a product in the unified list by tagged key.
// Returns nil when absent.
func (a *App) FindProduct(key models.ItemKey) *models.Product {
	for i := range a.Products {
		if a.Products[i].Key() == key {
			return &a.Products[i]
		}
	}
	return nil
}

// CartLine locates a cart line by tagged key. Returns nil when absent.
func (a *App) CartLine(key models.ItemKey) *models.Line {
	for i := range a.Cart {
		if a.Cart[i].ItemKey() == key {
			return &a.Cart[i]
		}
	}
	return nil
}
