package services

import (
	"context"
	"strings"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/state"
	"github.com/manduca/menu/pkg/api"
	"github.com/manduca/menu/pkg/logger"
	"github.com/manduca/menu/pkg/notify"
)

// Catalog owns the product side of the application state: the one-time menu
// load, search, and category filtering. Categories are populated here, which
// is why category rendering must wait for Load.
type Catalog struct {
	state *state.App
	api   *api.Client
}

func NewCatalog(st *state.App, client *api.Client) *Catalog {
	return &Catalog{state: st, api: client}
}

// Load fetches the menu once and fills the shared state: categories,
// a uniform product list (regular products tagged with their category,
// daily dishes appended so search and the cart treat them alike), the
// separate daily list for the dedicated section, and the initial unfiltered
// view. There is no retry; a failure surfaces a load-error notification.
func (c *Catalog) Load(ctx context.Context) error {
	menu, err := c.api.Menu(ctx)
	if err != nil {
		logger.Error("catalog: menu load failed", "error", err)
		notify.Push(notify.Error, "Error", "No se pudieron cargar los productos")
		return err
	}

	c.state.Site = menu.Site
	if !menu.Site.IsOpen {
		notify.Push(notify.Warning, "Local cerrado", "No se están tomando pedidos en este momento")
	}

	c.state.Categories = make([]models.Category, 0, len(menu.Categories))
	c.state.Products = c.state.Products[:0]
	c.state.DailyDishes = c.state.DailyDishes[:0]

	for _, cat := range menu.Categories {
		c.state.Categories = append(c.state.Categories, models.Category{ID: cat.ID, Name: cat.Name})
		for _, p := range cat.Products {
			c.state.Products = append(c.state.Products, models.Product{
				ID:                p.ID,
				Type:              models.TypeProduct,
				Name:              p.Name,
				Description:       p.Description,
				Price:             p.PriceRetail,
				Stock:             p.Stock,
				LowStockThreshold: p.LowStockThreshold,
				Unit:              "unidad",
				CategoryID:        cat.ID,
				CategoryName:      cat.Name,
			})
		}
	}

	for _, dish := range menu.DailyDishes {
		daily := models.Product{
			ID:           dish.ID,
			Type:         models.TypeDaily,
			Name:         dish.Name,
			Description:  dish.Description,
			Price:        dish.Price,
			Stock:        dish.Stock,
			Unit:         "unidad",
			CategoryName: models.DailyCategoryName,
		}
		// Kept twice on purpose: the daily list drives the dedicated section,
		// the unified list makes dailies searchable and addable.
		c.state.DailyDishes = append(c.state.DailyDishes, daily)
		c.state.Products = append(c.state.Products, daily)
	}

	c.state.Filtered = append([]models.Product(nil), c.state.Products...)

	logger.Info("catalog: menu loaded",
		"categories", len(c.state.Categories),
		"products", len(c.state.Products),
		"daily_dishes", len(c.state.DailyDishes))
	return nil
}

// Search filters the view by case-insensitive substring match over name,
// description and category name. An empty query resets to the full list.
func (c *Catalog) Search(query string) {
	q := strings.ToLower(strings.TrimSpace(query))
	c.state.SearchQuery = q

	if q == "" {
		c.state.Filtered = append([]models.Product(nil), c.state.Products...)
		return
	}

	var matched []models.Product
	for _, p := range c.state.Products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.CategoryName), q) {
			matched = append(matched, p)
		}
	}
	c.state.Filtered = matched
}

// SelectCategory sets the active category filter (state.AllCategories for
// "all"), clears any active search, and recomputes the view by exact
// category-id match. Daily dishes carry no category id, so they never match
// a specific category.
func (c *Catalog) SelectCategory(id int64) {
	c.state.SelectedCategory = id
	c.state.SearchQuery = ""

	if id == state.AllCategories {
		c.state.Filtered = append([]models.Product(nil), c.state.Products...)
		return
	}

	var matched []models.Product
	for _, p := range c.state.Products {
		if p.CategoryID == id {
			matched = append(matched, p)
		}
	}
	c.state.Filtered = matched
}

// CategoryName labels the current view: search results, "all", or the
// selected category.
func (c *Catalog) CategoryName() string {
	if c.state.SearchQuery != "" {
		return `Resultados para "` + c.state.SearchQuery + `"`
	}
	if c.state.SelectedCategory == state.AllCategories {
		return "Todos los Productos"
	}
	for _, cat := range c.state.Categories {
		if cat.ID == c.state.SelectedCategory {
			return cat.Name
		}
	}
	return "Productos"
}
