package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/manduca/menu/app/views"
)

var menuCategory int64

// manduca menu: fetch the menu and print it.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Mostrar el menú (categorías, productos y platos del día)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication()
		if err != nil {
			return err
		}
		// Products load first; the category bar renders from that state.
		if err := app.catalog.Load(cmd.Context()); err != nil {
			return err
		}

		bar := views.NewCategoryBar(app.state, app.catalog)
		if menuCategory > 0 {
			bar.Select(menuCategory)
		}

		printCategoryBar(bar)
		printGrid(views.Products(app.state, app.catalog))
		return nil
	},
}

// manduca search <texto>: search the menu.
var searchCmd = &cobra.Command{
	Use:   "search <texto>",
	Short: "Buscar productos por nombre, descripción o categoría",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication()
		if err != nil {
			return err
		}
		if err := app.catalog.Load(cmd.Context()); err != nil {
			return err
		}

		app.catalog.Search(strings.Join(args, " "))
		printGrid(views.Products(app.state, app.catalog))
		return nil
	},
}

func init() {
	menuCmd.Flags().Int64Var(&menuCategory, "categoria", 0, "Filtrar por id de categoría (0 = todas)")
}

func printCategoryBar(bar *views.CategoryBar) {
	var parts []string
	for _, b := range bar.Buttons() {
		label := b.Name
		if b.Icon != "" {
			label = b.Icon + " " + label
		}
		if b.Active {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	fmt.Println(strings.Join(parts, "  "))
	fmt.Println()
}

func printGrid(grid views.Grid) {
	fmt.Println(grid.Title)
	fmt.Println(grid.CountLabel)
	fmt.Println()

	if grid.Empty {
		fmt.Println("No hay productos para mostrar.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if len(grid.Daily) > 0 {
		fmt.Fprintln(w, "⭐ Plato del día")
		printCards(w, grid.Daily)
		fmt.Fprintln(w)
	}
	printCards(w, grid.Cards)
	w.Flush()
}

func printCards(w *tabwriter.Writer, cards []views.ProductCard) {
	for _, card := range cards {
		price := card.Price
		if card.OldPrice != "" {
			price = card.OldPrice + " → " + price
		}
		add := ""
		if !card.CanAdd {
			add = "no disponible"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			card.Key, card.Name, price, card.Stock.Text, add)
	}
}
