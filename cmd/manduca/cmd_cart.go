package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/views"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Ver y modificar el carrito",
}

// manduca cart list: print the cart.
var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar el carrito",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication()
		if err != nil {
			return err
		}
		printCart(views.Cart(app.cart))
		return nil
	},
}

// manduca cart add <key> [cantidad]: add a product by its type:id key.
var cartAddCmd = &cobra.Command{
	Use:   "add <tipo:id> [cantidad]",
	Short: "Agregar un producto al carrito",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := models.ParseKey(args[0])
		if err != nil {
			return err
		}
		qty := 1
		if len(args) == 2 {
			qty, err = strconv.Atoi(args[1])
			if err != nil || qty < 1 {
				return fmt.Errorf("cantidad inválida: %s", args[1])
			}
		}

		app, err := newApplication()
		if err != nil {
			return err
		}
		// Adding needs the live product for its stock bound.
		if err := app.catalog.Load(cmd.Context()); err != nil {
			return err
		}

		app.cart.Add(app.state.FindProduct(key), qty)
		printCart(views.Cart(app.cart))
		return nil
	},
}

// manduca cart rm <key>: remove a line, or set its quantity with --cantidad.
var cartQuantity int

var cartRmCmd = &cobra.Command{
	Use:   "rm <tipo:id>",
	Short: "Quitar un producto del carrito",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := models.ParseKey(args[0])
		if err != nil {
			return err
		}

		app, err := newApplication()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("cantidad") {
			app.cart.UpdateQuantity(key, cartQuantity)
		} else {
			app.cart.Remove(key)
		}
		printCart(views.Cart(app.cart))
		return nil
	},
}

// manduca cart clear: empty the cart (asks first).
var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Vaciar el carrito",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication()
		if err != nil {
			return err
		}
		app.cart.Clear()
		return nil
	},
}

func init() {
	cartRmCmd.Flags().IntVar(&cartQuantity, "cantidad", 0, "Dejar esta cantidad en lugar de quitar la línea")
	cartCmd.AddCommand(cartListCmd, cartAddCmd, cartRmCmd, cartClearCmd)
}

func printCart(view views.CartView) {
	if view.Empty {
		fmt.Println("El carrito está vacío.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, line := range view.Lines {
		fmt.Fprintf(w, "%s\t%s\tx%d\t%s\n", line.Key, line.Name, line.Quantity, line.Price)
	}
	w.Flush()
	fmt.Printf("\nTotal (%d): %s\n", view.Badge, view.Total)
}
