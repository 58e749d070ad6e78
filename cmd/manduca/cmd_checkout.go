package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manduca/menu/app/services"
	"github.com/manduca/menu/app/views"
)

var (
	checkoutName    string
	checkoutType    string
	checkoutAddress string
	checkoutNotes   string
)

// manduca checkout: submit the cart as an order.
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Enviar el pedido",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication()
		if err != nil {
			return err
		}

		if !app.checkout.Open() {
			return nil // empty cart: the warning toast already fired
		}
		defer app.checkout.Close()

		// Flags override whatever was saved from previous orders.
		input := app.checkout.Prefill()
		if cmd.Flags().Changed("nombre") {
			input.CustomerName = checkoutName
		}
		if cmd.Flags().Changed("tipo") {
			input.DeliveryType = checkoutType
		}
		if cmd.Flags().Changed("direccion") {
			input.DeliveryAddress = checkoutAddress
		}
		input.Notes = checkoutNotes

		fmt.Println(views.Cart(app.cart).Summary)

		if err := app.checkout.Submit(cmd.Context(), input); err != nil {
			if err == services.ErrInvalidInput {
				return nil // toast already explains what is missing
			}
			return err
		}
		return nil
	},
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutName, "nombre", "", "Nombre del cliente")
	checkoutCmd.Flags().StringVar(&checkoutType, "tipo", "", "Tipo de entrega: local o delivery")
	checkoutCmd.Flags().StringVar(&checkoutAddress, "direccion", "", "Dirección de entrega (solo delivery)")
	checkoutCmd.Flags().StringVar(&checkoutNotes, "notas", "", "Notas para el local")
}
