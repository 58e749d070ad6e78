package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	attachToasts()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manduca",
	Short: "Manducá, cliente del menú digital",
	Long:  "Cliente de terminal del menú digital de Manducá: explorá el menú, armá tu carrito y enviá tu pedido.",
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(browseCmd)
}
