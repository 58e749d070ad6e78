package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/app/views"
	"github.com/manduca/menu/pkg/format"
)

// manduca browse: interactive session: type to search, /comandos to act.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Sesión interactiva: buscá, filtrá y armá tu pedido",
	Long: `Sesión interactiva. Todo texto busca en el menú; los comandos empiezan con "/":

  /cat <id>        filtrar por categoría (0 = todas)
  /ver <tipo:id>   ver el detalle de un producto
  /agregar         agregar al carrito el producto del detalle
  /cerrar          cerrar el detalle
  /carrito         ver el carrito
  /vaciar          vaciar el carrito
  /salir           terminar`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication()
		if err != nil {
			return err
		}
		if err := app.catalog.Load(cmd.Context()); err != nil {
			return err
		}

		bar := views.NewCategoryBar(app.state, app.catalog)
		modal := views.NewModal(app.cart)
		printCategoryBar(bar)
		printGrid(views.Products(app.state, app.catalog))

		// The scanner feeds lines over a channel so the loop below can also
		// receive debounced searches. Application state is only ever touched
		// from this loop; the debounce timer does nothing but deliver the
		// query back here.
		lines := make(chan string)
		scanner := bufio.NewScanner(os.Stdin)
		go func() {
			defer close(lines)
			for scanner.Scan() {
				lines <- scanner.Text()
			}
		}()

		searches := make(chan string, 1)
		debouncer := &format.Debouncer{Wait: 300 * time.Millisecond}
		defer debouncer.Stop()

		fmt.Print("> ")
		for {
			select {
			case query := <-searches:
				app.catalog.Search(query)
				fmt.Println()
				printGrid(views.Products(app.state, app.catalog))
				fmt.Print("> ")

			case raw, ok := <-lines:
				if !ok {
					return scanner.Err()
				}
				line := strings.TrimSpace(raw)
				switch {
				case line == "":
					// keep the prompt

				case line == "/salir":
					return nil

				case line == "/carrito":
					printCart(views.Cart(app.cart))

				case line == "/vaciar":
					app.cart.Clear()

				case line == "/cerrar":
					modal.Close()

				case line == "/agregar":
					if !modal.IsOpen() {
						fmt.Println("No hay ningún producto abierto; usá /ver primero.")
						break
					}
					modal.AddToCart()

				case strings.HasPrefix(line, "/ver "):
					key, err := models.ParseKey(strings.TrimSpace(strings.TrimPrefix(line, "/ver ")))
					if err != nil {
						fmt.Println(err)
						break
					}
					if modal.Open(app.state.FindProduct(key)) {
						printDetail(modal)
					}

				case strings.HasPrefix(line, "/cat "):
					id, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "/cat ")), 10, 64)
					if err != nil {
						fmt.Println("Id de categoría inválido.")
						break
					}
					bar.Select(id)
					printCategoryBar(bar)
					printGrid(views.Products(app.state, app.catalog))

				default:
					queueSearch(debouncer, searches, line)
				}
				fmt.Print("> ")
			}
		}
	},
}

// queueSearch coalesces rapid queries, delivering only the last one on out.
// The timer callback never touches application state itself.
func queueSearch(d *format.Debouncer, out chan<- string, query string) {
	d.Call(func() { out <- query })
}

func printDetail(modal *views.Modal) {
	detail, ok := modal.View()
	if !ok {
		return
	}
	fmt.Printf("\n%s\n%s\n%s\n", detail.Category, detail.Name, detail.Description)
	if detail.OldPrice != "" {
		fmt.Printf("%s → ", detail.OldPrice)
	}
	fmt.Printf("%s / %s\n\n", detail.Price, detail.Unit)
}
