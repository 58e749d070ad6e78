package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/manduca/menu/app/services"
	"github.com/manduca/menu/app/state"
	"github.com/manduca/menu/config"
	"github.com/manduca/menu/pkg/api"
	"github.com/manduca/menu/pkg/notify"
	"github.com/manduca/menu/pkg/storage"
)

// application bundles the wired components. The coordinator owns the shared
// state and hands it to each component explicitly.
type application struct {
	state    *state.App
	catalog  *services.Catalog
	cart     *services.Cart
	checkout *services.Checkout
}

func newApplication() (*application, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store, err := storage.Open(config.StateDir())
	if err != nil {
		return nil, err
	}

	st := state.New()
	client := api.New(config.APIBaseURL(), config.HTTPTimeout())
	cart := services.NewCart(st, store, confirmPrompt)

	return &application{
		state:    st,
		catalog:  services.NewCatalog(st, client),
		cart:     cart,
		checkout: services.NewCheckout(st, cart, client, store),
	}, nil
}

// confirmPrompt asks a yes/no question on the terminal.
func confirmPrompt(prompt string) bool {
	fmt.Printf("%s [s/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "s" || answer == "si" || answer == "sí" || answer == "y"
}

// toast icons per level, the CLI stand-in for the toast container.
var toastPrefix = map[notify.Level]string{
	notify.Success: "✔",
	notify.Info:    "ℹ",
	notify.Warning: "⚠",
	notify.Error:   "✖",
}

// attachToasts prints every notification as a one-line toast.
func attachToasts() {
	notify.Listen(func(n notify.Notification) {
		prefix, ok := toastPrefix[n.Level]
		if !ok {
			prefix = "ℹ"
		}
		if n.Message != "" {
			fmt.Printf("%s %s: %s\n", prefix, n.Title, n.Message)
			return
		}
		fmt.Printf("%s %s\n", prefix, n.Title)
	})
}
