// Package format holds the presentation-free helpers shared across the menu
// client: es-AR currency and number rendering, accent-insensitive text
// normalization, unique IDs, a debouncer for interactive search, and the
// category icon table.
package format

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Price renders a money amount the way the site does: "$ 1.234,56".
func Price(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$ %.2f", f)
}

// Number renders an integer with es-AR grouping.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// stripMarks removes combining marks after NFD decomposition, the Go
// equivalent of normalize('NFD').replace(/[̀-ͯ]/g, '').
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, trims and strips accents so "Café" matches "cafe".
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// NewID returns a unique id: millisecond timestamp plus a random suffix.
func NewID() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}

// Debouncer coalesces rapid calls into one trailing invocation, the way the
// search box debounced keystrokes at 300ms.
type Debouncer struct {
	Wait time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// Call schedules fn after Wait, cancelling any previously scheduled call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.Wait, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
