// Package notify is the toast bus: every user-facing signal (product added,
// stock limit hit, order sent, load failure) flows through here as a levelled
// notification. Presenters register listeners; state components never touch
// presentation directly.
package notify

import (
	"sync"
	"time"

	"github.com/manduca/menu/pkg/format"
)

// Level classifies a notification the way the original toast styles did.
type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Notification is one toast: a level, a short title and an optional message.
type Notification struct {
	ID      string
	Level   Level
	Title   string
	Message string
	At      time.Time
}

// Listener receives every published notification.
type Listener func(Notification)

var (
	mu        sync.RWMutex
	listeners []Listener
)

// Listen registers a listener for all notifications.
func Listen(fn Listener) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, fn)
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	listeners = nil
}

// Push publishes a notification synchronously to every listener.
func Push(level Level, title, message string) {
	n := Notification{
		ID:      format.NewID(),
		Level:   level,
		Title:   title,
		Message: message,
		At:      time.Now(),
	}

	mu.RLock()
	ls := make([]Listener, len(listeners))
	copy(ls, listeners)
	mu.RUnlock()

	for _, fn := range ls {
		fn(n)
	}
}

// Capture registers a recording listener and returns the slice it fills plus
// a restore func. Test helper:
//
//	got, done := notify.Capture()
//	defer done()
func Capture() (*[]Notification, func()) {
	var got []Notification
	mu.Lock()
	prev := listeners
	listeners = []Listener{func(n Notification) { got = append(got, n) }}
	mu.Unlock()

	return &got, func() {
		mu.Lock()
		listeners = prev
		mu.Unlock()
	}
}
