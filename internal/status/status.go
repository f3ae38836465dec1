// Package status holds the single (text, color) pair shown to the user and
// the fixed messages each outcome of a check produces.
package status

import (
	"fmt"
	"sync"
)

// Color is a CSS color value. The web page uses it verbatim; the terminal
// renderer maps it onto ANSI attributes.
type Color string

const (
	Orange  Color = "orange"
	Red     Color = "red"
	Green   Color = "green"
	Neutral Color = "#2c3e50"
)

// Status is what the user sees after a state transition.
type Status struct {
	Text  string
	Color Color
}

func (s Status) String() string {
	return s.Text
}

var (
	MissingFields = Status{Text: "⚠️ Please fill in all fields.", Color: Orange}
	Checking      = Status{Text: "Checking integrity... Please wait...", Color: Neutral}
	Safe          = Status{Text: "✅ SAFE! This password was not found in known breaches. Check your SMS for confirmation.", Color: Green}
	NetworkError  = Status{Text: "❌ Network Error: Could not connect to the server.", Color: Red}
)

// UnknownErrorMessage replaces an empty server message in API errors.
const UnknownErrorMessage = "Unknown error"

// Breached reports a password found in count breaches.
func Breached(count int) Status {
	return Status{
		Text:  fmt.Sprintf("⚠️ BREACHED! Found in %d breaches. Check your SMS for full details.", count),
		Color: Red,
	}
}

// APIError reports a non-success reply from the backend.
func APIError(message string) Status {
	if message == "" {
		message = UnknownErrorMessage
	}
	return Status{Text: "⚠️ API Error: " + message, Color: Red}
}

// Display is anything that can show a status to the user.
type Display interface {
	Show(Status)
}

// Recorder keeps only the latest status. It is safe for concurrent use.
type Recorder struct {
	mu      sync.RWMutex
	current Status
	set     bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Show overwrites the current status.
func (r *Recorder) Show(s Status) {
	r.mu.Lock()
	r.current = s
	r.set = true
	r.mu.Unlock()
}

// Current returns the status last shown and whether anything was shown yet.
func (r *Recorder) Current() (Status, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, r.set
}
