// Package render shows check statuses on a terminal.
package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/Goofygiraffe06/breachcheck/internal/status"
	"github.com/fatih/color"
)

var palette = map[status.Color]*color.Color{
	status.Orange:  color.New(color.FgYellow, color.Bold),
	status.Red:     color.New(color.FgRed, color.Bold),
	status.Green:   color.New(color.FgGreen, color.Bold),
	status.Neutral: color.New(color.FgHiBlack),
}

// Terminal writes one line per status to w. Colors follow fatih/color's
// global NoColor switch, so piping output or setting NO_COLOR disables them.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Show(s status.Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := palette[s.Color]
	if !ok {
		fmt.Fprintln(t.w, s.Text)
		return
	}
	c.Fprintln(t.w, s.Text)
}
