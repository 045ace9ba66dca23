package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
)

// Printer writes status lines to a terminal, or plain text when colour is off.
type Printer struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// New returns a Printer writing to w. Colour is enabled only when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: colorEnabled(w)}
}

func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func (p *Printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return color + s + ColorReset
}

func (p *Printer) status(mark, color, label, detail string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "  %s %-15s %s\n", p.paint(color, mark), label, p.paint(color, detail))
}

func (p *Printer) PrintSuccess(label, detail string) {
	p.status("✔", ColorGreen, label, detail)
}

func (p *Printer) PrintWarning(label, detail string) {
	p.status("!", ColorYellow, label, detail)
}
