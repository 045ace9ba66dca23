package generator

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rsna6ce/html2cheader/internal/config"
)

// Result summarizes a finished run.
type Result struct {
	// Identifier is the declared variable name.
	Identifier string
	// Lines is the number of literal segments written.
	Lines int
	// Bytes is the size of the generated header.
	Bytes int
}

// Generate reads cfg.Input, converts it to a header and writes it to cfg.Output.
// The input is read and closed before the output is opened. The output is
// replaced atomically, so a failed run never leaves a partial header behind.
//
// Parameters:
//   - cfg: A validated configuration.
//
// Returns:
//   - *Result: Details of the generated header.
//   - error: An error if reading, rendering, or writing fails.
func Generate(cfg *config.Config) (*Result, error) {
	lines, err := readInput(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %q: %w", cfg.Input, err)
	}
	slog.Debug("read input", "path", cfg.Input, "lines", len(lines))

	h := NewHeader(cfg, lines)
	data, err := RenderBytes(h)
	if err != nil {
		return nil, fmt.Errorf("failed to render header: %w", err)
	}

	if err := WriteFileAtomic(cfg.Output, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output %q: %w", cfg.Output, err)
	}
	slog.Debug("wrote header", "path", cfg.Output, "identifier", h.Identifier, "bytes", len(data))

	return &Result{
		Identifier: h.Identifier,
		Lines:      len(h.Literals),
		Bytes:      len(data),
	}, nil
}

// NewHeader builds the template data for lines read from cfg.Input.
func NewHeader(cfg *config.Config, lines []string) Header {
	name := cfg.Header.Name
	if name == "" {
		name = Identifier(cfg.Input)
	}
	return Header{
		Guard:      cfg.Header.Guard,
		TypeName:   cfg.Header.Type,
		Identifier: name,
		Literals:   Literals(lines, cfg.Header.EscapeBackslashes),
	}
}

func readInput(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
