package generator

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// ReadLines reads r to the end and splits it into lines.
// See SplitLines for the splitting rules.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return SplitLines(data)
}

// SplitLines splits UTF-8 text on LF. A final LF terminates the last line
// rather than starting an empty one, so "a\nb\n" and "a\nb" both yield two
// lines. Empty input yields no lines. CR is left in place; EscapeLine strips
// a trailing CR with the rest of the whitespace and escapes any other.
func SplitLines(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	if len(data) == 0 {
		return nil, nil
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.Split(text, "\n"), nil
}
