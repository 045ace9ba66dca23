package generator

import (
	"path/filepath"
	"strings"
	"unicode"
)

// EscapeLine prepares a single input line for use inside a C string literal.
// Trailing whitespace is removed and every double quote is escaped. When
// escapeBackslashes is set, backslashes are doubled first so that they
// survive the C compiler unchanged. A CR left inside the line is written as
// the \r escape; a raw CR would end the literal's source line.
func EscapeLine(line string, escapeBackslashes bool) string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if escapeBackslashes {
		line = strings.ReplaceAll(line, `\`, `\\`)
	}
	line = strings.ReplaceAll(line, `"`, `\"`)
	return strings.ReplaceAll(line, "\r", `\r`)
}

// Literal returns the quoted literal segment for line, terminated by an
// explicit \n escape.
//
//	say "hi"  ->  "say \"hi\"\n"
func Literal(line string, escapeBackslashes bool) string {
	return `"` + EscapeLine(line, escapeBackslashes) + `\n"`
}

// Literals maps Literal over lines. The result has exactly len(lines) entries.
func Literals(lines []string, escapeBackslashes bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Literal(line, escapeBackslashes)
	}
	return out
}

// Identifier derives the declared variable name from the base name of path.
// Periods become underscores ("foo.bar.html" -> "foo_bar_html"). Any other
// character that cannot appear in a C identifier is replaced the same way,
// and a leading digit gets an underscore prefix.
func Identifier(path string) string {
	base := filepath.Base(path)

	var b strings.Builder
	b.Grow(len(base) + 1)
	for i, r := range base {
		if i == 0 && r >= '0' && r <= '9' {
			b.WriteByte('_')
		}
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
