package generator

import (
	"bytes"
	"io"
)

const headerTemplate = "header.h.tmpl"

// Header is the data rendered into header.h.tmpl.
type Header struct {
	// Guard is the include guard style, "pragma" or "ifndef".
	// The ifndef macro is the upper-cased identifier plus "_H".
	Guard string
	// TypeName is emitted verbatim before the identifier.
	TypeName string
	// Identifier is the declared variable name.
	Identifier string
	// Literals holds one quoted segment per input line.
	Literals []string
}

// Render writes the header to w. The output has the form
//
//	#pragma once
//	String a_html = "<p>Hi</p>\n"
//	"end\n";
//
// with no trailing newline after the terminator.
func Render(w io.Writer, h Header) error {
	return executeTemplate(headerTemplate, w, h, GetCommonFuncMap())
}

// RenderBytes is Render into a fresh buffer.
func RenderBytes(h Header) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
