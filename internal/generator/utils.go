package generator

import (
	"io"
	"text/template"

	"github.com/rsna6ce/html2cheader/internal/templates"
)

// executeTemplate loads a template, parses it with the provided funcMap, and executes it into w.
func executeTemplate(tmplName string, w io.Writer, data interface{}, funcMap template.FuncMap) error {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return err
	}

	// If funcMap is nil, use empty map
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	t, err := template.New(tmplName).Option("missingkey=error").Funcs(funcMap).Parse(tmplContent)
	if err != nil {
		return err
	}

	return t.Execute(w, data)
}
