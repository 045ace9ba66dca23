package generator

import (
	"strings"
	"text/template"
)

// GetCommonFuncMap returns the template functions available to header templates.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"join":  strings.Join,
		"upper": strings.ToUpper,
	}
}
