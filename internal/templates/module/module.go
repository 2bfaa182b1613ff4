// Package module provides the embedded templates for generated CRUD modules.
package module

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed *.tmpl
var moduleTemplates embed.FS

// Get returns the content of an artifact template by name.
func Get(name string) (string, error) {
	content, err := moduleTemplates.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Funcs returns the template function map for module templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"toLower": strings.ToLower,
		"toUpper": strings.ToUpper,
	}
}
