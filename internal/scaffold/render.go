package scaffold

import (
	"fmt"
	"strings"
	"text/template"

	"modman/internal/naming"
	moduletmpl "modman/internal/templates/module"
)

type templateData struct {
	Module string
	Type   string
	Table  string
}

// RenderAll renders every artifact template for the given name forms.
func RenderAll(forms naming.Forms) ([]GeneratedArtifact, error) {
	data := templateData{
		Module: forms.Identifier,
		Type:   forms.TypeName,
		Table:  forms.Identifier + "s",
	}
	out := make([]GeneratedArtifact, 0, len(Artifacts))
	for _, a := range Artifacts {
		content, err := render(a.Template, data)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", a.Template, err)
		}
		out = append(out, GeneratedArtifact{Kind: a.Kind, FileName: a.FileName, Content: content})
	}
	return out, nil
}

func render(name string, data templateData) (string, error) {
	text, err := moduletmpl.Get(name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Funcs(moduletmpl.Funcs()).Parse(text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
