// Package naming converts human-entered module names into the canonical
// identifier (snake_case) and type (PascalCase) forms used by every
// generated artifact.
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidName = errors.New("invalid module name")

// Forms holds both canonical renderings of a module name. Compute once
// and reuse so every artifact sees identical tokens.
type Forms struct {
	Raw        string `json:"raw"`
	Identifier string `json:"identifier"`
	TypeName   string `json:"type_name"`
}

// Parse derives both canonical forms from raw input.
func Parse(raw string) (Forms, error) {
	words := splitWords(raw)
	if len(words) == 0 {
		return Forms{}, fmt.Errorf("%w: %q", ErrInvalidName, raw)
	}
	return Forms{
		Raw:        raw,
		Identifier: joinSnake(words),
		TypeName:   joinPascal(words),
	}, nil
}

// Identifier converts raw input to snake_case (file names, table names,
// variable-style references).
func Identifier(raw string) (string, error) {
	f, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return f.Identifier, nil
}

// TypeName converts raw input to PascalCase (generated type names and labels).
func TypeName(raw string) (string, error) {
	f, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return f.TypeName, nil
}

func joinSnake(words []string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

func joinPascal(words []string) string {
	var b strings.Builder
	for _, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// splitWords breaks raw input into words. Any non-alphanumeric rune is a
// consumed separator. Within a token, a word starts before an uppercase
// letter that follows a lowercase letter or digit, and before the last
// uppercase letter of an uppercase run that is followed by a lowercase
// letter, so acronym runs stay whole: "HTTPServer" -> "HTTP", "Server".
func splitWords(raw string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	runes := []rune(raw)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
