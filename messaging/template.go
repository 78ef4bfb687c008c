package messaging

import (
	"fmt"
	"regexp"

	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
)

// placeholderPattern matches {{name}} placeholders in a template body.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// TemplateButton is an interactive button attached to a template.
// Channel constraints cap the title at 20 characters.
type TemplateButton struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (b TemplateButton) Validate() error {
	if b.ID == "" {
		return sErrors.Missing("id")
	}
	if b.Title == "" {
		return sErrors.Missing("title")
	}
	if len(b.Title) > 20 {
		return sErrors.Invariant("title", "button title must be 20 characters or less")
	}
	return nil
}

// Template is a parameterized message pattern. The body carries named
// {{placeholder}}s; every placeholder must be a declared parameter.
type Template struct {
	Name     string           `json:"name"`
	Language string           `json:"language"`
	Category string           `json:"category,omitempty"`
	Body     string           `json:"body"`
	Params   []string         `json:"params,omitempty"`
	Buttons  []TemplateButton `json:"buttons,omitempty"`
}

// NewTemplate constructs a validated Template. Language defaults to "en_US".
func NewTemplate(name, language, body string, params []string) (Template, error) {
	if language == "" {
		language = "en_US"
	}
	t := Template{Name: name, Language: language, Body: body, Params: params}
	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

func (t Template) Validate() error {
	if t.Name == "" {
		return sErrors.Missing("name")
	}
	if t.Language == "" {
		return sErrors.Missing("language")
	}
	if t.Body == "" {
		return sErrors.Missing("body")
	}
	declared := make(map[string]bool, len(t.Params))
	for i, p := range t.Params {
		if p == "" {
			return sErrors.Missing(fmt.Sprintf("params.%d", i))
		}
		if declared[p] {
			return sErrors.Invariant(fmt.Sprintf("params.%d", i),
				fmt.Sprintf("parameter %q is declared more than once", p))
		}
		declared[p] = true
	}
	for _, name := range t.Placeholders() {
		if !declared[name] {
			return sErrors.Invariant("body",
				fmt.Sprintf("placeholder %q is not a declared parameter", name))
		}
	}
	for i, b := range t.Buttons {
		if err := b.Validate(); err != nil {
			return sErrors.Prefix(err, fmt.Sprintf("buttons.%d", i))
		}
	}
	return nil
}

// Placeholders returns the placeholder names referenced by the body, in
// order of first appearance, without duplicates.
func (t Template) Placeholders() []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(t.Body, -1) {
		if !seen[match[1]] {
			names = append(names, match[1])
			seen[match[1]] = true
		}
	}
	return names
}

func (t *Template) UnmarshalJSON(data []byte) error {
	type alias Template
	var raw alias
	if err := wire.Decode(data, &raw, "template"); err != nil {
		return err
	}
	decoded := Template(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*t = decoded
	return nil
}
