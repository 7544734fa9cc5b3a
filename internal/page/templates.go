package page

import (
	"bytes"
	"fmt"
	"html/template"
)

const defaultTitle = "Multi-Region Infrastructure"

// Shell is the document wrapped around a rendered view body.
type Shell struct {
	Title       string
	Description string
	Body        template.HTML
	Stylesheets []string
	Scripts     []string
}

func RenderHTMLShell(s Shell) ([]byte, error) {
	if s.Title == "" {
		s.Title = defaultTitle
	}

	var buf bytes.Buffer
	if err := PageTemplate.Execute(&buf, s); err != nil {
		return nil, fmt.Errorf("render page shell: %w", err)
	}
	return buf.Bytes(), nil
}
