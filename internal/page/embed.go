package page

import (
	_ "embed"
	"html/template"
)

//go:embed page.html
var pageTemplateSource string

//go:embed error.html
var errorTemplateSource string

// PageTemplate renders a Shell. ErrorTemplate renders errorData and is
// served with status 500.
var (
	PageTemplate  = mustParse("page.html", pageTemplateSource)
	ErrorTemplate = mustParse("error.html", errorTemplateSource)
)

func mustParse(name, src string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(src))
}
