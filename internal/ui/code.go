package ui

import (
	"html/template"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CodeBlock wraps pre-rendered, highlighted HTML.
func CodeBlock(highlighted template.HTML) g.Node {
	return h.Div(h.Class("code-block bg-muted rounded-md overflow-x-auto"), g.Raw(string(highlighted)))
}

// Prose embeds HTML produced by the markdown renderer.
func Prose(rendered template.HTML) g.Node {
	return h.Div(h.Class("prose"), g.Raw(string(rendered)))
}
