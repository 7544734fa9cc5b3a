package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Alert(class string, children ...g.Node) g.Node {
	return h.Div(append(g.Group{
		g.Attr("role", "alert"),
		h.Class(cn("alert relative w-full rounded-lg border p-4", class)),
	}, children...)...)
}

func AlertTitle(text string) g.Node {
	return h.H5(h.Class("alert-title mb-1 font-medium leading-none tracking-tight"), g.Text(text))
}

func AlertDescription(text string) g.Node {
	return h.Div(h.Class("alert-description text-sm"), g.Text(text))
}
