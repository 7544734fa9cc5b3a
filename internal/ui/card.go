package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Card(class string, children ...g.Node) g.Node {
	return h.Div(append(g.Group{
		h.Class(cn("card rounded-lg border bg-card text-card-foreground shadow-sm", class)),
		g.Attr("data-slot", "card"),
	}, children...)...)
}

func CardHeader(children ...g.Node) g.Node {
	return h.Div(append(g.Group{h.Class("card-header flex flex-col space-y-1.5 p-6")}, children...)...)
}

func CardTitle(class string, children ...g.Node) g.Node {
	return h.H3(append(g.Group{
		h.Class(cn("card-title text-2xl font-semibold leading-none tracking-tight", class)),
	}, children...)...)
}

func CardDescription(text string) g.Node {
	return h.P(h.Class("card-description text-sm text-muted-foreground"), g.Text(text))
}

func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(append(g.Group{h.Class(cn("card-content p-6 pt-0", class))}, children...)...)
}
