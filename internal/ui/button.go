package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ButtonSize string

const (
	SizeDefault ButtonSize = "default"
	SizeLarge   ButtonSize = "lg"
)

var buttonSizes = map[ButtonSize]string{
	SizeDefault: "h-10 px-4 py-2",
	SizeLarge:   "h-11 rounded-md px-8",
}

const buttonBase = "btn inline-flex items-center justify-center rounded-md text-sm font-medium bg-primary text-primary-foreground"

// ButtonLink renders a link styled as a button. Navigation is a link so it
// works without scripting.
func ButtonLink(href string, size ButtonSize, label string) g.Node {
	sizeClass, ok := buttonSizes[size]
	if !ok {
		sizeClass = buttonSizes[SizeDefault]
	}
	return Link(href,
		h.Class(cn(buttonBase, sizeClass)),
		g.Attr("data-slot", "button"),
		g.Attr("data-size", string(size)),
		g.Text(label),
	)
}
