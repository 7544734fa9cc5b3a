package ui

import (
	g "maragu.dev/gomponents"
)

// Icon shapes follow the lucide set, drawn on a 24x24 stroke grid.
var iconShapes = map[string][]g.Node{
	"globe": {
		circle("12", "12", "10"),
		path("M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"),
		path("M2 12h20"),
	},
	"server": {
		rect("2", "2", "20", "8"),
		rect("2", "14", "20", "8"),
		line("6", "6", "6.01", "6"),
		line("6", "18", "6.01", "18"),
	},
	"cloud": {
		path("M17.5 19H9a7 7 0 1 1 6.71-9h1.79a4.5 4.5 0 1 1 0 9Z"),
	},
	"shield": {
		path("M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"),
	},
	"alert-circle": {
		circle("12", "12", "10"),
		line("12", "8", "12", "12"),
		line("12", "16", "12.01", "16"),
	},
	"check-circle-2": {
		circle("12", "12", "10"),
		path("m9 12 2 2 4-4"),
	},
}

// Icon renders a decorative inline SVG. Unknown names render an empty svg
// so layout is kept.
func Icon(name, class string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("class", cn("icon", "icon-"+name, class)),
		g.Attr("data-icon", name),
		g.Group(iconShapes[name]),
	)
}

func path(d string) g.Node { return g.El("path", g.Attr("d", d)) }

func circle(cx, cy, r string) g.Node {
	return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r))
}

func rect(x, y, w, hgt string) g.Node {
	return g.El("rect", g.Attr("x", x), g.Attr("y", y), g.Attr("width", w), g.Attr("height", hgt), g.Attr("rx", "2"), g.Attr("ry", "2"))
}

func line(x1, y1, x2, y2 string) g.Node {
	return g.El("line", g.Attr("x1", x1), g.Attr("y1", y1), g.Attr("x2", x2), g.Attr("y2", y2))
}
