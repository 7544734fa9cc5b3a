package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/infraguide/internal/content"
	"github.com/3-lines-studio/infraguide/internal/ui"
)

type LandingOptions struct {
	// GuidePath is where the navigation control points.
	GuidePath string
}

// Landing renders the marketing page: title, four feature cards and a
// single link to the deployment guide.
func Landing(opts LandingOptions) g.Node {
	return h.Main(
		h.Class("flex min-h-screen flex-col items-center justify-between p-24"),
		h.Div(
			h.Class("z-10 max-w-5xl w-full items-center justify-between font-mono text-sm"),
			h.H1(h.Class("text-4xl font-bold text-center mb-8"), g.Text(content.SiteTitle)),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 gap-6 mb-12"),
				g.Map(content.Features, featureCard),
			),
			h.Div(
				h.Class("text-center"),
				g.Attr("data-nav", "guide"),
				ui.ButtonLink(opts.GuidePath, ui.SizeLarge, content.GuideCTA),
			),
		),
	)
}

func featureCard(f content.Feature) g.Node {
	return ui.Card("", g.Attr("data-feature", f.Title),
		ui.CardHeader(
			ui.CardTitle("flex items-center gap-2",
				ui.Icon(string(f.Icon), "h-5 w-5"),
				g.Text(f.Title),
			),
			ui.CardDescription(f.Description),
		),
		ui.CardContent("", h.P(g.Text(f.Body))),
	)
}
