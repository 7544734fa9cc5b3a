package infraguide

import (
	"fmt"
	"net/http"

	"github.com/3-lines-studio/infraguide/internal/config"
	"github.com/3-lines-studio/infraguide/internal/content"
	"github.com/3-lines-studio/infraguide/internal/markdown"
	"github.com/3-lines-studio/infraguide/internal/tabs"
	"github.com/3-lines-studio/infraguide/internal/views"
)

const (
	HomeRoute  = "home"
	GuideRoute = "deployment-guide"
)

// DefaultRoutes returns the landing page at / and the deployment guide at
// site.GuidePath. The guide reads the selected tab from ?tab=.
func DefaultRoutes(site config.SiteConfig) ([]Route, error) {
	guide, err := views.NewGuide(markdown.New(site.HighlightStyle))
	if err != nil {
		return nil, fmt.Errorf("build guide: %w", err)
	}

	title := site.Title
	if title == "" {
		title = content.SiteTitle
	}

	home := Page("/", HomeRoute, func(*http.Request) (Document, error) {
		return Document{
			Title:       title,
			Description: content.SiteDescription,
			Body:        views.Landing(views.LandingOptions{GuidePath: site.GuidePath}),
		}, nil
	})

	deploy := Page(site.GuidePath, GuideRoute, func(req *http.Request) (Document, error) {
		state := tabs.Starting(tabs.Parse(req.URL.Query().Get("tab")))
		return Document{
			Title:       content.GuideTitle + " | " + title,
			Description: content.GuideDescription,
			Variant:     string(state.Active()),
			Body:        guide.Render(state),
		}, nil
	})

	return []Route{home, deploy}, nil
}
