package views

import (
	"fmt"
	"html/template"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/infraguide/internal/content"
	"github.com/3-lines-studio/infraguide/internal/markdown"
	"github.com/3-lines-studio/infraguide/internal/tabs"
	"github.com/3-lines-studio/infraguide/internal/tfvars"
	"github.com/3-lines-studio/infraguide/internal/ui"
)

type step struct {
	title string
	body  template.HTML
	code  template.HTML
	list  []string
}

type section struct {
	title       string
	description string
	steps       []step
}

// Guide is the deployment guide with its Markdown and snippets rendered
// ahead of time, so rendering a tab selection cannot fail.
type Guide struct {
	sections map[tabs.ID]section
}

func NewGuide(md *markdown.Renderer) (*Guide, error) {
	vars, err := tfvars.Render(content.SampleVars)
	if err != nil {
		return nil, fmt.Errorf("render sample tfvars: %w", err)
	}

	sources := map[tabs.ID]content.Section{
		tabs.Terraform: content.TerraformSection(string(vars)),
		tabs.CICD:      content.CICDSection,
		tabs.Vercel:    content.VercelSection,
	}

	gd := &Guide{sections: make(map[tabs.ID]section, len(sources))}
	for id, src := range sources {
		sec, err := prepareSection(md, src)
		if err != nil {
			return nil, fmt.Errorf("prepare %s panel: %w", id, err)
		}
		gd.sections[id] = sec
	}
	return gd, nil
}

func prepareSection(md *markdown.Renderer, src content.Section) (section, error) {
	sec := section{
		title:       src.Title,
		description: src.Description,
		steps:       make([]step, 0, len(src.Steps)),
	}
	for _, s := range src.Steps {
		out := step{title: s.Title, list: s.List}
		if s.Body != "" {
			body, err := md.Render(s.Body)
			if err != nil {
				return section{}, fmt.Errorf("step %q: %w", s.Title, err)
			}
			out.body = body
		}
		if s.Code != "" {
			code, err := md.Highlight(s.Code, s.Lang)
			if err != nil {
				return section{}, fmt.Errorf("step %q: %w", s.Title, err)
			}
			out.code = code
		}
		sec.steps = append(sec.steps, out)
	}
	return sec, nil
}

// Render draws the guide with state's tab visible and every other panel
// hidden.
func (gd *Guide) Render(state tabs.State) g.Node {
	all := tabs.All()

	return h.Div(
		h.Class("container mx-auto py-10"),
		h.H1(h.Class("text-3xl font-bold mb-6"), g.Text(content.GuideTitle)),
		ui.Alert("mb-6",
			ui.Icon(string(content.IconAlertCircle), "h-4 w-4"),
			ui.AlertTitle(content.GuideNotice.Title),
			ui.AlertDescription(content.GuideNotice.Body),
		),
		ui.Tabs(string(tabs.Default),
			ui.TabsList("grid w-full grid-cols-4",
				g.Map(all, func(t tabs.Tab) g.Node {
					return ui.TabsTrigger(string(t.ID), t.Label, state.IsActive(t.ID))
				}),
			),
			g.Map(all, func(t tabs.Tab) g.Node {
				return ui.TabsContent(string(t.ID), state.IsActive(t.ID), "space-y-4", gd.panel(t.ID))
			}),
		),
	)
}

func (gd *Guide) panel(id tabs.ID) g.Node {
	if id == tabs.Prerequisites {
		return g.Group{
			checklistCard("tools", content.RequiredTools),
			checklistCard("credentials", content.RequiredCredentials),
		}
	}
	return sectionCard(gd.sections[id])
}

func checklistCard(kind string, list content.Checklist) g.Node {
	return ui.Card("", g.Attr("data-checklist", kind),
		ui.CardHeader(
			ui.CardTitle("", g.Text(list.Title)),
			ui.CardDescription(list.Description),
		),
		ui.CardContent("space-y-2", g.Map(list.Items, checkItem)),
	)
}

func checkItem(item content.CheckItem) g.Node {
	return h.Div(
		h.Class("flex items-start gap-2"),
		g.Attr("data-check-item", ""),
		ui.Icon(string(content.IconCheckCircle), "h-5 w-5 text-green-500 mt-0.5"),
		h.Div(
			h.P(h.Class("font-medium"), g.Text(item.Label)),
			h.P(h.Class("text-sm text-muted-foreground"), g.Text(item.Note)),
		),
	)
}

func sectionCard(sec section) g.Node {
	steps := make([]g.Node, len(sec.steps))
	for i, s := range sec.steps {
		steps[i] = stepBlock(i+1, s)
	}

	return ui.Card("",
		ui.CardHeader(
			ui.CardTitle("", g.Text(sec.title)),
			ui.CardDescription(sec.description),
		),
		ui.CardContent("space-y-4", g.Group(steps)),
	)
}

func stepBlock(n int, s step) g.Node {
	return h.Div(
		g.Attr("data-step", strconv.Itoa(n)),
		h.H3(h.Class("text-lg font-medium mb-2"), g.Textf("%d. %s", n, s.title)),
		g.If(s.body != "", ui.Prose(s.body)),
		g.If(len(s.list) > 0, h.Ul(
			h.Class("list-disc pl-6 space-y-1 mt-2"),
			g.Map(s.list, func(item string) g.Node { return h.Li(g.Text(item)) }),
		)),
		g.If(s.code != "", ui.CodeBlock(s.code)),
	)
}
