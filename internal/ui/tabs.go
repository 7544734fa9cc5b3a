package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TriggerID(id string) string { return "tab-trigger-" + id }

func PanelID(id string) string { return "tab-panel-" + id }

func state(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// Tabs is the container the client script binds to. defaultID is the tab
// shown when nothing has been selected.
func Tabs(defaultID string, children ...g.Node) g.Node {
	return h.Div(append(g.Group{
		h.Class("tabs"),
		g.Attr("data-tabs", ""),
		g.Attr("data-default", defaultID),
	}, children...)...)
}

func TabsList(class string, children ...g.Node) g.Node {
	return h.Div(append(g.Group{
		g.Attr("role", "tablist"),
		h.Class(cn("tabs-list inline-flex items-center rounded-md bg-muted p-1", class)),
	}, children...)...)
}

// TabsTrigger links to ?tab=id so selection also works without scripting.
func TabsTrigger(id, label string, active bool) g.Node {
	tabIndex := "-1"
	if active {
		tabIndex = "0"
	}
	return h.A(
		g.Attr("role", "tab"),
		h.ID(TriggerID(id)),
		h.Href("?tab="+id),
		h.Class("tabs-trigger inline-flex items-center justify-center rounded-sm px-3 py-1.5 text-sm font-medium"),
		g.Attr("data-tab", id),
		g.Attr("data-state", state(active)),
		g.Attr("aria-selected", boolAttr(active)),
		g.Attr("aria-controls", PanelID(id)),
		g.Attr("tabindex", tabIndex),
		g.Text(label),
	)
}

// TabsContent is a panel; every inactive panel carries the hidden attribute.
func TabsContent(id string, active bool, class string, children ...g.Node) g.Node {
	return h.Div(append(g.Group{
		g.Attr("role", "tabpanel"),
		h.ID(PanelID(id)),
		h.Class(cn("tabs-content mt-2", class)),
		g.Attr("data-tab", id),
		g.Attr("data-state", state(active)),
		g.Attr("aria-labelledby", TriggerID(id)),
		g.If(!active, g.Attr("hidden")),
	}, children...)...)
}
