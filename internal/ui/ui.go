// Package ui is the component kit the views are composed from. Components
// are gomponents nodes; they take children and never fail.
package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// cn joins class lists, skipping empty ones.
func cn(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// Link is a plain navigation anchor.
func Link(href string, children ...g.Node) g.Node {
	return h.A(append(g.Group{h.Href(href)}, children...)...)
}
