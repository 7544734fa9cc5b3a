package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestCn(t *testing.T) {
	assert.Equal(t, "a b", cn("a", "", "  ", "b"))
	assert.Equal(t, "", cn())
}

func TestCard(t *testing.T) {
	out := render(t, Card("mb-2",
		CardHeader(CardTitle("", g.Text("Title")), CardDescription("Desc")),
		CardContent("", g.Text("Body")),
	))

	assert.Contains(t, out, `data-slot="card"`)
	assert.Contains(t, out, "mb-2")
	assert.Contains(t, out, ">Title</h3>")
	assert.Contains(t, out, ">Desc</p>")
	assert.Contains(t, out, "Body")
}

func TestLink(t *testing.T) {
	assert.Equal(t, `<a href="/deployment-guide">Guide</a>`, render(t, Link("/deployment-guide", g.Text("Guide"))))
}

func TestButtonLink(t *testing.T) {
	out := render(t, ButtonLink("/deployment-guide", SizeLarge, "Go"))
	assert.True(t, strings.HasPrefix(out, `<a href="/deployment-guide"`))
	assert.Contains(t, out, `href="/deployment-guide"`)
	assert.Contains(t, out, `data-size="lg"`)
	assert.Contains(t, out, "px-8")

	out = render(t, ButtonLink("/", "huge", "Go"))
	assert.Contains(t, out, "px-4 py-2")
}

func TestTabsTriggerAndContent(t *testing.T) {
	active := render(t, TabsTrigger("cicd", "CI/CD Pipeline", true))
	assert.Contains(t, active, `aria-selected="true"`)
	assert.Contains(t, active, `data-state="active"`)
	assert.Contains(t, active, `href="?tab=cicd"`)
	assert.Contains(t, active, `aria-controls="tab-panel-cicd"`)

	inactive := render(t, TabsTrigger("vercel", "Vercel Integration", false))
	assert.Contains(t, inactive, `aria-selected="false"`)
	assert.Contains(t, inactive, `tabindex="-1"`)

	shown := render(t, TabsContent("cicd", true, ""))
	assert.NotContains(t, shown, " hidden")

	hidden := render(t, TabsContent("vercel", false, ""))
	assert.Contains(t, hidden, " hidden")
	assert.Contains(t, hidden, `data-state="inactive"`)
}

func TestIcon(t *testing.T) {
	out := render(t, Icon("globe", "h-5 w-5"))
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `data-icon="globe"`)
	assert.Contains(t, out, "<circle")

	unknown := render(t, Icon("nope", ""))
	assert.Contains(t, unknown, `data-icon="nope"`)
	assert.NotContains(t, unknown, "<path")
}

func TestAlert(t *testing.T) {
	out := render(t, Alert("mb-6", AlertTitle("Important"), AlertDescription("Read me")))
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, ">Important</h5>")
}
