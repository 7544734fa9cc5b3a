package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderParagraphAndInlineCode(t *testing.T) {
	r := New("")

	out, err := r.Render("Copy the `deploy.yml` file to `.github/workflows/`")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<p>")
	assert.Contains(t, html, "<code>deploy.yml</code>")
}

func TestRenderDropsRawHTML(t *testing.T) {
	r := New("")

	out, err := r.Render("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestRenderFencedCodeUsesClasses(t *testing.T) {
	r := New("")

	out, err := r.Render("```bash\nterraform init\n```\n")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `class="chroma"`)
	assert.Contains(t, html, "terraform")
	assert.NotContains(t, html, "style=")
}

func TestHighlight(t *testing.T) {
	r := New("")

	out, err := r.Highlight("git push origin main", "bash")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "<pre"))
	assert.Contains(t, string(out), "origin")

	out, err = r.Highlight("plain words", "no-such-language")
	require.NoError(t, err)
	assert.Contains(t, string(out), "plain words")
}

func TestCSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("github").CSS(&buf))
	assert.Contains(t, buf.String(), ".chroma")
}
