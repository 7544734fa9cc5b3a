// Package markdown converts guide prose and command snippets to HTML.
// Code is highlighted with chroma using CSS classes; the matching
// stylesheet comes from CSS.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

const DefaultStyle = "github"

type Renderer struct {
	md        goldmark.Markdown
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func New(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
					highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				),
			),
		),
		style:     styles.Get(style),
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// Render converts Markdown source to HTML. Raw HTML in the source is
// dropped.
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Highlight renders code as a highlighted <pre> block. Unknown languages
// fall back to plain text.
func (r *Renderer) Highlight(code, lang string) (template.HTML, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise %s snippet: %w", lang, err)
	}

	var buf bytes.Buffer
	if err := r.formatter.Format(&buf, r.style, it); err != nil {
		return "", fmt.Errorf("format %s snippet: %w", lang, err)
	}
	return template.HTML(buf.String()), nil
}

// CSS writes the stylesheet for the class-based highlighting output.
func (r *Renderer) CSS(w io.Writer) error {
	if err := r.formatter.WriteCSS(w, r.style); err != nil {
		return fmt.Errorf("write highlight css: %w", err)
	}
	return nil
}
