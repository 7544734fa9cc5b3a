package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Output prints status lines. Colors follow the terminal capabilities of
// the writer, so redirected output stays plain.
type Output struct {
	out    io.Writer
	errOut io.Writer
	green  lipgloss.Style
	yellow lipgloss.Style
	red    lipgloss.Style
	gray   lipgloss.Style
	bold   lipgloss.Style
}

func NewOutput(out, errOut io.Writer) *Output {
	r := lipgloss.NewRenderer(out)
	return &Output{
		out:    out,
		errOut: errOut,
		green:  r.NewStyle().Foreground(lipgloss.Color("2")),
		yellow: r.NewStyle().Foreground(lipgloss.Color("3")),
		red:    r.NewStyle().Foreground(lipgloss.Color("1")),
		gray:   r.NewStyle().Foreground(lipgloss.Color("8")),
		bold:   r.NewStyle().Bold(true),
	}
}

func (o *Output) Green(text string) string  { return o.green.Render(text) }
func (o *Output) Yellow(text string) string { return o.yellow.Render(text) }
func (o *Output) Red(text string) string    { return o.red.Render(text) }
func (o *Output) Gray(text string) string   { return o.gray.Render(text) }

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, o.bold.Render(msg))
	fmt.Fprintln(o.out)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.Green("✓ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.Yellow("⚠ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	fmt.Fprintf(o.errOut, "  %s%s\n", o.Red("✗ "), fmt.Sprintf(msg, args...))
}
