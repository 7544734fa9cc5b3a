package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/3-lines-studio/infraguide"
)

// RenderExportReport prints the pages and assets an export wrote.
func (o *Output) RenderExportReport(r *infraguide.ExportReport) {
	o.PrintSuccess("%d pages exported", r.Pages)

	width := 0
	for _, f := range r.Files {
		width = max(width, lipgloss.Width(f.Path))
	}
	pathStyle := lipgloss.NewStyle().Width(width + 2)

	fmt.Fprintln(o.out)
	for _, f := range r.Files {
		fmt.Fprintf(o.out, "    %s%s\n", pathStyle.Render(f.Path), o.Gray(humanize.Bytes(uint64(f.Size))))
	}
	fmt.Fprintln(o.out)

	o.PrintSuccess("Export complete in %s (%d files, %s)", formatDuration(r.Duration), len(r.Files), humanize.Bytes(uint64(r.TotalSize())))
	if r.Dir != "" {
		fmt.Fprintf(o.out, "\n  %s\n", o.Gray("Output: "+r.Dir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
