package infraguide

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/3-lines-studio/infraguide/internal/assets"
	"github.com/3-lines-studio/infraguide/internal/core"
)

const manifestName = "manifest.json"

type ExportedFile struct {
	// Path is relative to the export directory, slash separated.
	Path string
	Size int64
	Page string
}

type ExportReport struct {
	Dir      string
	Files    []ExportedFile
	Pages    int
	Duration time.Duration
}

func (r *ExportReport) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	return total
}

// Export renders every route to dir as <route>/index.html and writes the
// assets under dir/dist together with their manifest. Guide pages are
// rendered with the default tab selected.
func (a *App) Export(ctx context.Context, dir string) (*ExportReport, error) {
	start := time.Now()
	report := &ExportReport{Dir: dir}

	if err := a.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	for _, route := range a.routes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, core.NormalizePath(route.Pattern), nil)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", route.Name, err)
		}
		body, err := a.handlers[route.Pattern].Render(req)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", route.Name, err)
		}

		rel := core.ExportPathForRoute(route.Pattern)
		if err := a.write(dir, rel, body); err != nil {
			return nil, err
		}
		report.Files = append(report.Files, ExportedFile{Path: rel, Size: int64(len(body)), Page: route.Name})
		report.Pages++
		a.logger.Debug("exported page", "page", route.Name, "path", rel)
	}

	distDir := filepath.Join(dir, filepath.FromSlash(assets.Prefix[1:]))
	if err := a.fs.RemoveAll(distDir); err != nil {
		return nil, fmt.Errorf("clean assets dir: %w", err)
	}

	for _, f := range a.bundle.Files() {
		rel := assets.Prefix[1:] + f.Name
		if err := a.write(dir, rel, f.Data); err != nil {
			return nil, err
		}
		report.Files = append(report.Files, ExportedFile{Path: rel, Size: int64(len(f.Data))})
	}

	manifest, err := a.bundle.ManifestJSON()
	if err != nil {
		return nil, err
	}
	rel := assets.Prefix[1:] + manifestName
	if err := a.write(dir, rel, manifest); err != nil {
		return nil, err
	}
	report.Files = append(report.Files, ExportedFile{Path: rel, Size: int64(len(manifest))})

	report.Duration = time.Since(start)
	a.logger.Info("export complete", "dir", dir, "pages", report.Pages, "files", len(report.Files))
	return report, nil
}

func (a *App) write(dir, rel string, data []byte) error {
	target := filepath.Join(dir, filepath.FromSlash(rel))
	if err := a.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}
	if err := a.fs.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
