// Package assets bundles the stylesheet and script the pages link to and
// serves them under /dist/.
package assets

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/3-lines-studio/infraguide/internal/core"
)

//go:embed dist
var distFS embed.FS

const Prefix = "/dist/"

// Manifest maps an asset name to its versioned URL.
type Manifest map[string]string

type Bundle struct {
	files       map[string][]byte
	manifest    Manifest
	stylesheets []string
	scripts     []string
}

// NewBundle loads the embedded files and adds extra, which may override
// embedded ones. Stylesheets and scripts are linked in name order.
func NewBundle(extra map[string][]byte) (*Bundle, error) {
	files := make(map[string][]byte)

	err := fs.WalkDir(distFS, "dist", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := distFS.ReadFile(p)
		if err != nil {
			return err
		}
		files[strings.TrimPrefix(p, "dist/")] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load embedded assets: %w", err)
	}

	for name, data := range extra {
		if strings.Contains(name, "/") || name == "" {
			return nil, fmt.Errorf("invalid asset name %q", name)
		}
		files[name] = data
	}

	b := &Bundle{files: files, manifest: make(Manifest, len(files))}
	for _, name := range b.Names() {
		url := Prefix + name + "?v=" + core.HashContent(files[name])
		b.manifest[name] = url
		switch path.Ext(name) {
		case ".css":
			b.stylesheets = append(b.stylesheets, url)
		case ".js":
			b.scripts = append(b.scripts, url)
		}
	}
	return b, nil
}

// Names returns the asset names in sorted order.
func (b *Bundle) Names() []string {
	names := make([]string, 0, len(b.files))
	for name := range b.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type File struct {
	Name string
	Data []byte
}

// Files returns every asset in name order.
func (b *Bundle) Files() []File {
	names := b.Names()
	out := make([]File, len(names))
	for i, name := range names {
		out[i] = File{Name: name, Data: b.files[name]}
	}
	return out
}

func (b *Bundle) File(name string) ([]byte, bool) {
	data, ok := b.files[name]
	return data, ok
}

func (b *Bundle) Stylesheets() []string { return b.stylesheets }

func (b *Bundle) Scripts() []string { return b.scripts }

func (b *Bundle) Manifest() Manifest { return b.manifest }

func (b *Bundle) ManifestJSON() ([]byte, error) {
	data, err := json.MarshalIndent(b.manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode asset manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Handler serves assets by name. Mount it with the /dist/ prefix stripped
// or not; both forms are accepted.
func (b *Bundle) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		name := strings.TrimPrefix(req.URL.Path, Prefix)
		name = strings.TrimPrefix(name, "/")
		data, ok := b.files[name]
		if !ok {
			http.NotFound(w, req)
			return
		}

		if req.URL.Query().Get("v") != "" {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		w.Header().Set("Content-Type", core.GetContentType(name))
		w.Header().Set("ETag", core.ETag(data))
		_, _ = w.Write(data)
	})
}
