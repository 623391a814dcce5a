package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/plantlore/internal/analysis"
	"github.com/ziadkadry99/plantlore/internal/nav"
	"github.com/ziadkadry99/plantlore/internal/progress"
	"github.com/ziadkadry99/plantlore/internal/view"
)

// Generator writes the report as a static site: one HTML file per view,
// an index showing the default view, the chart, the document and assets.
// Files are staged next to OutputDir and moved into it only after every
// one was written, so a failed run leaves OutputDir as it was.
type Generator struct {
	OutputDir   string
	AssetsDir   string
	Assets      []string
	DefaultView string

	Renderer *Renderer
	Reporter progress.Reporter
	Logger   *slog.Logger
}

// Manifest describes one generated site.
type Manifest struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	DefaultView string    `json:"default_view"`
	Files       []string  `json:"files"`
}

// ViewFile is the file name of a view's page.
func ViewFile(viewID string) string { return viewID + ".html" }

// Generate renders page into OutputDir. page must already be populated
// from doc.
func (g *Generator) Generate(doc *analysis.Document, page *view.Page) (*Manifest, error) {
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	assetsDir := g.AssetsDir
	if assetsDir == "" {
		assetsDir = "."
	}
	assets, err := MatchAssets(assetsDir, g.Assets)
	if err != nil {
		return nil, err
	}

	parent := filepath.Dir(filepath.Clean(g.OutputDir))
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("creating output parent dir: %w", err)
	}
	stage, err := os.MkdirTemp(parent, ".plantlore-stage-")
	if err != nil {
		return nil, fmt.Errorf("creating staging dir: %w", err)
	}
	defer os.RemoveAll(stage)

	ids := make([]string, len(g.Renderer.Views))
	for i, v := range g.Renderer.Views {
		ids[i] = v.ID
	}

	defaultView := g.DefaultView
	if defaultView == "" {
		defaultView = ids[0]
	}

	manifest := &Manifest{
		BuildID:     uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		DefaultView: defaultView,
	}
	written := func(name string) { manifest.Files = append(manifest.Files, name) }

	// style, index, views, chart, document, assets, manifest
	reporter.Start(1 + 1 + len(ids) + 1 + 1 + len(assets) + 1)
	defer reporter.Finish()

	if err := write(stage, "style.css", []byte(CSS())); err != nil {
		return nil, err
	}
	written("style.css")
	reporter.Step("style.css")

	pages := append([]string{defaultView}, ids...)
	for i, id := range pages {
		ctl, err := nav.New(ids, id)
		if err != nil {
			return nil, err
		}
		name := ViewFile(id)
		if i == 0 {
			name = "index.html"
		}
		var buf bytes.Buffer
		if err := g.Renderer.Render(&buf, page, ctl, func(v string) string { return ViewFile(v) }, doc.Metadata); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		if err := write(stage, name, buf.Bytes()); err != nil {
			return nil, err
		}
		written(name)
		reporter.Step(name)
	}

	var svgBuf bytes.Buffer
	if err := page.Canvas(view.SlotVenn).WriteSVG(&svgBuf); err != nil {
		return nil, fmt.Errorf("rendering venn.svg: %w", err)
	}
	if err := write(stage, "venn.svg", svgBuf.Bytes()); err != nil {
		return nil, err
	}
	written("venn.svg")
	reporter.Step("venn.svg")

	raw := doc.Raw
	if raw == nil {
		if raw, err = json.MarshalIndent(doc, "", "  "); err != nil {
			return nil, fmt.Errorf("encoding analysis.json: %w", err)
		}
	}
	if err := write(stage, "analysis.json", raw); err != nil {
		return nil, err
	}
	written("analysis.json")
	reporter.Step("analysis.json")

	for _, rel := range assets {
		src := filepath.Join(assetsDir, filepath.FromSlash(rel))
		dst := filepath.Join(stage, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return nil, fmt.Errorf("copying asset %s: %w", rel, err)
		}
		written(rel)
		reporter.Step(rel)
	}

	for _, v := range ids {
		if img := doc.Metadata.WordcloudImages[v]; img != "" && !contains(assets, img) {
			logger.Warn("word cloud image not copied; add it to assets", "view", v, "image", img)
		}
	}

	written("manifest.json")
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := write(stage, "manifest.json", data); err != nil {
		return nil, err
	}
	reporter.Step("manifest.json")

	if err := publish(stage, g.OutputDir, manifest.Files); err != nil {
		return nil, err
	}

	logger.Info("site generated", "dir", g.OutputDir, "files", len(manifest.Files), "build_id", manifest.BuildID)
	return manifest, nil
}

func write(dir, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// publish moves files from stage into dir. Other files in dir are left
// alone. manifest.json is listed last, so it only appears once the rest
// is in place.
func publish(stage, dir string, files []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	for _, rel := range files {
		src := filepath.Join(stage, filepath.FromSlash(rel))
		dst := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("publishing %s: %w", rel, err)
		}
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("publishing %s: %w", rel, err)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
