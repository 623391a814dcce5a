package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/plantlore/internal/analysis"
	"github.com/ziadkadry99/plantlore/internal/config"
	"github.com/ziadkadry99/plantlore/internal/report"
)

const sampleJSON = `{
  "texts": [
    {"title": "Plant Lore, Legends, and Lyrics", "author": "Richard Folkard", "total_words": 150000, "unique_words": 12000, "lexical_diversity": 0.08,
     "sentiment": {"positive": 0.25, "negative": 0.125, "neutral": 0.625, "compound": 0.5},
     "top_words": [{"word": "rose", "count": 500}]},
    {"title": "The Plant-Lore & Garden-Craft of Shakespeare", "author": "Henry N. Ellacombe", "total_words": 90000, "unique_words": 9000, "lexical_diversity": 0.1,
     "sentiment": {"positive": 0.1, "negative": 0.1, "neutral": 0.8, "compound": -0.25},
     "top_words": [{"word": "flower", "count": 300}]}
  ],
  "comparison": {"overlap_percentage": 33.33, "total_shared_words": 2000, "unique_to_first": 5000, "unique_to_second": 3000,
    "top_shared_words": [{"word": "leaf", "combined_count": 800}]},
  "metadata": {"sentiment_method": "VADER"}
}`

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	doc, err := analysis.Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rep, err := report.New(config.DefaultConfig(), doc)
	if err != nil {
		t.Fatalf("report.New: %v", err)
	}
	return New(cfg, rep, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestIndexShowsDefaultView(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `class="view" id="folkard-view"`) {
		t.Error("default view should be visible")
	}
	if !strings.Contains(body, `class="view hidden" id="comparison-view"`) {
		t.Error("comparison view should be hidden")
	}
	if !strings.Contains(body, `id="folkard-total-words">150,000<`) {
		t.Error("total words not formatted")
	}
	if !strings.Contains(body, `href="/style.css"`) {
		t.Error("stylesheet should be loaded from the root")
	}
}

func TestViewSelection(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, path := range []string{"/?view=comparison", "/views/comparison"} {
		w := get(t, srv, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `class="view" id="comparison-view"`) {
			t.Errorf("%s: comparison view should be visible", path)
		}
		if strings.Count(body, `class="view hidden"`) != 2 {
			t.Errorf("%s: other views should be hidden", path)
		}
		if !strings.Contains(body, `class="tab active" id="tab-comparison"`) {
			t.Errorf("%s: comparison tab should be active", path)
		}
	}

	// A selection does not leak into later requests.
	if body := get(t, srv, "/").Body.String(); !strings.Contains(body, `class="view" id="folkard-view"`) {
		t.Error("state leaked between requests")
	}
}

func TestUnknownView(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, path := range []string{"/views/nope", "/?view=nope"} {
		if w := get(t, srv, path); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestVennAndDocument(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/venn.svg")
	if w.Code != http.StatusOK {
		t.Fatalf("venn.svg: expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("venn.svg content type = %q", ct)
	}
	if n := strings.Count(w.Body.String(), "<circle"); n != 2 {
		t.Errorf("venn.svg has %d circles, want 2", n)
	}
	// Rendering twice draws the same chart.
	if again := get(t, srv, "/venn.svg").Body.String(); again != w.Body.String() {
		t.Error("venn.svg changed between requests")
	}

	w = get(t, srv, "/analysis.json")
	if w.Body.String() != sampleJSON {
		t.Error("analysis.json should be served as loaded")
	}
}

func TestAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wordcloud_folkard.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, Config{AssetsDir: dir})

	w := get(t, srv, "/assets/wordcloud_folkard.png")
	if w.Code != http.StatusOK || w.Body.String() != "png" {
		t.Errorf("asset: got %d %q", w.Code, w.Body.String())
	}
	if w := get(t, srv, "/assets/missing.png"); w.Code != http.StatusNotFound {
		t.Errorf("missing asset: expected 404, got %d", w.Code)
	}
}

func TestStaticServer(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>site</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := NewStatic(Config{}, dir, slog.New(slog.NewTextHandler(io.Discard, nil)))

	w := get(t, srv, "/")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "<h1>site</h1>") {
		t.Errorf("static index: got %d %q", w.Code, w.Body.String())
	}
	if w := get(t, srv, "/healthz"); w.Code != http.StatusOK {
		t.Errorf("healthz: expected 200, got %d", w.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}
