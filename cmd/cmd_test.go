package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/plantlore/internal/analysis"
)

const validDoc = `{
  "texts": [
    {"total_words": 150000, "unique_words": 12000, "lexical_diversity": 0.08,
     "sentiment": {"positive": 0.2, "negative": 0.1, "neutral": 0.7, "compound": 0.15},
     "top_words": [{"word": "rose", "count": 500}]},
    {"total_words": 90000, "unique_words": 9000, "lexical_diversity": 1.5,
     "sentiment": {"positive": 0.1, "negative": 0.1, "neutral": 0.8, "compound": -0.2},
     "top_words": []}
  ],
  "comparison": {"overlap_percentage": 33.33, "total_shared_words": 2000, "unique_to_first": 5000, "unique_to_second": 3000, "top_shared_words": []}
}`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml")}, args...))
	t.Cleanup(func() {
		validateCmd.Flags().Set("strict", "false")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analysis.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "plantlore ") {
		t.Errorf("version output = %q", out)
	}
}

func TestValidatePermissive(t *testing.T) {
	out, err := runCommand(t, "validate", writeDoc(t, validDoc))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "Folkard: 150,000 words, 12,000 unique, 1 top words") {
		t.Errorf("missing first text summary:\n%s", out)
	}
	if !strings.Contains(out, "Comparison: 33.33% overlap, 2,000 shared words") {
		t.Errorf("missing comparison summary:\n%s", out)
	}
	if !strings.Contains(out, "1 warning(s)") {
		t.Errorf("expected one warning:\n%s", out)
	}
}

func TestValidateStrict(t *testing.T) {
	_, err := runCommand(t, "validate", "--strict", writeDoc(t, validDoc))
	if !errors.Is(err, analysis.ErrLoadFailure) {
		t.Errorf("expected load failure, got %v", err)
	}
}

func TestValidateMalformed(t *testing.T) {
	_, err := runCommand(t, "validate", writeDoc(t, `{"texts": [}`))
	if !errors.Is(err, analysis.ErrLoadFailure) {
		t.Errorf("expected load failure, got %v", err)
	}
}

func TestSiteCommand(t *testing.T) {
	t.Setenv("CI", "true")
	out := filepath.Join(t.TempDir(), "site")
	t.Setenv("PLANTLORE_ANALYSIS", filepath.Join("..", "testdata", "analysis.json"))
	t.Setenv("PLANTLORE_ASSETS_DIR", t.TempDir())

	if _, err := runCommand(t, "site", "--output", out); err != nil {
		t.Fatalf("site: %v", err)
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `id="folkard-total-words">87,412<`) {
		t.Error("index.html should show the first text")
	}
	if !strings.Contains(string(index), "gillyvors") {
		t.Error("index.html should list the unique words")
	}
}

func TestSiteCommandLoadFailureWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	t.Setenv("PLANTLORE_ANALYSIS", filepath.Join(t.TempDir(), "absent.json"))

	_, err := runCommand(t, "site", "--output", out)
	if !errors.Is(err, analysis.ErrLoadFailure) {
		t.Fatalf("expected load failure, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); !os.IsNotExist(err) {
		t.Errorf("index.html should not exist after a failed load: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output dir should not be created after a failed load: %v", err)
	}
}
