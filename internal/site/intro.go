package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed content/intro.md
var defaultIntro []byte

// Intro renders the introduction shown above the views. An empty path
// uses the built-in text.
func Intro(path string) (template.HTML, error) {
	src := defaultIntro
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading intro %s: %w", path, err)
		}
		src = data
	}
	return RenderMarkdown(src)
}

// RenderMarkdown converts markdown to HTML. Raw HTML in the source is
// omitted.
func RenderMarkdown(src []byte) (template.HTML, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Typographer))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
