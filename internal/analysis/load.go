package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Loader fetches and decodes an analysis document. The zero value is not
// usable; call NewLoader.
type Loader struct {
	client *resty.Client
	logger *slog.Logger

	// Strict rejects documents whose values fall outside their documented
	// ranges. When false such values are logged and rendered as given.
	Strict bool
}

// NewLoader returns a Loader. A nil logger uses slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	return &Loader{client: client, logger: logger}
}

// WithClient replaces the HTTP client used for remote locations.
func (l *Loader) WithClient(c *resty.Client) *Loader {
	l.client = c
	return l
}

// IsRemote reports whether location is fetched over HTTP.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load performs a single fetch of location (a file path or an http(s) URL)
// and returns the decoded document. Every error matches ErrLoadFailure.
func (l *Loader) Load(ctx context.Context, location string) (*Document, error) {
	raw, err := l.fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(raw)
	if err != nil {
		return nil, &LoadError{Location: location, Op: "decode", Err: err}
	}

	if err := doc.Validate(); err != nil {
		return nil, &LoadError{Location: location, Op: "validate", Err: err}
	}

	if problems := doc.Problems(); len(problems) > 0 {
		if l.Strict {
			return nil, &LoadError{Location: location, Op: "validate", Err: &ValidationError{Problems: problems}}
		}
		for _, p := range problems {
			l.logger.Warn("analysis value out of range", "location", location, "problem", p)
		}
	}

	l.logger.Debug("analysis document loaded",
		"location", location,
		"bytes", len(raw),
		"shared_words", doc.Comparison.TotalSharedWords)
	return doc, nil
}

func (l *Loader) fetch(ctx context.Context, location string) ([]byte, error) {
	if !IsRemote(location) {
		raw, err := os.ReadFile(location)
		if err != nil {
			return nil, &LoadError{Location: location, Op: "read", Err: err}
		}
		return raw, nil
	}

	resp, err := l.client.R().SetContext(ctx).Get(location)
	if err != nil {
		return nil, &LoadError{Location: location, Op: "fetch", Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &LoadError{Location: location, Op: "fetch", Err: &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()}}
	}
	return resp.Body(), nil
}

// Decode parses raw JSON into a Document without validating it. raw must
// hold exactly one JSON value.
func Decode(raw []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the document at offset %d", dec.InputOffset())
	}
	s, err := decodeShape(raw)
	if err != nil {
		return nil, err
	}
	doc.shape = s
	doc.Raw = raw
	return &doc, nil
}
