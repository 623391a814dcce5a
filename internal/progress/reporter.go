// Package progress reports the files written during site generation.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Step per file written.
type Reporter interface {
	Start(total int)
	Step(file string)
	Finish()
}

// NewReporter returns a progress bar on an interactive stderr and a line
// reporter in CI or when stderr is redirected.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" || !isatty.IsTerminal(os.Stderr.Fd()) {
		return &LineReporter{Out: os.Stderr}
	}
	return &BarReporter{Out: os.Stderr}
}

// BarReporter draws a progress bar.
type BarReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Writing site"),
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Step(file string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(file)
	_ = r.bar.Add(1)
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per file, for logs.
type LineReporter struct {
	Out   io.Writer
	total int
	done  int
}

func (r *LineReporter) Start(total int) {
	r.total, r.done = total, 0
	fmt.Fprintf(r.Out, "writing %d files\n", total)
}

func (r *LineReporter) Step(file string) {
	r.done++
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", r.done, r.total, file)
}

func (r *LineReporter) Finish() {
	fmt.Fprintf(r.Out, "wrote %d of %d files\n", r.done, r.total)
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)   {}
func (Nop) Step(string) {}
func (Nop) Finish()     {}
