package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// PackProgressReporter renders packaging progress with a progress bar.
type PackProgressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

// NewPackProgressReporter creates a new pack progress reporter.
func NewPackProgressReporter(quiet bool) *PackProgressReporter {
	return &PackProgressReporter{quiet: quiet}
}

// OnFile is a pack.ProgressFunc: called once per packaged file.
func (r *PackProgressReporter) OnFile(done, total int, file string) {
	if r.quiet {
		return
	}
	if r.bar == nil {
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Packaging files"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files/s"),
		)
	}
	r.bar.Add(1)
}

// Finish completes the bar so the shell prompt starts on a fresh line.
func (r *PackProgressReporter) Finish() {
	if r.quiet || r.bar == nil {
		return
	}
	r.bar.Finish()
	fmt.Println()
}
