package terminal

import (
	"fmt"
	"io"
	"os"

	"workflows/internal/ports"
	"workflows/internal/theme"
)

// Reporter implements ports.Reporter by printing styled lines
type Reporter struct {
	out io.Writer
}

// Verify interface compliance at compile time
var _ ports.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to stdout
func NewReporter() *Reporter {
	return NewReporterTo(os.Stdout)
}

// NewReporterTo creates a Reporter writing to w
func NewReporterTo(w io.Writer) *Reporter {
	return &Reporter{out: w}
}

// CheckStarted prints a pending check line without a newline,
// CheckFinished overwrites it in place.
func (r *Reporter) CheckStarted(label string) {
	fmt.Fprintf(r.out, "[%s] %s...", theme.PendingMarkStyle.Render(theme.MarkPending), label)
}

// CheckFinished implements Reporter.CheckFinished
func (r *Reporter) CheckFinished(label string, passed bool) {
	mark := theme.FailedMarkStyle.Render(theme.MarkFailed)
	if passed {
		mark = theme.PassedMarkStyle.Render(theme.MarkPassed)
	}
	// Trailing spaces blank out the "..." of the pending line
	fmt.Fprintf(r.out, "\r[%s] %s   \n\n", mark, label)
}

// Note implements Reporter.Note
func (r *Reporter) Note(msg string) {
	fmt.Fprintf(r.out, "%s: %s\n\n", theme.NoteLabelStyle.Render("NOTE"), msg)
}

// Info implements Reporter.Info
func (r *Reporter) Info(msg string) {
	fmt.Fprintln(r.out, msg)
}

// Success implements Reporter.Success
func (r *Reporter) Success(msg string) {
	fmt.Fprintln(r.out, msg)
}
