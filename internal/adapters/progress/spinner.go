package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// SpinnerProgressReporter shows a spinner while transactions are pending and
// prints one line per confirmed step.
type SpinnerProgressReporter struct {
	out        io.Writer
	spinner    *spinner.Spinner
	stepStart  time.Time
	stepActive bool
}

// NewSpinnerProgressReporter creates a reporter writing to stdout
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return NewSpinnerProgressReporterTo(os.Stdout)
}

// NewSpinnerProgressReporterTo creates a reporter writing to out
func NewSpinnerProgressReporterTo(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.stepActive {
			r.stepStart = time.Now()
			r.stepActive = true
		}
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	r.stop()

	switch event.Stage {
	case usecase.ProgressTxConfirmed:
		fmt.Fprintf(r.out, "  %s %s%s\n", color.GreenString("✓"), event.Message, r.elapsed())
		if receipt, ok := event.Metadata.(*domain.TxReceipt); ok {
			fmt.Fprintf(r.out, "    %s\n", color.New(color.Faint).Sprint(receipt.Hash.Hex()))
		}
	case usecase.ProgressStageFailed:
		fmt.Fprintf(r.out, "  %s %s\n", color.RedString("✗"), event.Message)
	case usecase.ProgressConfirmed:
		fmt.Fprintf(r.out, "  %s Sent%s\n", color.GreenString("✓"), r.elapsed())
	}
	r.stepActive = false
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.CyanString(message))
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.RedString(message))
	})
}

// pause stops the spinner while fn prints and restarts it afterwards
func (r *SpinnerProgressReporter) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerProgressReporter) stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerProgressReporter) elapsed() string {
	if !r.stepActive {
		return ""
	}
	return color.New(color.Faint).Sprintf(" (%s)", time.Since(r.stepStart).Round(100*time.Millisecond))
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
