package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// PipelineProgress prints a banner per stage and delegates transaction
// progress to the spinner.
type PipelineProgress struct {
	out     io.Writer
	spinner *SpinnerProgressReporter
}

// NewPipelineProgress creates a pipeline progress reporter writing to out
func NewPipelineProgress(out io.Writer) *PipelineProgress {
	return &PipelineProgress{
		out:     out,
		spinner: NewSpinnerProgressReporterTo(out),
	}
}

// OnProgress renders stage boundaries and forwards everything else
func (p *PipelineProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	switch event.Stage {
	case usecase.ProgressStageStarting:
		p.spinner.stop()
		step := color.New(color.FgCyan, color.Bold).Sprintf("[%d/%d]", event.Current, event.Total)
		fmt.Fprintf(p.out, "\n%s %s\n", step, color.New(color.Bold).Sprint(event.Message))
	case usecase.ProgressStageCompleted:
		p.spinner.stop()
		fmt.Fprintf(p.out, "%s %s\n", color.GreenString("✓ Completed:"), event.Message)
		if result, ok := event.Metadata.(*domain.StageResult); ok && result.Token != nil {
			fmt.Fprintf(p.out, "  token: %s\n", result.Token.Hex())
		}
		if result, ok := event.Metadata.(*domain.StageResult); ok && result.Pool != nil {
			fmt.Fprintf(p.out, "  pool:  %s\n", result.Pool.Hex())
		}
	default:
		p.spinner.OnProgress(ctx, event)
	}
}

// Info prints an info message
func (p *PipelineProgress) Info(message string) {
	p.spinner.Info(message)
}

// Error prints an error message
func (p *PipelineProgress) Error(message string) {
	p.spinner.Error(message)
}

// Ensure PipelineProgress implements ProgressSink
var _ usecase.ProgressSink = (*PipelineProgress)(nil)
