package progress

import (
	"context"
	"io"
	"os"

	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// NopSink is a no-op implementation of ProgressSink
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

func (n *NopSink) OnProgress(context.Context, usecase.ProgressEvent) {}
func (n *NopSink) Info(string)                                       {}
func (n *NopSink) Error(string)                                      {}

// ProvideProgressSink stays silent when output is JSON
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	return progressSinkFor(cfg, os.Stdout)
}

func progressSinkFor(cfg *config.RuntimeConfig, out io.Writer) usecase.ProgressSink {
	if cfg.JSON {
		return NewNopSink()
	}
	return NewPipelineProgress(out)
}

// Ensure NopSink implements ProgressSink
var _ usecase.ProgressSink = (*NopSink)(nil)
