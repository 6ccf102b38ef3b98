package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// ForgeBuilder compiles the project's contracts with forge
type ForgeBuilder struct {
	projectRoot string
	out         io.Writer
	log         *slog.Logger
}

// NewForgeBuilder creates a builder streaming forge output to out
func NewForgeBuilder(cfg *config.RuntimeConfig, out io.Writer, log *slog.Logger) *ForgeBuilder {
	return &ForgeBuilder{
		projectRoot: cfg.ProjectRoot,
		out:         out,
		log:         log.With("component", "ForgeBuilder"),
	}
}

// Build runs forge build in a pty so forge keeps its colored output
func (f *ForgeBuilder) Build(ctx context.Context) error {
	start := time.Now()
	f.log.Debug("running forge build", "dir", f.projectRoot)

	cmd := exec.CommandContext(ctx, "forge", "build")
	cmd.Dir = f.projectRoot

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start forge: %w", err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	// The pty returns EIO once the child exits
	if _, err := io.Copy(f.out, ptyFile); err != nil && !errors.Is(err, syscall.EIO) {
		f.log.Debug("forge output copy stopped", "error", err)
	}

	if err := cmd.Wait(); err != nil {
		f.log.Error("forge build failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("forge build failed: %w", err)
	}

	f.log.Debug("forge build completed successfully", "duration", time.Since(start))
	return nil
}

var _ usecase.ArtifactBuilder = (*ForgeBuilder)(nil)
