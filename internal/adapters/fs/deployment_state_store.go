package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

var deploymentNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// DeploymentStateStoreAdapter implements DeploymentStateStore with one JSON
// file per named deployment under <data dir>/deployments.
type DeploymentStateStoreAdapter struct {
	dir string
}

// NewDeploymentStateStoreAdapter creates a new DeploymentStateStoreAdapter
func NewDeploymentStateStoreAdapter(cfg *config.RuntimeConfig) *DeploymentStateStoreAdapter {
	return &DeploymentStateStoreAdapter{
		dir: filepath.Join(cfg.DataDir, "deployments"),
	}
}

func (s *DeploymentStateStoreAdapter) path(name string) (string, error) {
	if !deploymentNamePattern.MatchString(name) {
		return "", &domain.ConfigError{Field: "deployment", Reason: fmt.Sprintf("invalid deployment name %q", name)}
	}
	return filepath.Join(s.dir, name+".json"), nil
}

// Load reads a deployment. Returns domain.ErrNotFound if the file does not exist.
func (s *DeploymentStateStoreAdapter) Load(_ context.Context, name string) (*domain.DeploymentState, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("deployment %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read deployment state file: %w", err)
	}

	var state domain.DeploymentState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse deployment state file: %w", err)
	}
	if state.Networks == nil {
		state.Networks = make(map[domain.NetworkKey]*domain.NetworkDeployment)
	}
	if state.Name == "" {
		state.Name = name
	}
	return &state, nil
}

// Save writes the deployment, replacing the previous file atomically.
func (s *DeploymentStateStoreAdapter) Save(_ context.Context, state *domain.DeploymentState) error {
	path, err := s.path(state.Name)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployment state: %w", err)
	}
	return writeFileAtomic(path, data)
}

// Delete removes the deployment file. Returns domain.ErrNotFound if absent.
func (s *DeploymentStateStoreAdapter) Delete(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("deployment %q: %w", name, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to delete deployment state file: %w", err)
	}
	return nil
}

// writeFileAtomic writes data next to path and renames it into place
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Ensure DeploymentStateStoreAdapter implements DeploymentStateStore
var _ usecase.DeploymentStateStore = (*DeploymentStateStoreAdapter)(nil)
