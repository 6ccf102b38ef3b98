package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// TransferHistoryStoreAdapter keeps transfer attempts in transfers.json,
// oldest first.
type TransferHistoryStoreAdapter struct {
	path string
	mu   sync.Mutex
}

// NewTransferHistoryStoreAdapter creates a new TransferHistoryStoreAdapter
func NewTransferHistoryStoreAdapter(cfg *config.RuntimeConfig) *TransferHistoryStoreAdapter {
	return &TransferHistoryStoreAdapter{
		path: filepath.Join(cfg.DataDir, "transfers.json"),
	}
}

// Append adds attempt to the history. An attempt with an id already present
// replaces the stored entry.
func (s *TransferHistoryStoreAdapter) Append(_ context.Context, attempt *domain.TransferAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempts, err := s.read()
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range attempts {
		if existing.ID == attempt.ID {
			attempts[i] = attempt
			replaced = true
			break
		}
	}
	if !replaced {
		attempts = append(attempts, attempt)
	}

	data, err := json.MarshalIndent(attempts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transfer history: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// List returns every recorded attempt, oldest first
func (s *TransferHistoryStoreAdapter) List(_ context.Context) ([]*domain.TransferAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *TransferHistoryStoreAdapter) read() ([]*domain.TransferAttempt, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read transfer history: %w", err)
	}
	var attempts []*domain.TransferAttempt
	if err := json.Unmarshal(data, &attempts); err != nil {
		return nil, fmt.Errorf("failed to parse transfer history: %w", err)
	}
	return attempts, nil
}

// Ensure TransferHistoryStoreAdapter implements TransferHistoryStore
var _ usecase.TransferHistoryStore = (*TransferHistoryStoreAdapter)(nil)
