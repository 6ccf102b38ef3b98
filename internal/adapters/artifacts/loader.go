package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
)

// foundryArtifact is the part of a Foundry artifact we deploy from
type foundryArtifact struct {
	Bytecode struct {
		Object string `json:"object"`
	} `json:"bytecode"`
}

// Loader reads creation bytecode from Foundry's out directory
type Loader struct {
	outDir string

	mu    sync.Mutex
	cache map[string][]byte
}

// NewLoader creates a Loader for the project's configured out directory
func NewLoader(cfg *config.RuntimeConfig) *Loader {
	outDir := cfg.Foundry.OutDir()
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(cfg.ProjectRoot, outDir)
	}
	return &Loader{outDir: outDir, cache: make(map[string][]byte)}
}

// Path returns the artifact file for a contract name
func (l *Loader) Path(name string) string {
	return filepath.Join(l.outDir, name+".sol", name+".json")
}

// Bytecode returns the creation code of contract name
func (l *Loader) Bytecode(name string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if code, ok := l.cache[name]; ok {
		return code, nil
	}

	path := l.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: artifact %s (run `treb-ccip contracts build`)", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var artifact foundryArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	object := artifact.Bytecode.Object
	if object == "" || object == "0x" {
		return nil, fmt.Errorf("artifact %s has no bytecode (abstract contract or interface?)", path)
	}
	if strings.Contains(object, "__$") {
		return nil, fmt.Errorf("artifact %s has unlinked library references", path)
	}
	if !strings.HasPrefix(object, "0x") {
		object = "0x" + object
	}

	code, err := hexutil.Decode(object)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}
	l.cache[name] = code
	return code, nil
}
