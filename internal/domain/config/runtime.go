package config

import (
	"time"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Deployment string            // Name of the pipeline state file
	Network    domain.NetworkKey // Empty if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration
	Confirmations  uint64
	Debounce       time.Duration

	// Resolved configurations
	Networks   []domain.Descriptor
	Signer     SignerConfig
	Foundry    *FoundryConfig
	Token      TokenDefaults
	Pool       PoolDefaults
	RateLimits domain.RateLimits
	Functions  FunctionsConfig
}

type SignerType string

var (
	SignerTypeNone       SignerType = ""
	SignerTypePrivateKey SignerType = "private_key"
	SignerTypeRemote     SignerType = "remote"
)

// SignerConfig selects the wallet used to sign transactions
type SignerConfig struct {
	Type       SignerType
	PrivateKey string //nolint:gosec // resolved from the environment, never written back
	Endpoint   string // JSON-RPC endpoint exposing eth_signTransaction
	APIKey     string
	Address    string // Account for remote signers
}

// TokenDefaults are the default constructor arguments for deploy-token
type TokenDefaults struct {
	Name      string
	Symbol    string
	Decimals  uint8
	MaxSupply string
	PreMint   string
}

// PoolDefaults are the default constructor arguments for deploy-pool
type PoolDefaults struct {
	LocalTokenDecimals uint8
	Allowlist          []string
	AdminMode          string
}

// FunctionsConfig holds defaults for Chainlink Functions requests
type FunctionsConfig struct {
	Network        domain.NetworkKey
	Consumer       string
	SubscriptionID uint64
	GasLimit       uint32
	DonID          string
	Confirmations  uint64
	SourceFile     string
}
