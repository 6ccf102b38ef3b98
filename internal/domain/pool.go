package domain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenParams are the constructor arguments for a burn/mint token.
type TokenParams struct {
	Name      string
	Symbol    string
	Decimals  uint8
	MaxSupply *big.Int
	PreMint   *big.Int
}

// MaxTokenDecimals bounds the decimals accepted for new tokens.
const MaxTokenDecimals = 36

// Validate checks the token parameters before anything is submitted.
func (p TokenParams) Validate() error {
	if p.Name == "" {
		return &ConfigError{Field: "token.name", Reason: "name is required"}
	}
	if p.Symbol == "" {
		return &ConfigError{Field: "token.symbol", Reason: "symbol is required"}
	}
	if p.Decimals > MaxTokenDecimals {
		return &ConfigError{Field: "token.decimals", Reason: fmt.Sprintf("decimals must be at most %d", MaxTokenDecimals)}
	}
	if p.MaxSupply != nil && p.MaxSupply.Sign() < 0 {
		return &ConfigError{Field: "token.max_supply", Reason: "max supply cannot be negative"}
	}
	if p.PreMint != nil && p.PreMint.Sign() < 0 {
		return &ConfigError{Field: "token.pre_mint", Reason: "pre-mint cannot be negative"}
	}
	if p.MaxSupply != nil && p.MaxSupply.Sign() > 0 && p.PreMint != nil && p.PreMint.Cmp(p.MaxSupply) > 0 {
		return &ConfigError{Field: "token.pre_mint", Reason: "pre-mint exceeds max supply"}
	}
	return nil
}

// PoolParams are the constructor arguments for a burn/mint token pool.
type PoolParams struct {
	Token              common.Address
	LocalTokenDecimals uint8
	Allowlist          []common.Address
	RMNProxy           common.Address
	Router             common.Address
}

// RateLimiterConfig bounds token throughput in one direction.
type RateLimiterConfig struct {
	IsEnabled bool
	Capacity  *big.Int
	Rate      *big.Int
}

// DisabledRateLimiter is the limiter used when none is configured.
func DisabledRateLimiter() RateLimiterConfig {
	return RateLimiterConfig{IsEnabled: false, Capacity: big.NewInt(0), Rate: big.NewInt(0)}
}

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Validate checks the limiter fits the on-chain uint128 fields.
func (c RateLimiterConfig) Validate() error {
	for name, v := range map[string]*big.Int{"capacity": c.Capacity, "rate": c.Rate} {
		if v == nil {
			return &ConfigError{Field: "rate_limits." + name, Reason: "value is required"}
		}
		if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
			return &ConfigError{Field: "rate_limits." + name, Reason: "value must fit in uint128"}
		}
	}
	if c.IsEnabled && (c.Capacity.Sign() == 0 || c.Rate.Sign() == 0) {
		return &ConfigError{Field: "rate_limits", Reason: "enabled limiter needs non-zero capacity and rate"}
	}
	return nil
}

// RateLimits holds both directions of a pool's limiter configuration.
type RateLimits struct {
	Outbound RateLimiterConfig
	Inbound  RateLimiterConfig
}

// DefaultRateLimits disables both directions.
func DefaultRateLimits() RateLimits {
	return RateLimits{Outbound: DisabledRateLimiter(), Inbound: DisabledRateLimiter()}
}

// ChainUpdate describes a remote chain to add to a token pool.
type ChainUpdate struct {
	RemoteChainSelector uint64
	RemotePoolAddresses [][]byte
	RemoteTokenAddress  []byte
	Outbound            RateLimiterConfig
	Inbound             RateLimiterConfig
}

// AdminClaimMode selects how the registry module proposes the administrator.
type AdminClaimMode string

const (
	AdminViaOwner     AdminClaimMode = "owner"
	AdminViaCCIPAdmin AdminClaimMode = "ccip-admin"
)

// ParseAdminClaimMode validates the mode string.
func ParseAdminClaimMode(s string) (AdminClaimMode, error) {
	switch AdminClaimMode(s) {
	case AdminViaOwner, "":
		return AdminViaOwner, nil
	case AdminViaCCIPAdmin:
		return AdminViaCCIPAdmin, nil
	}
	return "", &ConfigError{Field: "admin_mode", Reason: fmt.Sprintf("unknown admin claim mode %q", s)}
}

// TokenMetadata are the immutable ERC20 descriptors of a token.
type TokenMetadata struct {
	Address  common.Address
	Symbol   string
	Decimals uint8
}
