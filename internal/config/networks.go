package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// NetworksFile is the optional per-project override file.
const NetworksFile = "networks.toml"

func addr(hex string) common.Address { return common.HexToAddress(hex) }

func addrPtr(hex string) *common.Address {
	a := common.HexToAddress(hex)
	return &a
}

// DefaultDescriptors is the compiled-in network table.
func DefaultDescriptors() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Key:                 domain.NetworkFuji,
			ChainID:             43113,
			Name:                "Avalanche Fuji",
			ChainSelector:       14767482510784806043,
			Router:              addr("0xF694E193200268f9a4868e4Aa017A0118C9a8177"),
			TokenAdminRegistry:  addr("0x3F3a9E5e0D7dd1e7bC9c011a1DaaB3C1c122dAf8"),
			RegistryModuleOwner: addr("0x3e1a1cF16A5cA0Ae422c965c5d5F40e9F0F1a0c6"),
			FeeToken:            addrPtr("0x0b9d5D9136855f6FEc3c0993feE6E9CE8a297846"),
			RMNProxy:            addrPtr("0xAc8CFc3762a979628334a0E4C1026244498E821b"),
			FunctionsRouter:     "0x234a5fb5Bd614a7AA2FfAB244D603abFA0Ac5C5C",
			NativeSymbol:        "AVAX",
			RPCURL:              "https://api.avax-test.network/ext/bc/C/rpc",
			ExplorerURL:         "https://testnet.snowtrace.io",
		},
		{
			Key:                 domain.NetworkArbitrum,
			ChainID:             421614,
			Name:                "Arbitrum Sepolia",
			ChainSelector:       3478487238524512106,
			Router:              addr("0x2a9C5afB0d0e4BAb2BCdaE109EC4b0c4Be15a165"),
			TokenAdminRegistry:  addr("0x3F3a9E5e0D7dd1e7bC9c011a1DaaB3C1c122dAf8"),
			RegistryModuleOwner: addr("0x3e1a1cF16A5cA0Ae422c965c5d5F40e9F0F1a0c6"),
			FeeToken:            addrPtr("0xb1D4538B4571d411F07960EF2838Ce337FE1E80E"),
			RMNProxy:            addrPtr("0x9527E2d01A3064ef6b50c1Da1C0cC523803BCFF2"),
			FunctionsRouter:     "0x234a5fb5Bd614a7AA2FfAB244D603abFA0Ac5C5C",
			NativeSymbol:        "ETH",
			RPCURL:              "https://sepolia-rollup.arbitrum.io/rpc",
			ExplorerURL:         "https://sepolia.arbiscan.io",
		},
	}
}

// networkOverride is one [networks.<key>] table of networks.toml.
type networkOverride struct {
	RPCURL              string `toml:"rpc_url"`
	ExplorerURL         string `toml:"explorer_url"`
	ChainSelector       string `toml:"chain_selector"`
	Router              string `toml:"router"`
	TokenAdminRegistry  string `toml:"token_admin_registry"`
	RegistryModuleOwner string `toml:"registry_module"`
	Link                string `toml:"link"`
	RMNProxy            string `toml:"rmn_proxy"`
	FunctionsRouter     string `toml:"functions_router"`
}

type networksTOML struct {
	Networks map[string]networkOverride `toml:"networks"`
}

// LoadDescriptors returns the default table with networks.toml overrides and
// <KEY>_RPC_URL environment variables applied.
func LoadDescriptors(projectRoot string) ([]domain.Descriptor, error) {
	descriptors := DefaultDescriptors()

	overrides := map[string]networkOverride{}
	path := filepath.Join(projectRoot, NetworksFile)
	if _, err := os.Stat(path); err == nil {
		var raw networksTOML
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", NetworksFile, err)
		}
		overrides = raw.Networks
	}

	for name := range overrides {
		if _, err := domain.ParseNetworkKey(name); err != nil {
			return nil, fmt.Errorf("%s: %w", NetworksFile, err)
		}
	}

	for i := range descriptors {
		d := &descriptors[i]
		for name, o := range overrides {
			key, _ := domain.ParseNetworkKey(name)
			if key != d.Key {
				continue
			}
			if err := applyOverride(d, o); err != nil {
				return nil, err
			}
		}
		if rpc := os.Getenv(RPCEnvVar(d.Key)); rpc != "" {
			d.RPCURL = rpc
		}
	}

	return descriptors, nil
}

// RPCEnvVar is the environment variable overriding a network's RPC URL.
// Example: fuji -> FUJI_RPC_URL
func RPCEnvVar(key domain.NetworkKey) string {
	name := strings.ToUpper(string(key))
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

func applyOverride(d *domain.Descriptor, o networkOverride) error {
	if v := os.ExpandEnv(o.RPCURL); v != "" {
		d.RPCURL = v
	}
	if v := os.ExpandEnv(o.ExplorerURL); v != "" {
		d.ExplorerURL = v
	}
	if o.ChainSelector != "" {
		selector, err := strconv.ParseUint(o.ChainSelector, 10, 64)
		if err != nil {
			return &domain.ConfigError{Network: d.Key, Field: "chain_selector", Reason: err.Error()}
		}
		d.ChainSelector = selector
	}

	addresses := []struct {
		field string
		raw   string
		set   func(common.Address)
	}{
		{"router", o.Router, func(a common.Address) { d.Router = a }},
		{"token_admin_registry", o.TokenAdminRegistry, func(a common.Address) { d.TokenAdminRegistry = a }},
		{"registry_module", o.RegistryModuleOwner, func(a common.Address) { d.RegistryModuleOwner = a }},
		{"link", o.Link, func(a common.Address) { d.FeeToken = &a }},
		{"rmn_proxy", o.RMNProxy, func(a common.Address) { d.RMNProxy = &a }},
	}
	for _, a := range addresses {
		raw := os.ExpandEnv(a.raw)
		if raw == "" {
			continue
		}
		if !common.IsHexAddress(raw) {
			return &domain.ConfigError{Network: d.Key, Field: a.field, Reason: fmt.Sprintf("invalid address %q", raw)}
		}
		a.set(common.HexToAddress(raw))
	}

	// Validated strictly when used.
	if o.FunctionsRouter != "" {
		d.FunctionsRouter = os.ExpandEnv(o.FunctionsRouter)
	}
	return nil
}
