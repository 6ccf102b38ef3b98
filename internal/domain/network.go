package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkKey identifies a network taking part in the token pipeline.
type NetworkKey string

const (
	NetworkFuji     NetworkKey = "fuji"
	NetworkArbitrum NetworkKey = "arbitrum"
)

// NetworkKeys lists the supported networks in pipeline order.
var NetworkKeys = []NetworkKey{NetworkFuji, NetworkArbitrum}

// ParseNetworkKey converts user input into a NetworkKey. Chain names and
// common aliases are accepted.
func ParseNetworkKey(s string) (NetworkKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fuji", "avalanche-fuji", "avalanchefuji", "43113":
		return NetworkFuji, nil
	case "arbitrum", "arbitrum-sepolia", "arbitrumsepolia", "421614":
		return NetworkArbitrum, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedNetwork, s)
}

func (k NetworkKey) String() string {
	return string(k)
}

// Remotes returns every key in keys other than k, preserving order.
func (k NetworkKey) Remotes(keys []NetworkKey) []NetworkKey {
	remotes := make([]NetworkKey, 0, len(keys))
	for _, other := range keys {
		if other != k {
			remotes = append(remotes, other)
		}
	}
	return remotes
}

var hexAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// IsStrictHexAddress reports whether s is a 0x-prefixed 20 byte hex address.
func IsStrictHexAddress(s string) bool {
	return hexAddressPattern.MatchString(s)
}

// Descriptor is the static record for one supported chain.
type Descriptor struct {
	Key                 NetworkKey
	ChainID             uint64
	Name                string
	ChainSelector       uint64
	Router              common.Address
	TokenAdminRegistry  common.Address
	RegistryModuleOwner common.Address
	FeeToken            *common.Address
	RMNProxy            *common.Address
	FunctionsRouter     string
	NativeSymbol        string
	RPCURL              string
	ExplorerURL         string
}

// RouterAddress returns the CCIP router, or a ConfigError when it is unset.
func (d Descriptor) RouterAddress() (common.Address, error) {
	if d.Router == (common.Address{}) {
		return common.Address{}, &ConfigError{Network: d.Key, Field: "router", Reason: "missing router address"}
	}
	return d.Router, nil
}

// AdminRegistryAddress returns the token admin registry address.
func (d Descriptor) AdminRegistryAddress() (common.Address, error) {
	if d.TokenAdminRegistry == (common.Address{}) {
		return common.Address{}, &ConfigError{Network: d.Key, Field: "token_admin_registry", Reason: "missing registry address"}
	}
	return d.TokenAdminRegistry, nil
}

// RegistryModuleAddress returns the registry module owner address.
func (d Descriptor) RegistryModuleAddress() (common.Address, error) {
	if d.RegistryModuleOwner == (common.Address{}) {
		return common.Address{}, &ConfigError{Network: d.Key, Field: "registry_module", Reason: "missing registry module address"}
	}
	return d.RegistryModuleOwner, nil
}

// RMNProxyAddress returns the risk management proxy used by token pools.
func (d Descriptor) RMNProxyAddress() (common.Address, error) {
	if d.RMNProxy == nil || *d.RMNProxy == (common.Address{}) {
		return common.Address{}, &ConfigError{Network: d.Key, Field: "rmn_proxy", Reason: "missing rmn proxy address"}
	}
	return *d.RMNProxy, nil
}

// FeeTokenAddress returns the LINK token used to pay fees.
func (d Descriptor) FeeTokenAddress() (common.Address, error) {
	if d.FeeToken == nil || *d.FeeToken == (common.Address{}) {
		return common.Address{}, &ConfigError{Network: d.Key, Field: "link", Reason: "no fee token configured"}
	}
	return *d.FeeToken, nil
}

// FunctionsRouterAddress validates the Functions router string strictly.
func (d Descriptor) FunctionsRouterAddress() (common.Address, error) {
	if !IsStrictHexAddress(d.FunctionsRouter) {
		return common.Address{}, &ConfigError{
			Network: d.Key,
			Field:   "functions_router",
			Reason:  fmt.Sprintf("invalid router address %q", d.FunctionsRouter),
		}
	}
	return common.HexToAddress(d.FunctionsRouter), nil
}

// TxURL links a transaction on the network's block explorer.
func (d Descriptor) TxURL(hash common.Hash) string {
	if d.ExplorerURL == "" {
		return ""
	}
	return strings.TrimRight(d.ExplorerURL, "/") + "/tx/" + hash.Hex()
}

// AddressURL links an address on the network's block explorer.
func (d Descriptor) AddressURL(addr common.Address) string {
	if d.ExplorerURL == "" {
		return ""
	}
	return strings.TrimRight(d.ExplorerURL, "/") + "/address/" + addr.Hex()
}
