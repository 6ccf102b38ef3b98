package usecase

import (
	"context"
	"sync"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Check queries every RPC for its chain id
	Check bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Descriptor domain.Descriptor
	// RemoteChainID is what the RPC reported when Check was set
	RemoteChainID uint64
	Checked       bool
	Error         error
}

// Healthy reports whether the RPC answered with the expected chain id
func (s NetworkStatus) Healthy() bool {
	return s.Checked && s.Error == nil && s.RemoteChainID == s.Descriptor.ChainID
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	registry NetworkRegistry
	chain    ChainReader
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(registry NetworkRegistry, chain ChainReader) *ListNetworks {
	return &ListNetworks{
		registry: registry,
		chain:    chain,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	keys := uc.registry.Keys()
	networks := make([]NetworkStatus, len(keys))
	for i, key := range keys {
		desc, err := uc.registry.Descriptor(key)
		if err != nil {
			return nil, err
		}
		networks[i] = NetworkStatus{Descriptor: desc}
	}

	if params.Check {
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		for i := range networks {
			g.Go(func() error {
				chainID, err := uc.chain.ChainID(gctx, networks[i].Descriptor.Key)
				mu.Lock()
				defer mu.Unlock()
				networks[i].Checked = true
				networks[i].RemoteChainID = chainID
				networks[i].Error = err
				if err == nil && chainID != networks[i].Descriptor.ChainID {
					networks[i].Error = domain.NewWrongNetworkError(networks[i].Descriptor.ChainID, chainID)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
