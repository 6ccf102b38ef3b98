package config

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// Registry resolves network descriptors by chain id or key. It is built once
// at startup and never mutated.
type Registry struct {
	byChainID map[uint64]domain.Descriptor
	byKey     map[domain.NetworkKey]domain.Descriptor
	keys      []domain.NetworkKey
}

// NewRegistry indexes descriptors. Every domain.NetworkKeys entry must be
// present exactly once and chain ids must be unique.
func NewRegistry(descriptors []domain.Descriptor) (*Registry, error) {
	r := &Registry{
		byChainID: make(map[uint64]domain.Descriptor, len(descriptors)),
		byKey:     make(map[domain.NetworkKey]domain.Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if _, dup := r.byChainID[d.ChainID]; dup {
			return nil, fmt.Errorf("duplicate descriptor for chain id %d", d.ChainID)
		}
		if _, dup := r.byKey[d.Key]; dup {
			return nil, fmt.Errorf("duplicate descriptor for network %s", d.Key)
		}
		r.byChainID[d.ChainID] = d
		r.byKey[d.Key] = d
	}
	for _, key := range domain.NetworkKeys {
		if _, ok := r.byKey[key]; !ok {
			return nil, fmt.Errorf("no descriptor for network %s", key)
		}
	}
	r.keys = lo.Filter(domain.NetworkKeys, func(k domain.NetworkKey, _ int) bool {
		_, ok := r.byKey[k]
		return ok
	})
	return r, nil
}

// ProvideRegistry creates the Registry for Wire dependency injection
func ProvideRegistry(cfg *RuntimeConfig) (*Registry, error) {
	return NewRegistry(cfg.Networks)
}

// Resolve looks a descriptor up by chain id.
func (r *Registry) Resolve(chainID uint64) (domain.Descriptor, error) {
	d, ok := r.byChainID[chainID]
	if !ok {
		return domain.Descriptor{}, &domain.UnsupportedNetworkError{ChainID: chainID}
	}
	return d, nil
}

// Descriptor looks a descriptor up by network key.
func (r *Registry) Descriptor(key domain.NetworkKey) (domain.Descriptor, error) {
	d, ok := r.byKey[key]
	if !ok {
		return domain.Descriptor{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedNetwork, key)
	}
	return d, nil
}

// Keys returns the supported networks in pipeline order.
func (r *Registry) Keys() []domain.NetworkKey {
	return append([]domain.NetworkKey(nil), r.keys...)
}

// All returns every descriptor in pipeline order.
func (r *Registry) All() []domain.Descriptor {
	return lo.Map(r.keys, func(k domain.NetworkKey, _ int) domain.Descriptor {
		return r.byKey[k]
	})
}
