package usecase

import (
	"fmt"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// BuildChainUpdates returns the chain updates for the pool on local: one
// entry per remote network, carrying that network's selector, pool and token.
func BuildChainUpdates(registry NetworkRegistry, state *domain.DeploymentState, local domain.NetworkKey, limits domain.RateLimits) ([]domain.ChainUpdate, error) {
	if err := limits.Outbound.Validate(); err != nil {
		return nil, fmt.Errorf("outbound: %w", err)
	}
	if err := limits.Inbound.Validate(); err != nil {
		return nil, fmt.Errorf("inbound: %w", err)
	}

	remotes := local.Remotes(state.Keys(registry.Keys()))
	if len(remotes) == 0 {
		return nil, fmt.Errorf("deployment %q has no remote network for %s", state.Name, local)
	}

	updates := make([]domain.ChainUpdate, 0, len(remotes))
	for _, remote := range remotes {
		desc, err := registry.Descriptor(remote)
		if err != nil {
			return nil, err
		}
		rec := state.Network(remote)
		if rec.Token == nil || rec.Pool == nil {
			return nil, &domain.PreconditionError{
				Stage:   domain.StageConfigurePool,
				Network: local,
				Reason:  fmt.Sprintf("token and pool on %s are not recorded", remote),
			}
		}
		updates = append(updates, domain.ChainUpdate{
			RemoteChainSelector: desc.ChainSelector,
			RemotePoolAddresses: [][]byte{EncodeAddress(*rec.Pool)},
			RemoteTokenAddress:  EncodeAddress(*rec.Token),
			Outbound:            limits.Outbound,
			Inbound:             limits.Inbound,
		})
	}
	return updates, nil
}
