package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// ImportAddressesParams contains parameters for recording existing contracts
type ImportAddressesParams struct {
	Deployment string
	Network    domain.NetworkKey
	Token      *common.Address
	Pool       *common.Address
	SkipVerify bool
}

// ImportAddresses records token and pool addresses deployed elsewhere
type ImportAddresses struct {
	registry NetworkRegistry
	store    DeploymentStateStore
	chain    ChainReader
	runState *domain.PipelineRunState
}

// NewImportAddresses creates a new ImportAddresses use case
func NewImportAddresses(registry NetworkRegistry, store DeploymentStateStore, chain ChainReader, runState *domain.PipelineRunState) *ImportAddresses {
	return &ImportAddresses{registry: registry, store: store, chain: chain, runState: runState}
}

// Run executes the use case
func (uc *ImportAddresses) Run(ctx context.Context, params ImportAddressesParams) (*domain.DeploymentState, error) {
	if params.Token == nil && params.Pool == nil {
		return nil, fmt.Errorf("nothing to import: pass a token and/or pool address")
	}
	if _, err := uc.registry.Descriptor(params.Network); err != nil {
		return nil, err
	}

	stage := domain.StageDeployToken
	if params.Token == nil {
		stage = domain.StageDeployPool
	}
	if err := uc.runState.TryBegin(stage, params.Network); err != nil {
		return nil, err
	}
	defer uc.runState.End()

	if !params.SkipVerify {
		for _, addr := range []*common.Address{params.Token, params.Pool} {
			if addr == nil {
				continue
			}
			ok, err := uc.chain.HasCode(ctx, params.Network, *addr)
			if err != nil {
				return nil, fmt.Errorf("failed to verify %s on %s: %w", addr.Hex(), params.Network, err)
			}
			if !ok {
				return nil, fmt.Errorf("%w: no contract code at %s on %s", domain.ErrInvalidAddress, addr.Hex(), params.Network)
			}
		}
	}

	state, err := LoadOrCreateState(ctx, uc.store, uc.registry, params.Deployment)
	if err != nil {
		return nil, err
	}
	if err := state.ImportAddresses(params.Network, params.Token, params.Pool); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// ResetPipeline deletes the saved state of a deployment
type ResetPipeline struct {
	store DeploymentStateStore
}

// NewResetPipeline creates a new ResetPipeline use case
func NewResetPipeline(store DeploymentStateStore) *ResetPipeline {
	return &ResetPipeline{store: store}
}

// Run deletes the named deployment. Missing state is not an error.
func (uc *ResetPipeline) Run(ctx context.Context, deployment string) error {
	if deployment == "" {
		deployment = "default"
	}
	if err := uc.store.Delete(ctx, deployment); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to reset deployment %q: %w", deployment, err)
	}
	return nil
}
