package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ShowPipelineStatusParams contains parameters for showing pipeline status
type ShowPipelineStatusParams struct {
	Deployment string
	// Verify checks on chain that recorded addresses hold code
	Verify bool
}

// NetworkVerification is the on-chain check of recorded addresses
type NetworkVerification struct {
	TokenHasCode *bool
	PoolHasCode  *bool
	Error        error
}

// PipelineStatusResult describes where a deployment stands
type PipelineStatusResult struct {
	State        *domain.DeploymentState
	Networks     []domain.Descriptor
	ActiveStage  domain.Stage
	Availability map[domain.Stage]map[domain.NetworkKey]domain.Availability
	Run          domain.RunSnapshot
	Verification map[domain.NetworkKey]NetworkVerification
}

// ShowPipelineStatus is a use case for inspecting pipeline progress
type ShowPipelineStatus struct {
	registry NetworkRegistry
	store    DeploymentStateStore
	chain    ChainReader
	runState *domain.PipelineRunState
}

// NewShowPipelineStatus creates a new ShowPipelineStatus use case
func NewShowPipelineStatus(registry NetworkRegistry, store DeploymentStateStore, chain ChainReader, runState *domain.PipelineRunState) *ShowPipelineStatus {
	return &ShowPipelineStatus{
		registry: registry,
		store:    store,
		chain:    chain,
		runState: runState,
	}
}

// Run executes the use case
func (uc *ShowPipelineStatus) Run(ctx context.Context, params ShowPipelineStatusParams) (*PipelineStatusResult, error) {
	state, err := LoadOrCreateState(ctx, uc.store, uc.registry, params.Deployment)
	if err != nil {
		return nil, err
	}

	keys := state.Keys(uc.registry.Keys())
	result := &PipelineStatusResult{
		State:        state,
		ActiveStage:  state.ActiveStage(),
		Availability: make(map[domain.Stage]map[domain.NetworkKey]domain.Availability, len(domain.Stages)),
		Run:          uc.runState.Snapshot(),
	}
	for _, key := range keys {
		desc, err := uc.registry.Descriptor(key)
		if err != nil {
			return nil, err
		}
		result.Networks = append(result.Networks, desc)
	}
	for _, stage := range domain.Stages {
		result.Availability[stage] = make(map[domain.NetworkKey]domain.Availability, len(keys))
		for _, key := range keys {
			result.Availability[stage][key] = state.Availability(stage, key)
		}
	}

	if params.Verify {
		result.Verification = uc.verify(ctx, state, keys)
	}
	return result, nil
}

// verify checks every network concurrently. Failures are recorded per
// network rather than aborting the status.
func (uc *ShowPipelineStatus) verify(ctx context.Context, state *domain.DeploymentState, keys []domain.NetworkKey) map[domain.NetworkKey]NetworkVerification {
	var mu sync.Mutex
	out := make(map[domain.NetworkKey]NetworkVerification, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		rec := state.Network(key)
		g.Go(func() error {
			v := NetworkVerification{}
			check := func(addr *common.Address) *bool {
				if addr == nil || v.Error != nil {
					return nil
				}
				ok, err := uc.chain.HasCode(gctx, key, *addr)
				if err != nil {
					v.Error = fmt.Errorf("code check on %s: %w", key, err)
					return nil
				}
				return &ok
			}
			v.TokenHasCode = check(rec.Token)
			v.PoolHasCode = check(rec.Pool)

			mu.Lock()
			out[key] = v
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}
