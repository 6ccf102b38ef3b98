package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// RunPipelineStageParams contains parameters for running one stage
type RunPipelineStageParams struct {
	Deployment string
	Stage      domain.Stage
	Network    domain.NetworkKey
	Options    StageOptions
}

// RunPipelineStageResult contains the outcome of a confirmed stage action
type RunPipelineStageResult struct {
	Stage       domain.Stage
	Network     domain.NetworkKey
	Descriptor  domain.Descriptor
	Result      *domain.StageResult
	State       *domain.DeploymentState
	ActiveStage domain.Stage
	Advanced    bool
}

// RunPipelineStage sequences the deployment pipeline. It is the only writer
// of DeploymentState and of the shared PipelineRunState.
type RunPipelineStage struct {
	registry NetworkRegistry
	stages   *PipelineStages
	store    DeploymentStateStore
	wallet   Wallet
	chain    ChainReader
	runState *domain.PipelineRunState
	progress ProgressSink
	log      *slog.Logger
}

// NewRunPipelineStage creates a new RunPipelineStage use case
func NewRunPipelineStage(
	registry NetworkRegistry,
	stages *PipelineStages,
	store DeploymentStateStore,
	wallet Wallet,
	chain ChainReader,
	runState *domain.PipelineRunState,
	progress ProgressSink,
	log *slog.Logger,
) *RunPipelineStage {
	return &RunPipelineStage{
		registry: registry,
		stages:   stages,
		store:    store,
		wallet:   wallet,
		chain:    chain,
		runState: runState,
		progress: progress,
		log:      log,
	}
}

// Run executes one stage on one network. The state is only updated after
// every transaction of the stage has confirmed; a failure leaves it as it was.
func (uc *RunPipelineStage) Run(ctx context.Context, params RunPipelineStageParams) (*RunPipelineStageResult, error) {
	if !params.Stage.Valid() {
		return nil, fmt.Errorf("unknown stage %d", int(params.Stage))
	}
	descriptor, err := uc.registry.Descriptor(params.Network)
	if err != nil {
		return nil, err
	}

	if err := uc.runState.TryBegin(params.Stage, params.Network); err != nil {
		return nil, err
	}
	defer uc.runState.End()

	state, err := LoadOrCreateState(ctx, uc.store, uc.registry, params.Deployment)
	if err != nil {
		return nil, err
	}

	if err := state.Availability(params.Stage, params.Network).Err(); err != nil {
		return nil, err
	}

	account, err := EnsureWallet(ctx, uc.wallet, uc.chain, descriptor)
	if err != nil {
		return nil, err
	}

	sc := stageContext{
		network:    params.Network,
		descriptor: descriptor,
		account:    account,
		state:      state,
		opts:       params.Options,
		runState:   uc.runState,
	}
	if err := uc.stages.preflight(params.Stage, sc); err != nil {
		return nil, err
	}
	handler, err := uc.stages.handler(params.Stage)
	if err != nil {
		return nil, err
	}

	before := state.ActiveStage()
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   ProgressStageStarting,
		Current: int(params.Stage),
		Total:   len(domain.Stages),
		Message: fmt.Sprintf("%s on %s", params.Stage.Title(), descriptor.Name),
	})
	uc.log.Info("running stage", "stage", params.Stage.String(), "network", params.Network, "account", account.Hex())

	result, err := handler(ctx, sc)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   ProgressStageFailed,
			Current: int(params.Stage),
			Total:   len(domain.Stages),
			Message: err.Error(),
		})
		uc.log.Warn("stage failed", "stage", params.Stage.String(), "network", params.Network, "error", err)
		return nil, err
	}

	if err := state.Apply(*result); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("stage confirmed on chain but state was not saved (tx %s): %w",
			lastTxHash(result), err)
	}

	after := state.ActiveStage()
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    ProgressStageCompleted,
		Current:  int(params.Stage),
		Total:    len(domain.Stages),
		Message:  fmt.Sprintf("%s on %s", params.Stage.Title(), descriptor.Name),
		Metadata: result,
	})
	uc.log.Info("stage completed", "stage", params.Stage.String(), "network", params.Network, "active", after.String())

	return &RunPipelineStageResult{
		Stage:       params.Stage,
		Network:     params.Network,
		Descriptor:  descriptor,
		Result:      result,
		State:       state,
		ActiveStage: after,
		Advanced:    after != before,
	}, nil
}

// AdvancePipelineParams contains parameters for running the active stage
type AdvancePipelineParams struct {
	Deployment string
	Options    StageOptions
}

// Advance runs the active stage on every network where it is enabled, one
// network at a time, stopping at the first failure. The terminal mint stage
// is never advanced into: minting targets one network and must be run
// explicitly.
func (uc *RunPipelineStage) Advance(ctx context.Context, params AdvancePipelineParams) ([]*RunPipelineStageResult, error) {
	state, err := LoadOrCreateState(ctx, uc.store, uc.registry, params.Deployment)
	if err != nil {
		return nil, err
	}

	stage := state.ActiveStage()
	if stage.Terminal() {
		return nil, &domain.PreconditionError{
			Stage:   stage,
			Network: "any",
			Reason:  fmt.Sprintf("the pipeline is complete; mint on one network with 'pipeline run %s --network <key>'", stage),
		}
	}
	var pending []domain.NetworkKey
	for _, key := range state.Keys(uc.registry.Keys()) {
		if state.Availability(stage, key).Enabled {
			pending = append(pending, key)
		}
	}
	if len(pending) == 0 {
		return nil, &domain.PreconditionError{Stage: stage, Network: "any", Reason: "no network can run this stage"}
	}

	results := make([]*RunPipelineStageResult, 0, len(pending))
	for _, key := range pending {
		res, err := uc.Run(ctx, RunPipelineStageParams{
			Deployment: params.Deployment,
			Stage:      stage,
			Network:    key,
			Options:    params.Options,
		})
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// LoadOrCreateState loads a named deployment, creating an empty one covering
// every registered network when none exists.
func LoadOrCreateState(ctx context.Context, store DeploymentStateStore, registry NetworkRegistry, name string) (*domain.DeploymentState, error) {
	if name == "" {
		name = "default"
	}
	state, err := store.Load(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewDeploymentState(name, registry.Keys()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load deployment %q: %w", name, err)
	}
	for _, key := range registry.Keys() {
		if _, ok := state.Networks[key]; !ok {
			state.Networks[key] = &domain.NetworkDeployment{}
		}
	}
	return state, nil
}

// EnsureWallet returns the signer account after checking that the node the
// wallet uses for the network serves the expected chain.
func EnsureWallet(ctx context.Context, wallet Wallet, chain ChainReader, descriptor domain.Descriptor) (common.Address, error) {
	account, err := wallet.Account(ctx)
	if err != nil {
		return common.Address{}, err
	}
	chainID, err := chain.ChainID(ctx, descriptor.Key)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read chain id for %s: %w", descriptor.Key, err)
	}
	if chainID != descriptor.ChainID {
		return common.Address{}, domain.NewWrongNetworkError(descriptor.ChainID, chainID)
	}
	return account, nil
}

func lastTxHash(result *domain.StageResult) string {
	if result == nil || len(result.Transactions) == 0 {
		return "none"
	}
	return result.Transactions[len(result.Transactions)-1].Hash.Hex()
}
