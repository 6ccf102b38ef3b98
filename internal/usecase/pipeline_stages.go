package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// StageOptions carries the operator supplied arguments of every stage.
// Each handler reads only the fields it needs.
type StageOptions struct {
	// Deploy Token
	Token domain.TokenParams

	// Deploy Pool
	LocalTokenDecimals uint8
	Allowlist          []common.Address

	// Claim Admin Role
	AdminMode domain.AdminClaimMode

	// Configure Pools
	RateLimits domain.RateLimits

	// Mint Test Supply. Recipient defaults to the signer.
	MintRecipient *common.Address
	MintAmount    *big.Int
}

// stageContext is what a handler gets to work with. State is read-only to
// handlers; the orchestrator applies the returned result.
type stageContext struct {
	network    domain.NetworkKey
	descriptor domain.Descriptor
	account    common.Address
	state      *domain.DeploymentState
	opts       StageOptions
	runState   *domain.PipelineRunState
}

type stageHandler func(ctx context.Context, sc stageContext) (*domain.StageResult, error)

// PipelineStages implements the seven stage handlers.
type PipelineStages struct {
	registry NetworkRegistry
	tokens   TokenContracts
	pools    PoolContracts
	admin    AdminRegistryContracts
	progress ProgressSink
}

// NewPipelineStages creates the stage handlers
func NewPipelineStages(
	registry NetworkRegistry,
	tokens TokenContracts,
	pools PoolContracts,
	admin AdminRegistryContracts,
	progress ProgressSink,
) *PipelineStages {
	return &PipelineStages{
		registry: registry,
		tokens:   tokens,
		pools:    pools,
		admin:    admin,
		progress: progress,
	}
}

func (s *PipelineStages) handler(stage domain.Stage) (stageHandler, error) {
	switch stage {
	case domain.StageDeployToken:
		return s.deployToken, nil
	case domain.StageDeployPool:
		return s.deployPool, nil
	case domain.StageGrantRoles:
		return s.grantRoles, nil
	case domain.StageClaimAdmin:
		return s.claimAdmin, nil
	case domain.StageLinkPool:
		return s.linkPool, nil
	case domain.StageConfigurePool:
		return s.configurePool, nil
	case domain.StageMintSupply:
		return s.mintSupply, nil
	}
	return nil, fmt.Errorf("unknown stage %d", int(stage))
}

// preflight validates the configuration a stage depends on before any
// transaction is built.
func (s *PipelineStages) preflight(stage domain.Stage, sc stageContext) error {
	d := sc.descriptor
	switch stage {
	case domain.StageDeployToken:
		return sc.opts.Token.Validate()
	case domain.StageDeployPool:
		if _, err := d.RouterAddress(); err != nil {
			return err
		}
		_, err := d.RMNProxyAddress()
		return err
	case domain.StageClaimAdmin:
		if _, err := d.RegistryModuleAddress(); err != nil {
			return err
		}
		_, err := d.AdminRegistryAddress()
		return err
	case domain.StageLinkPool:
		_, err := d.AdminRegistryAddress()
		return err
	case domain.StageConfigurePool:
		_, err := BuildChainUpdates(s.registry, sc.state, sc.network, sc.opts.RateLimits)
		return err
	case domain.StageMintSupply:
		if sc.opts.MintAmount == nil || sc.opts.MintAmount.Sign() <= 0 {
			return &domain.ConfigError{Network: sc.network, Field: "mint.amount", Reason: "amount must be positive"}
		}
	}
	return nil
}

func (s *PipelineStages) track(ctx context.Context, sc stageContext, action string) {
	if sc.runState != nil {
		sc.runState.SetAction(action)
	}
	s.progress.OnProgress(ctx, ProgressEvent{
		Stage:   ProgressTxSubmitting,
		Message: fmt.Sprintf("%s on %s", action, sc.descriptor.Name),
		Spinner: true,
	})
}

func (s *PipelineStages) confirmed(ctx context.Context, sc stageContext, stage domain.Stage, action string, receipt *domain.TxReceipt) domain.StageTransaction {
	s.progress.OnProgress(ctx, ProgressEvent{
		Stage:    ProgressTxConfirmed,
		Message:  fmt.Sprintf("%s confirmed in block %d", action, receipt.BlockNumber),
		Metadata: receipt,
	})
	return domain.StageTransaction{
		Stage:       stage,
		Action:      action,
		Hash:        receipt.Hash,
		BlockNumber: receipt.BlockNumber,
		ConfirmedAt: time.Now().UTC(),
	}
}

func (s *PipelineStages) deployToken(ctx context.Context, sc stageContext) (*domain.StageResult, error) {
	const action = "deploy BurnMintERC20"
	s.track(ctx, sc, action)
	receipt, err := s.tokens.DeployToken(ctx, sc.network, sc.opts.Token)
	if err != nil {
		return nil, err
	}
	if receipt.ContractAddress == nil {
		return nil, fmt.Errorf("deployment receipt %s has no contract address", receipt.Hash.Hex())
	}
	return &domain.StageResult{
		Stage:        domain.StageDeployToken,
		Network:      sc.network,
		Token:        receipt.ContractAddress,
		Transactions: []domain.StageTransaction{s.confirmed(ctx, sc, domain.StageDeployToken, action, receipt)},
	}, nil
}

func (s *PipelineStages) deployPool(ctx context.Context, sc stageContext) (*domain.StageResult, error) {
	const action = "deploy BurnMintTokenPool"
	rec := sc.state.Network(sc.network)
	router, _ := sc.descriptor.RouterAddress()
	rmnProxy, _ := sc.descriptor.RMNProxyAddress()

	decimals := sc.opts.LocalTokenDecimals
	if decimals == 0 {
		decimals = 18
	}

	s.track(ctx, sc, action)
	receipt, err := s.pools.DeployPool(ctx, sc.network, domain.PoolParams{
		Token:              *rec.Token,
		LocalTokenDecimals: decimals,
		Allowlist:          sc.opts.Allowlist,
		RMNProxy:           rmnProxy,
		Router:             router,
	})
	if err != nil {
		return nil, err
	}
	if receipt.ContractAddress == nil {
		return nil, fmt.Errorf("deployment receipt %s has no contract address", receipt.Hash.Hex())
	}
	return &domain.StageResult{
		Stage:        domain.StageDeployPool,
		Network:      sc.network,
		Pool:         receipt.ContractAddress,
		Transactions: []domain.StageTransaction{s.confirmed(ctx, sc, domain.StageDeployPool, action, receipt)},
	}, nil
}

func (s *PipelineStages) grantRoles(ctx context.Context, sc stageContext) (*domain.StageResult, error) {
	const action = "grantMintAndBurnRoles"
	rec := sc.state.Network(sc.network)

	s.track(ctx, sc, action)
	receipt, err := s.tokens.GrantMintAndBurnRoles(ctx, sc.network, *rec.Token, *rec.Pool)
	if err != nil {
		return nil, err
	}
	return &domain.StageResult{
		Stage:        domain.StageGrantRoles,
		Network:      sc.network,
		Transactions: []domain.StageTransaction{s.confirmed(ctx, sc, domain.StageGrantRoles, action, receipt)},
	}, nil
}

// claimAdmin registers the caller through the registry module and then
// accepts the role on the token admin registry. The registry rejects accept
// before register, so the order is fixed.
func (s *PipelineStages) claimAdmin(ctx context.Context, sc stageContext) (*domain.StageResult, error) {
	rec := sc.state.Network(sc.network)
	module, _ := sc.descriptor.RegistryModuleAddress()
	registry, _ := sc.descriptor.AdminRegistryAddress()

	mode := sc.opts.AdminMode
	if mode == "" {
		mode = domain.AdminViaOwner
	}
	registerAction := "registerAdminViaOwner"
	if mode == domain.AdminViaCCIPAdmin {
		registerAction = "registerAdminViaGetCCIPAdmin"
	}

	s.track(ctx, sc, registerAction)
	registered, err := s.admin.RegisterAdmin(ctx, sc.network, module, *rec.Token, mode)
	if err != nil {
		return nil, err
	}
	txs := []domain.StageTransaction{s.confirmed(ctx, sc, domain.StageClaimAdmin, registerAction, registered)}

	const acceptAction = "acceptAdminRole"
	s.track(ctx, sc, acceptAction)
	accepted, err := s.admin.AcceptAdminRole(ctx, sc.network, registry, *rec.Token)
	if err != nil {
		return nil, err
	}
	txs = append(txs, s.confirmed(ctx, sc, domain.StageClaimAdmin, acceptAction, accepted))

	return &domain.StageResult{
		Stage:        domain.StageClaimAdmin,
		Network:      sc.network,
		Transactions: txs,
	}, nil
}

func (s *PipelineStages) linkPool(ctx context.Context, sc stageContext) (*domain.StageResult, error) {
	const action = "setPool"
	rec := sc.state.Network(sc.network)
	registry, _ := sc.descriptor.AdminRegistryAddress()

	s.track(ctx, sc, action)
	receipt, err := s.admin.SetPool(ctx, sc.network, registry, *rec.Token, *rec.Pool)
	if err != nil {
		return nil, err
	}
	return &domain.StageResult{
		Stage:        domain.StageLinkPool,
		Network:      sc.network,
		Transactions: []domain.StageTransaction{s.confirmed(ctx, sc, domain.StageLinkPool, action, receipt)},
	}, nil
}

func (s *PipelineStages) configurePool(ctx context.Context, sc stageContext) (*domain.StageResult, error) {
	const action = "applyChainUpdates"
	rec := sc.state.Network(sc.network)
	updates, err := BuildChainUpdates(s.registry, sc.state, sc.network, sc.opts.RateLimits)
	if err != nil {
		return nil, err
	}

	s.track(ctx, sc, action)
	receipt, err := s.pools.ApplyChainUpdates(ctx, sc.network, *rec.Pool, []uint64{}, updates)
	if err != nil {
		return nil, err
	}
	return &domain.StageResult{
		Stage:        domain.StageConfigurePool,
		Network:      sc.network,
		Transactions: []domain.StageTransaction{s.confirmed(ctx, sc, domain.StageConfigurePool, action, receipt)},
	}, nil
}

func (s *PipelineStages) mintSupply(ctx context.Context, sc stageContext) (*domain.StageResult, error) {
	const action = "mint"
	rec := sc.state.Network(sc.network)
	recipient := sc.account
	if sc.opts.MintRecipient != nil {
		recipient = *sc.opts.MintRecipient
	}

	s.track(ctx, sc, action)
	receipt, err := s.tokens.Mint(ctx, sc.network, *rec.Token, recipient, sc.opts.MintAmount)
	if err != nil {
		return nil, err
	}
	return &domain.StageResult{
		Stage:        domain.StageMintSupply,
		Network:      sc.network,
		Transactions: []domain.StageTransaction{s.confirmed(ctx, sc, domain.StageMintSupply, action, receipt)},
	}, nil
}
