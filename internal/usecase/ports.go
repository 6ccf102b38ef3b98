package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
)

// NetworkRegistry exposes the static network descriptors
type NetworkRegistry interface {
	Resolve(chainID uint64) (domain.Descriptor, error)
	Descriptor(key domain.NetworkKey) (domain.Descriptor, error)
	Keys() []domain.NetworkKey
}

// Wallet is the signing account. Account returns a wallet error wrapping
// domain.ErrWalletNotConnected when no signer is configured.
type Wallet interface {
	Account(ctx context.Context) (common.Address, error)
}

// ChainReader performs read-only node queries per network
type ChainReader interface {
	ChainID(ctx context.Context, network domain.NetworkKey) (uint64, error)
	HasCode(ctx context.Context, network domain.NetworkKey, addr common.Address) (bool, error)
}

// TokenContracts talks to burn/mint ERC20 tokens
type TokenContracts interface {
	DeployToken(ctx context.Context, network domain.NetworkKey, params domain.TokenParams) (*domain.TxReceipt, error)
	GrantMintAndBurnRoles(ctx context.Context, network domain.NetworkKey, token, pool common.Address) (*domain.TxReceipt, error)
	Mint(ctx context.Context, network domain.NetworkKey, token, to common.Address, amount *big.Int) (*domain.TxReceipt, error)
	Approve(ctx context.Context, network domain.NetworkKey, token, spender common.Address, amount *big.Int) (*domain.TxReceipt, error)
	Allowance(ctx context.Context, network domain.NetworkKey, token, owner, spender common.Address) (*big.Int, error)
	BalanceOf(ctx context.Context, network domain.NetworkKey, token, account common.Address) (*big.Int, error)
	Metadata(ctx context.Context, network domain.NetworkKey, token common.Address) (domain.TokenMetadata, error)
}

// PoolContracts talks to burn/mint token pools
type PoolContracts interface {
	DeployPool(ctx context.Context, network domain.NetworkKey, params domain.PoolParams) (*domain.TxReceipt, error)
	ApplyChainUpdates(ctx context.Context, network domain.NetworkKey, pool common.Address, removals []uint64, additions []domain.ChainUpdate) (*domain.TxReceipt, error)
}

// AdminRegistryContracts talks to the registry module and token admin registry
type AdminRegistryContracts interface {
	RegisterAdmin(ctx context.Context, network domain.NetworkKey, module, token common.Address, mode domain.AdminClaimMode) (*domain.TxReceipt, error)
	AcceptAdminRole(ctx context.Context, network domain.NetworkKey, registry, token common.Address) (*domain.TxReceipt, error)
	SetPool(ctx context.Context, network domain.NetworkKey, registry, token, pool common.Address) (*domain.TxReceipt, error)
}

// RouterContract quotes and sends CCIP messages
type RouterContract interface {
	GetFee(ctx context.Context, network domain.NetworkKey, router common.Address, destSelector uint64, msg domain.Message) (*big.Int, error)
	CCIPSend(ctx context.Context, network domain.NetworkKey, router common.Address, destSelector uint64, msg domain.Message, value *big.Int) (*domain.SendReceipt, error)
}

// FunctionsConsumerContract deploys and updates a Functions consumer
type FunctionsConsumerContract interface {
	DeployConsumer(ctx context.Context, network domain.NetworkKey, router common.Address) (*domain.TxReceipt, error)
	UpdateRequest(ctx context.Context, network domain.NetworkKey, submission domain.FunctionsSubmission, confirmations uint64) (*domain.TxReceipt, error)
}

// FunctionsRequestBuilder encodes an off-chain compute request
type FunctionsRequestBuilder interface {
	Build(ctx context.Context, req domain.FunctionsRequest) ([]byte, error)
}

// DeploymentStateStore persists pipeline state between invocations
type DeploymentStateStore interface {
	Load(ctx context.Context, name string) (*domain.DeploymentState, error)
	Save(ctx context.Context, state *domain.DeploymentState) error
	Delete(ctx context.Context, name string) error
}

// TransferHistoryStore records transfer attempts
type TransferHistoryStore interface {
	Append(ctx context.Context, attempt *domain.TransferAttempt) error
	List(ctx context.Context) ([]*domain.TransferAttempt, error)
}

// ArtifactBuilder compiles the contracts whose bytecode is deployed
type ArtifactBuilder interface {
	Build(ctx context.Context) error
}

// NetworkSelector asks the operator to pick a network
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, prompt string, options []domain.Descriptor) (domain.NetworkKey, error)
}

// Confirmer asks the operator a yes/no question before sending
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Progress stage identifiers emitted by use cases
const (
	ProgressStageStarting  = "stage_starting"
	ProgressTxSubmitting   = "tx_submitting"
	ProgressTxConfirmed    = "tx_confirmed"
	ProgressStageCompleted = "stage_completed"
	ProgressStageFailed    = "stage_failed"
	ProgressEstimating     = "estimating"
	ProgressApproving      = "approving"
	ProgressSending        = "sending"
	ProgressConfirmed      = "confirmed"
)

// LocalConfigRepository persists the project's default network and deployment
type LocalConfigRepository interface {
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}
