package adapters

import (
	"log/slog"
	"os"

	"github.com/google/wire"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/artifacts"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/contracts"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/fs"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/functions"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/progress"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/wallet"
	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// ProvideClientPool provides the RPC client pool and closes it on cleanup
func ProvideClientPool(registry usecase.NetworkRegistry) (*blockchain.ClientPool, func()) {
	pool := blockchain.NewClientPool(registry)
	return pool, pool.Close
}

// ProvideForgeBuilder provides a forge runner streaming to stdout
func ProvideForgeBuilder(cfg *config.RuntimeConfig, log *slog.Logger) *artifacts.ForgeBuilder {
	return artifacts.NewForgeBuilder(cfg, os.Stdout, log)
}

// ProvideRunState provides the process-wide pipeline busy flag
func ProvideRunState() *domain.PipelineRunState {
	return &domain.PipelineRunState{}
}

// ConfigSet provides the static network registry
var ConfigSet = wire.NewSet(
	config.ProvideRegistry,
	wire.Bind(new(usecase.NetworkRegistry), new(*config.Registry)),
)

// BlockchainSet provides node access and transaction submission
var BlockchainSet = wire.NewSet(
	ProvideClientPool,
	wire.Bind(new(usecase.ChainReader), new(*blockchain.ClientPool)),
	wire.Bind(new(contracts.Caller), new(*blockchain.ClientPool)),

	wallet.NewSigner,
	wallet.NewWallet,
	wire.Bind(new(usecase.Wallet), new(*wallet.Wallet)),

	blockchain.NewTxSender,
	wire.Bind(new(contracts.Transactor), new(*blockchain.TxSender)),
)

// ContractsSet provides the contract gateway behind every on-chain port
var ContractsSet = wire.NewSet(
	artifacts.NewLoader,
	wire.Bind(new(contracts.BytecodeSource), new(*artifacts.Loader)),
	ProvideForgeBuilder,
	wire.Bind(new(usecase.ArtifactBuilder), new(*artifacts.ForgeBuilder)),

	contracts.NewGateway,
	wire.Bind(new(usecase.TokenContracts), new(*contracts.Gateway)),
	wire.Bind(new(usecase.PoolContracts), new(*contracts.Gateway)),
	wire.Bind(new(usecase.AdminRegistryContracts), new(*contracts.Gateway)),
	wire.Bind(new(usecase.RouterContract), new(*contracts.Gateway)),
	wire.Bind(new(usecase.FunctionsConsumerContract), new(*contracts.Gateway)),

	functions.NewRequestBuilder,
	wire.Bind(new(usecase.FunctionsRequestBuilder), new(*functions.RequestBuilder)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewDeploymentStateStoreAdapter,
	wire.Bind(new(usecase.DeploymentStateStore), new(*fs.DeploymentStateStoreAdapter)),

	fs.NewTransferHistoryStoreAdapter,
	wire.Bind(new(usecase.TransferHistoryStore), new(*fs.TransferHistoryStoreAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides the progress sink selected by the output mode
var ProgressSet = wire.NewSet(
	progress.ProvideProgressSink,
)

// AllAdapters includes all adapter providers
var AllAdapters = wire.NewSet(
	ConfigSet,
	BlockchainSet,
	ContractsSet,
	FSSet,
	InteractiveSet,
	ProgressSet,
	ProvideRunState,
)
