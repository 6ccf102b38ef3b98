//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-ccip/internal/adapters"
	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/logging"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// InitApp creates a fully wired App instance. The cleanup closes RPC
// connections.
func InitApp(v *viper.Viper) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewListNetworks,
		usecase.NewPipelineStages,
		usecase.NewRunPipelineStage,
		usecase.NewShowPipelineStatus,
		usecase.NewImportAddresses,
		usecase.NewResetPipeline,
		usecase.NewFeeEstimator,
		usecase.NewTransferTokens,
		usecase.NewListTransfers,
		usecase.NewSendFunctionsRequest,
		usecase.NewDeployFunctionsConsumer,
		usecase.NewBuildContracts,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil, nil
}
