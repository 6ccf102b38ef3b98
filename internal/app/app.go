package app

import (
	"log/slog"

	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config   *config.RuntimeConfig
	Registry *config.Registry
	Log      *slog.Logger

	// Shared dependencies
	Selector  usecase.NetworkSelector
	Confirmer usecase.Confirmer
	Progress  usecase.ProgressSink

	// Use cases
	ListNetworks            *usecase.ListNetworks
	ShowPipelineStatus      *usecase.ShowPipelineStatus
	RunPipelineStage        *usecase.RunPipelineStage
	ImportAddresses         *usecase.ImportAddresses
	ResetPipeline           *usecase.ResetPipeline
	FeeEstimator            *usecase.FeeEstimator
	TransferTokens          *usecase.TransferTokens
	ListTransfers           *usecase.ListTransfers
	SendFunctionsRequest    *usecase.SendFunctionsRequest
	DeployFunctionsConsumer *usecase.DeployFunctionsConsumer
	BuildContracts          *usecase.BuildContracts
	SetConfig               *usecase.SetConfig
	RemoveConfig            *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	registry *config.Registry,
	log *slog.Logger,
	selector usecase.NetworkSelector,
	confirmer usecase.Confirmer,
	progress usecase.ProgressSink,
	listNetworks *usecase.ListNetworks,
	showPipelineStatus *usecase.ShowPipelineStatus,
	runPipelineStage *usecase.RunPipelineStage,
	importAddresses *usecase.ImportAddresses,
	resetPipeline *usecase.ResetPipeline,
	feeEstimator *usecase.FeeEstimator,
	transferTokens *usecase.TransferTokens,
	listTransfers *usecase.ListTransfers,
	sendFunctionsRequest *usecase.SendFunctionsRequest,
	deployFunctionsConsumer *usecase.DeployFunctionsConsumer,
	buildContracts *usecase.BuildContracts,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:                  cfg,
		Registry:                registry,
		Log:                     log,
		Selector:                selector,
		Confirmer:               confirmer,
		Progress:                progress,
		ListNetworks:            listNetworks,
		ShowPipelineStatus:      showPipelineStatus,
		RunPipelineStage:        runPipelineStage,
		ImportAddresses:         importAddresses,
		ResetPipeline:           resetPipeline,
		FeeEstimator:            feeEstimator,
		TransferTokens:          transferTokens,
		ListTransfers:           listTransfers,
		SendFunctionsRequest:    sendFunctionsRequest,
		DeployFunctionsConsumer: deployFunctionsConsumer,
		BuildContracts:          buildContracts,
		SetConfig:               setConfig,
		RemoveConfig:            removeConfig,
	}, nil
}
