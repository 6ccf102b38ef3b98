package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// SendFunctionsRequestParams contains parameters for a Functions request
type SendFunctionsRequestParams struct {
	Network        domain.NetworkKey
	Consumer       string
	Source         string
	Args           []string
	SubscriptionID uint64
	GasLimit       uint32
	DonID          string
	Confirmations  uint64
}

// SendFunctionsRequestResult contains the confirmed updateRequest call
type SendFunctionsRequestResult struct {
	Descriptor domain.Descriptor
	Consumer   common.Address
	Request    []byte
	Receipt    *domain.TxReceipt
}

// SendFunctionsRequest encodes a compute request and stores it on the
// consumer contract.
type SendFunctionsRequest struct {
	registry NetworkRegistry
	builder  FunctionsRequestBuilder
	consumer FunctionsConsumerContract
	wallet   Wallet
	chain    ChainReader
	progress ProgressSink
	log      *slog.Logger
}

// NewSendFunctionsRequest creates a new SendFunctionsRequest use case
func NewSendFunctionsRequest(
	registry NetworkRegistry,
	builder FunctionsRequestBuilder,
	consumer FunctionsConsumerContract,
	wallet Wallet,
	chain ChainReader,
	progress ProgressSink,
	log *slog.Logger,
) *SendFunctionsRequest {
	return &SendFunctionsRequest{
		registry: registry,
		builder:  builder,
		consumer: consumer,
		wallet:   wallet,
		chain:    chain,
		progress: progress,
		log:      log,
	}
}

// Run executes the use case
func (uc *SendFunctionsRequest) Run(ctx context.Context, params SendFunctionsRequestParams) (*SendFunctionsRequestResult, error) {
	descriptor, err := uc.registry.Descriptor(params.Network)
	if err != nil {
		return nil, err
	}
	if !common.IsHexAddress(params.Consumer) {
		return nil, &domain.ConfigError{Network: params.Network, Field: "functions.consumer", Reason: fmt.Sprintf("invalid consumer address %q", params.Consumer)}
	}
	if strings.TrimSpace(params.Source) == "" {
		return nil, &domain.ConfigError{Network: params.Network, Field: "functions.source", Reason: "request source is empty"}
	}
	if params.SubscriptionID == 0 {
		return nil, &domain.ConfigError{Network: params.Network, Field: "functions.subscription_id", Reason: "subscription id is required"}
	}
	if params.GasLimit == 0 {
		return nil, &domain.ConfigError{Network: params.Network, Field: "functions.gas_limit", Reason: "gas limit must be positive"}
	}
	donID, err := domain.DonIDFromString(params.DonID)
	if err != nil {
		return nil, &domain.ConfigError{Network: params.Network, Field: "functions.don_id", Reason: err.Error()}
	}

	if _, err := EnsureWallet(ctx, uc.wallet, uc.chain, descriptor); err != nil {
		return nil, err
	}

	request, err := uc.builder.Build(ctx, domain.FunctionsRequest{Source: params.Source, Args: params.Args})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	consumer := common.HexToAddress(params.Consumer)
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   ProgressTxSubmitting,
		Message: fmt.Sprintf("updateRequest on %s", descriptor.Name),
		Spinner: true,
	})
	receipt, err := uc.consumer.UpdateRequest(ctx, params.Network, domain.FunctionsSubmission{
		Consumer:       consumer,
		Request:        request,
		SubscriptionID: params.SubscriptionID,
		GasLimit:       params.GasLimit,
		DonID:          donID,
	}, params.Confirmations)
	if err != nil {
		return nil, err
	}
	uc.log.Info("functions request updated", "network", params.Network, "consumer", consumer.Hex(), "tx", receipt.Hash.Hex())

	return &SendFunctionsRequestResult{
		Descriptor: descriptor,
		Consumer:   consumer,
		Request:    request,
		Receipt:    receipt,
	}, nil
}

// DeployFunctionsConsumerParams contains parameters for deploying a consumer
type DeployFunctionsConsumerParams struct {
	Network domain.NetworkKey
	// Router overrides the network's Functions router
	Router string
}

// DeployFunctionsConsumer deploys a consumer bound to a Functions router
type DeployFunctionsConsumer struct {
	registry NetworkRegistry
	consumer FunctionsConsumerContract
	wallet   Wallet
	chain    ChainReader
	progress ProgressSink
}

// NewDeployFunctionsConsumer creates a new DeployFunctionsConsumer use case
func NewDeployFunctionsConsumer(registry NetworkRegistry, consumer FunctionsConsumerContract, wallet Wallet, chain ChainReader, progress ProgressSink) *DeployFunctionsConsumer {
	return &DeployFunctionsConsumer{registry: registry, consumer: consumer, wallet: wallet, chain: chain, progress: progress}
}

// Run validates the router and deploys the consumer
func (uc *DeployFunctionsConsumer) Run(ctx context.Context, params DeployFunctionsConsumerParams) (*domain.TxReceipt, error) {
	descriptor, err := uc.registry.Descriptor(params.Network)
	if err != nil {
		return nil, err
	}
	if params.Router != "" {
		descriptor.FunctionsRouter = params.Router
	}
	router, err := descriptor.FunctionsRouterAddress()
	if err != nil {
		return nil, err
	}
	if _, err := EnsureWallet(ctx, uc.wallet, uc.chain, descriptor); err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   ProgressTxSubmitting,
		Message: fmt.Sprintf("deploy consumer on %s", descriptor.Name),
		Spinner: true,
	})
	return uc.consumer.DeployConsumer(ctx, params.Network, router)
}

// BuildContracts compiles the deployable contracts
type BuildContracts struct {
	builder ArtifactBuilder
}

// NewBuildContracts creates a new BuildContracts use case
func NewBuildContracts(builder ArtifactBuilder) *BuildContracts {
	return &BuildContracts{builder: builder}
}

// Run executes the use case
func (uc *BuildContracts) Run(ctx context.Context) error {
	return uc.builder.Build(ctx)
}
