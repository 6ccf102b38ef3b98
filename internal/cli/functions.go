package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-ccip/internal/cli/render"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// NewFunctionsCmd creates the functions command group
func NewFunctionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "Send Chainlink Functions requests",
		Long: `Encode a JavaScript source and its arguments as a Chainlink Functions
request and store it on a consumer contract. Defaults come from the
functions.* config keys.`,
	}

	cmd.AddCommand(newFunctionsRequestCmd())
	cmd.AddCommand(newFunctionsDeployConsumerCmd())

	return cmd
}

// functionsNetwork is --network when given, else functions.network
func functionsNetwork(cmd *cobra.Command, configured, fallback domain.NetworkKey) domain.NetworkKey {
	if cmd.Flags().Changed("network") && configured != "" {
		return configured
	}
	return fallback
}

func newFunctionsRequestCmd() *cobra.Command {
	var (
		consumer       string
		sourceFile     string
		fnArgs         []string
		subscriptionID uint64
		gasLimit       uint32
		donID          string
	)

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Store a request on a Functions consumer",
		Long: `Build the request {source, args} as CBOR and call updateRequest on the
consumer.

Examples:
  treb-ccip functions request --source functions/source.js --arg 40.7 --arg -74.0 --arg 0xabc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			cfg := app.Config.Functions

			path := cfg.SourceFile
			if sourceFile != "" {
				path = sourceFile
			}
			if path == "" {
				return &domain.ConfigError{Field: "functions.source", Reason: "no source file given (--source)"}
			}
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}

			params := usecase.SendFunctionsRequestParams{
				Network:        functionsNetwork(cmd, app.Config.Network, cfg.Network),
				Consumer:       cfg.Consumer,
				Source:         string(source),
				Args:           fnArgs,
				SubscriptionID: cfg.SubscriptionID,
				GasLimit:       cfg.GasLimit,
				DonID:          cfg.DonID,
				Confirmations:  cfg.Confirmations,
			}
			if consumer != "" {
				params.Consumer = consumer
			}
			if cmd.Flags().Changed("subscription") {
				params.SubscriptionID = subscriptionID
			}
			if cmd.Flags().Changed("gas-limit") {
				params.GasLimit = gasLimit
			}
			if donID != "" {
				params.DonID = donID
			}

			result, err := app.SendFunctionsRequest.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewFunctionsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&consumer, "consumer", "", "Consumer contract address (default functions.consumer)")
	cmd.Flags().StringVar(&sourceFile, "source", "", "JavaScript source file (default functions.source)")
	cmd.Flags().StringArrayVar(&fnArgs, "arg", nil, "Request argument, repeatable and kept in order")
	cmd.Flags().Uint64Var(&subscriptionID, "subscription", 0, "Functions subscription id (default functions.subscription_id)")
	cmd.Flags().Uint32Var(&gasLimit, "gas-limit", 0, "Callback gas limit (default functions.gas_limit)")
	cmd.Flags().StringVar(&donID, "don-id", "", "DON id (default functions.don_id)")

	return cmd
}

func newFunctionsDeployConsumerCmd() *cobra.Command {
	var router string

	cmd := &cobra.Command{
		Use:   "deploy-consumer",
		Short: "Deploy a Functions consumer bound to the network's router",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			network := functionsNetwork(cmd, app.Config.Network, app.Config.Functions.Network)
			receipt, err := app.DeployFunctionsConsumer.Run(cmd.Context(), usecase.DeployFunctionsConsumerParams{
				Network: network,
				Router:  router,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), receipt)
			}
			d, err := app.Registry.Descriptor(network)
			if err != nil {
				return err
			}
			return render.NewFunctionsRenderer(cmd.OutOrStdout()).RenderConsumer(d, receipt)
		},
	}

	cmd.Flags().StringVar(&router, "router", "", "Functions router address, overrides the network's")

	return cmd
}
