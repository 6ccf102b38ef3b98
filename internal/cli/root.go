package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-ccip/internal/app"
	"github.com/trebuchet-org/treb-ccip/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// Execute runs the CLI and releases the app's resources once the command
// returns, whether or not it failed.
func Execute(ctx context.Context) error {
	var release func()
	defer func() {
		if release != nil {
			release()
		}
	}()
	return newRootCmd(&release).ExecuteContext(ctx)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var release func()
	return newRootCmd(&release)
}

func newRootCmd(release *func()) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treb-ccip",
		Short: "Deploy CCIP cross-chain tokens and move them between testnets",
		Long: `treb-ccip walks a burn-and-mint token through the seven stages needed to
make it transferable over Chainlink CCIP, on Avalanche Fuji and Arbitrum
Sepolia, and then sends it across with a live fee quote.

It can also send a Chainlink Functions request to a consumer contract.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot := config.FindProjectRoot()
			config.LoadEnvFiles(projectRoot)

			v := config.SetupViper(projectRoot, cmd)

			appInstance, cleanup, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cancel := context.CancelFunc(func() {})
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			*release = func() {
				cancel()
				cleanup()
			}
			cmd.SetContext(ctx)

			appInstance.Log.Debug("app initialized", "project", projectRoot, "deployment", appInstance.Config.Deployment)
			return nil
		},
	}

	// Global flags. Every one of them is bound to the config key of the same
	// name with dashes turned into underscores.
	flags := rootCmd.PersistentFlags()
	flags.StringP("network", "n", "", "Network to act on (fuji, arbitrum-sepolia)")
	flags.StringP("deployment", "d", "default", "Name of the pipeline state to use")
	flags.Bool("debug", false, "Enable debug output")
	flags.Bool("non-interactive", false, "Disable interactive prompts")
	flags.Bool("json", false, "Output results as JSON")
	flags.String("private-key", "", "Private key used to sign transactions")
	flags.String("signer-endpoint", "", "JSON-RPC endpoint of a remote signer")
	flags.String("signer-api-key", "", "API key sent to the remote signer")
	flags.String("signer-address", "", "Account held by the remote signer")
	flags.Uint64("confirmations", 1, "Block confirmations to wait for before recording a transaction")
	flags.Duration("timeout", 5*time.Minute, "Overall command timeout")
	flags.String("rate-limits", "", "YAML file with outbound/inbound rate limits for configure-pool")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	pipelineCmd := NewPipelineCmd()
	pipelineCmd.GroupID = "main"
	rootCmd.AddCommand(pipelineCmd)

	transferCmd := NewTransferCmd()
	transferCmd.GroupID = "main"
	rootCmd.AddCommand(transferCmd)

	functionsCmd := NewFunctionsCmd()
	functionsCmd.GroupID = "main"
	rootCmd.AddCommand(functionsCmd)

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	contractsCmd := NewContractsCmd()
	contractsCmd.GroupID = "management"
	rootCmd.AddCommand(contractsCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
