package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-ccip/internal/cli/render"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// NewPipelineCmd creates the pipeline command group
func NewPipelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Deploy and configure a cross-chain token",
		Long: `Run the seven stages that make a burn-and-mint token transferable over CCIP:

  1. deploy-token     Deploy BurnMintERC20
  2. deploy-pool      Deploy BurnMintTokenPool for the token
  3. grant-roles      Grant the pool mint and burn roles
  4. claim-admin      Register and accept the token admin role
  5. link-pool        Point the TokenAdminRegistry at the pool
  6. configure-pool   Add the remote chain to each pool
  7. mint             Mint test supply (repeatable)

Progress is stored per deployment in .treb-ccip/deployments/<name>.json.
A stage becomes available once the previous one is complete on every network.`,
	}

	cmd.AddCommand(newPipelineStatusCmd())
	cmd.AddCommand(newPipelineRunCmd())
	cmd.AddCommand(newPipelineAdvanceCmd())
	cmd.AddCommand(newPipelineSetCmd())
	cmd.AddCommand(newPipelineResetCmd())

	return cmd
}

func newPipelineStatusCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pipeline progress on every network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowPipelineStatus.Run(cmd.Context(), usecase.ShowPipelineStatusParams{
				Deployment: app.Config.Deployment,
				Verify:     verify,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewPipelineStatusRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Check on chain that recorded addresses hold code")

	return cmd
}

func newPipelineRunCmd() *cobra.Command {
	var flags stageFlags

	cmd := &cobra.Command{
		Use:   "run <stage>",
		Short: "Run one stage on one network",
		Long: `Run a single stage on the network given with --network, or picked
interactively. The stage is a name or its number (1-7).

Examples:
  treb-ccip pipeline run deploy-token -n fuji --name "My Token" --symbol MTK
  treb-ccip pipeline run 2 -n arbitrum-sepolia
  treb-ccip pipeline run claim-admin -n fuji --admin-mode ccip-admin
  treb-ccip pipeline run mint -n fuji --amount 1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			stage, err := domain.ParseStage(args[0])
			if err != nil {
				return err
			}
			network, err := resolveNetwork(cmd.Context(), app, fmt.Sprintf("Run %s on", stage.Title()))
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd.Context(), cmd, app, app.Config.Deployment, network)
			if err != nil {
				return err
			}

			result, err := app.RunPipelineStage.Run(cmd.Context(), usecase.RunPipelineStageParams{
				Deployment: app.Config.Deployment,
				Stage:      stage,
				Network:    network,
				Options:    opts,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewStageResultRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	flags.register(cmd)

	return cmd
}

func newPipelineAdvanceCmd() *cobra.Command {
	var flags stageFlags

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Run the active stage on every network that needs it",
		Long: `Run the active stage on each network where it is enabled, one network at
a time. Stops at the first failure; completed networks stay recorded.
Once every setup stage is done, mint with "pipeline run mint -n <network>".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			opts, err := flags.options(cmd.Context(), cmd, app, app.Config.Deployment, "")
			if err != nil {
				return err
			}

			results, runErr := app.RunPipelineStage.Advance(cmd.Context(), usecase.AdvancePipelineParams{
				Deployment: app.Config.Deployment,
				Options:    opts,
			})

			if app.Config.JSON {
				if err := render.RenderJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
				return runErr
			}
			renderer := render.NewStageResultRenderer(cmd.OutOrStdout())
			for _, result := range results {
				if err := renderer.Render(result); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	flags.register(cmd)

	return cmd
}

func newPipelineSetCmd() *cobra.Command {
	var (
		token      string
		pool       string
		skipVerify bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record token and pool addresses deployed elsewhere",
		Long: `Record a token and/or pool address on one network, completing the deploy
stages for it. Addresses are checked for code on chain unless --no-verify.

Examples:
  treb-ccip pipeline set -n fuji --token 0x... --pool 0x...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			tokenAddr, err := parseOptionalAddress("token", token)
			if err != nil {
				return err
			}
			poolAddr, err := parseOptionalAddress("pool", pool)
			if err != nil {
				return err
			}
			network, err := resolveNetwork(cmd.Context(), app, "Record addresses on")
			if err != nil {
				return err
			}

			state, err := app.ImportAddresses.Run(cmd.Context(), usecase.ImportAddressesParams{
				Deployment: app.Config.Deployment,
				Network:    network,
				Token:      tokenAddr,
				Pool:       poolAddr,
				SkipVerify: skipVerify,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), state)
			}
			return render.NewStageResultRenderer(cmd.OutOrStdout()).RenderImported(network, state)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Token address")
	cmd.Flags().StringVar(&pool, "pool", "", "Token pool address")
	cmd.Flags().BoolVar(&skipVerify, "no-verify", false, "Skip the on-chain code check")

	return cmd
}

func newPipelineResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the recorded progress of a deployment",
		Long: `Delete the state file of the deployment. Contracts already deployed are
left untouched on chain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name := app.Config.Deployment
			if !yes {
				ok, err := app.Confirmer.Confirm(fmt.Sprintf("Reset deployment %q", name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
					return nil
				}
			}

			if err := app.ResetPipeline.Run(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Deployment %q reset", name)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
