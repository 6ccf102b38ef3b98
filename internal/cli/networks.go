package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-ccip/internal/cli/render"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List supported networks",
		Long: `List the networks treb-ccip can deploy to, with their CCIP chain selector,
router and RPC endpoint after networks.toml overrides.

With --check every RPC endpoint is queried and its chain id compared with
the expected one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Check: check})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Query each RPC endpoint for its chain id")

	return cmd
}
