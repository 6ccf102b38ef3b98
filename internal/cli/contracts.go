package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-ccip/internal/cli/render"
)

// NewContractsCmd creates the contracts command group
func NewContractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Manage the deployable contract artifacts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "build",
		Short: "Compile BurnMintERC20 and BurnMintTokenPool with forge",
		Long: `Run forge build in the project root. The pipeline reads bytecode from the
resulting out/<Name>.sol/<Name>.json artifacts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.BuildContracts.Run(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Contracts built"))
			return nil
		},
	})

	return cmd
}
