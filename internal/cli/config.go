package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-ccip/internal/cli/render"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and manage treb-ccip config",
		Long: `Show the resolved configuration, or manage the local defaults stored in
.treb-ccip/config.local.json.

The local config holds the network and deployment used when --network and
--deployment are not given.

Available subcommands:
  config show      Show the resolved config
  config set       Set a local default
  config remove    Remove a local default

When run without subcommands, displays the resolved config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the resolved config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	})
	cmd.AddCommand(NewConfigSetCmd())
	cmd.AddCommand(NewConfigRemoveCmd())

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a local default",
		Long: `Set a value in the local config.
Available keys: network (net), deployment (dep)

Examples:
  treb-ccip config set network fuji
  treb-ccip config set deployment my-token`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
				Key:   args[0],
				Value: args[1],
			})
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderSet(result)
		},
	}
}

// NewConfigRemoveCmd creates the config remove subcommand
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a local default",
		Long: `Remove a value from the local config.
Removing network makes it unspecified (prompted for, or required as a flag).
Removing deployment reverts it to 'default'.

Examples:
  treb-ccip config remove network
  treb-ccip config remove deployment`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RemoveConfig.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderRemove(result)
		},
	}
}

// showConfig displays the resolved configuration
func showConfig(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	if app.Config.JSON {
		// Secrets never leave through JSON output
		cfg := *app.Config
		cfg.Signer.PrivateKey = render.MaskSecret(cfg.Signer.PrivateKey)
		cfg.Signer.APIKey = render.MaskSecret(cfg.Signer.APIKey)
		return render.RenderJSON(cmd.OutOrStdout(), cfg)
	}
	return render.NewConfigRenderer(cmd.OutOrStdout()).Render(app.Config)
}
