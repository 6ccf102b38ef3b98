package cli

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-ccip/internal/app"
	"github.com/trebuchet-org/treb-ccip/internal/cli/render"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// transferFlags describe one transfer. The source network is the global
// --network.
type transferFlags struct {
	to       string
	token    string
	amount   string
	receiver string
	fee      string
}

func (f *transferFlags) register(cmd *cobra.Command, withAmount bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.to, "to", "", "Destination network, defaults to the other supported network")
	fs.StringVar(&f.token, "token", "", "Token address, defaults to the deployment's token on the source network")
	fs.StringVar(&f.receiver, "receiver", "", "Receiver on the destination network, defaults to the signer")
	fs.StringVar(&f.fee, "fee", string(domain.FeeNative), "Pay the CCIP fee in native or link")
	if withAmount {
		fs.StringVar(&f.amount, "amount", "", "Amount in whole tokens, e.g. 1.5")
	}
}

// route resolves the source and destination networks and the token
func (f *transferFlags) route(ctx context.Context, a *app.App) (source, dest domain.NetworkKey, token common.Address, err error) {
	if source, err = resolveNetwork(ctx, a, "Send from"); err != nil {
		return
	}
	if dest, err = pickNetwork(ctx, a, f.to, "Send to", source); err != nil {
		return
	}
	if f.token != "" {
		token, err = parseAddress("token", f.token)
		return
	}

	status, err := a.ShowPipelineStatus.Run(ctx, usecase.ShowPipelineStatusParams{Deployment: a.Config.Deployment})
	if err != nil {
		return
	}
	rec := status.State.Network(source)
	if rec.Token == nil {
		err = fmt.Errorf("no token recorded on %s for deployment %q: pass --token", source, a.Config.Deployment)
		return
	}
	return source, dest, *rec.Token, nil
}

// request builds the full transfer. The signer's balance is returned when a
// wallet is configured.
func (f *transferFlags) request(ctx context.Context, a *app.App) (domain.TransferRequest, domain.TokenMetadata, *usecase.TokenBalance, error) {
	source, dest, token, err := f.route(ctx, a)
	if err != nil {
		return domain.TransferRequest{}, domain.TokenMetadata{}, nil, err
	}
	currency, err := domain.ParseFeeCurrency(f.fee)
	if err != nil {
		return domain.TransferRequest{}, domain.TokenMetadata{}, nil, err
	}
	amount, meta, err := a.TransferTokens.ParseAmount(ctx, source, token, f.amount)
	if err != nil {
		return domain.TransferRequest{}, meta, nil, err
	}

	balance, balanceErr := a.TransferTokens.Balance(ctx, source, token)
	var receiver common.Address
	switch {
	case f.receiver != "":
		if receiver, err = parseAddress("receiver", f.receiver); err != nil {
			return domain.TransferRequest{}, meta, nil, err
		}
	case balanceErr != nil:
		return domain.TransferRequest{}, meta, nil, fmt.Errorf("receiver defaults to the signer: %w", balanceErr)
	default:
		receiver = balance.Account
	}

	req := domain.TransferRequest{
		Source:      source,
		Destination: dest,
		Token:       token,
		Amount:      amount,
		Receiver:    receiver,
		FeeCurrency: currency,
	}
	return req, meta, balance, req.Validate()
}

// NewTransferCmd creates the transfer command group
func NewTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send tokens across chains over CCIP",
		Long: `Quote, approve and send CCIP token transfers from the --network chain to
the other supported chain. Every attempt is recorded in
.treb-ccip/transfers.json.`,
	}

	cmd.AddCommand(newTransferQuoteCmd())
	cmd.AddCommand(newTransferApproveCmd())
	cmd.AddCommand(newTransferSendCmd())
	cmd.AddCommand(newTransferInteractiveCmd())
	cmd.AddCommand(newTransferHistoryCmd())

	return cmd
}

func newTransferQuoteCmd() *cobra.Command {
	var flags transferFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate the CCIP fee for a transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			req, meta, balance, err := flags.request(cmd.Context(), app)
			if err != nil {
				return err
			}
			quote, err := app.TransferTokens.Quote(cmd.Context(), req)
			if err != nil {
				return err
			}

			result := &render.TransferQuote{Quote: quote, Token: meta, Balance: balance}
			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewTransferQuoteRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	flags.register(cmd, true)

	return cmd
}

func newTransferApproveCmd() *cobra.Command {
	var flags transferFlags

	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve the router to spend the token and fee for a transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			req, _, _, err := flags.request(cmd.Context(), app)
			if err != nil {
				return err
			}
			attempt, approveErr := app.TransferTokens.ApproveOnly(cmd.Context(), req)
			if attempt == nil {
				return approveErr
			}

			if app.Config.JSON {
				if err := render.RenderJSON(cmd.OutOrStdout(), attempt); err != nil {
					return err
				}
				return approveErr
			}
			if approveErr == nil && attempt.ApprovalTx == nil {
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Allowances already cover this transfer"))
				return nil
			}
			if err := render.NewTransferAttemptRenderer(cmd.OutOrStdout(), app.Registry).Render(attempt); err != nil {
				return err
			}
			return approveErr
		},
	}

	flags.register(cmd, true)

	return cmd
}

func newTransferSendCmd() *cobra.Command {
	var (
		flags   transferFlags
		approve bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a cross-chain transfer",
		Long: `Estimate the fee, check allowances and call ccipSend. Missing approvals
fail the transfer unless --approve is given.

Examples:
  treb-ccip transfer send -n fuji --amount 10
  treb-ccip transfer send -n arbitrum-sepolia --amount 0.5 --fee link --approve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			req, meta, balance, err := flags.request(ctx, app)
			if err != nil {
				return err
			}

			if !yes && !app.Config.NonInteractive {
				quote, err := app.TransferTokens.Quote(ctx, req)
				if err != nil {
					return err
				}
				if err := render.NewTransferQuoteRenderer(cmd.OutOrStdout()).Render(&render.TransferQuote{Quote: quote, Token: meta, Balance: balance}); err != nil {
					return err
				}
				ok, err := app.Confirmer.Confirm("Send this transfer")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Transfer cancelled.")
					return nil
				}
			}

			return sendTransfer(cmd, app, usecase.SendTransferParams{Request: req, ApproveFirst: approve})
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&approve, "approve", false, "Submit missing approvals before sending")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the quote confirmation")

	return cmd
}

func newTransferInteractiveCmd() *cobra.Command {
	var flags transferFlags

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Fill in a transfer with a live fee quote",
		Long: `Open a form for the amount, receiver and fee currency. The fee is
re-estimated shortly after every edit, and only the latest estimate is shown.
Enter sends once the shown fee matches the form; approvals are submitted
first when needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if app.Config.NonInteractive {
				return fmt.Errorf("transfer interactive needs a terminal: use transfer send in non-interactive mode")
			}
			ctx := cmd.Context()

			sourceKey, destKey, token, err := flags.route(ctx, app)
			if err != nil {
				return err
			}
			source, err := app.Registry.Descriptor(sourceKey)
			if err != nil {
				return err
			}
			dest, err := app.Registry.Descriptor(destKey)
			if err != nil {
				return err
			}
			balance, err := app.TransferTokens.Balance(ctx, sourceKey, token)
			if err != nil {
				return err
			}
			receiver := balance.Account
			if flags.receiver != "" {
				if receiver, err = parseAddress("receiver", flags.receiver); err != nil {
					return err
				}
			}

			quote, err := runTransferForm(ctx, app.FeeEstimator, app.Config.Debounce, cmd.OutOrStdout(),
				source, dest, balance.Metadata, receiver)
			if err != nil {
				return err
			}

			return sendTransfer(cmd, app, usecase.SendTransferParams{Request: quote.Request, ApproveFirst: true})
		},
	}

	flags.register(cmd, false)

	return cmd
}

// sendTransfer sends and renders the recorded attempt, failed ones included
func sendTransfer(cmd *cobra.Command, a *app.App, params usecase.SendTransferParams) error {
	attempt, sendErr := a.TransferTokens.Send(cmd.Context(), params)
	if attempt == nil {
		return sendErr
	}

	if a.Config.JSON {
		if err := render.RenderJSON(cmd.OutOrStdout(), attempt); err != nil {
			return err
		}
		return sendErr
	}
	if err := render.NewTransferAttemptRenderer(cmd.OutOrStdout(), a.Registry).Render(attempt); err != nil {
		return err
	}
	return sendErr
}

func newTransferHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded transfers, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			attempts, err := app.ListTransfers.Run(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), attempts)
			}
			return render.NewTransferHistoryRenderer(cmd.OutOrStdout()).Render(attempts)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of transfers to show, 0 for all")

	return cmd
}
