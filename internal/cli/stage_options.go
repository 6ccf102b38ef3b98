package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-ccip/internal/app"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// stageFlags are the per-stage parameters accepted by pipeline run and
// pipeline advance. Unset flags fall back to the token.* and pool.* config.
type stageFlags struct {
	name         string
	symbol       string
	decimals     uint8
	maxSupply    string
	preMint      string
	poolDecimals uint8
	allowlist    []string
	adminMode    string
	to           string
	amount       string
}

func (f *stageFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Token name (deploy-token)")
	fs.StringVar(&f.symbol, "symbol", "", "Token symbol (deploy-token)")
	fs.Uint8Var(&f.decimals, "decimals", 18, "Token decimals (deploy-token)")
	fs.StringVar(&f.maxSupply, "max-supply", "0", "Maximum supply in whole tokens, 0 for unlimited (deploy-token)")
	fs.StringVar(&f.preMint, "pre-mint", "0", "Amount minted to the deployer in whole tokens (deploy-token)")
	fs.Uint8Var(&f.poolDecimals, "pool-decimals", 18, "Local token decimals of the pool (deploy-pool)")
	fs.StringSliceVar(&f.allowlist, "allowlist", nil, "Addresses allowed to send through the pool (deploy-pool)")
	fs.StringVar(&f.adminMode, "admin-mode", "", "How to claim the admin role: owner or ccip-admin (claim-admin)")
	fs.StringVar(&f.to, "to", "", "Mint recipient, defaults to the signer (mint)")
	fs.StringVar(&f.amount, "amount", "", "Amount to mint in whole tokens (mint)")
}

// options resolves the flags against the config defaults. The mint amount
// is scaled by the decimals of the token recorded on mintNetwork.
func (f *stageFlags) options(ctx context.Context, cmd *cobra.Command, a *app.App, deployment string, mintNetwork domain.NetworkKey) (usecase.StageOptions, error) {
	cfg := a.Config
	changed := cmd.Flags().Changed

	token := domain.TokenParams{
		Name:     f.name,
		Symbol:   f.symbol,
		Decimals: f.decimals,
	}
	if token.Name == "" {
		token.Name = cfg.Token.Name
	}
	if token.Symbol == "" {
		token.Symbol = cfg.Token.Symbol
	}
	if !changed("decimals") && cfg.Token.Decimals != 0 {
		token.Decimals = cfg.Token.Decimals
	}

	maxSupply, preMint := f.maxSupply, f.preMint
	if !changed("max-supply") && cfg.Token.MaxSupply != "" {
		maxSupply = cfg.Token.MaxSupply
	}
	if !changed("pre-mint") && cfg.Token.PreMint != "" {
		preMint = cfg.Token.PreMint
	}
	var err error
	if token.MaxSupply, err = domain.ParseUnits(maxSupply, token.Decimals); err != nil {
		return usecase.StageOptions{}, fmt.Errorf("--max-supply: %w", err)
	}
	if token.PreMint, err = domain.ParseUnits(preMint, token.Decimals); err != nil {
		return usecase.StageOptions{}, fmt.Errorf("--pre-mint: %w", err)
	}

	opts := usecase.StageOptions{
		Token:              token,
		LocalTokenDecimals: f.poolDecimals,
		RateLimits:         cfg.RateLimits,
	}
	if !changed("pool-decimals") && cfg.Pool.LocalTokenDecimals != 0 {
		opts.LocalTokenDecimals = cfg.Pool.LocalTokenDecimals
	}

	allowlist := f.allowlist
	if !changed("allowlist") {
		allowlist = cfg.Pool.Allowlist
	}
	if opts.Allowlist, err = parseAddresses("allowlist", allowlist); err != nil {
		return usecase.StageOptions{}, err
	}

	mode := f.adminMode
	if mode == "" {
		mode = cfg.Pool.AdminMode
	}
	if opts.AdminMode, err = domain.ParseAdminClaimMode(mode); err != nil {
		return usecase.StageOptions{}, err
	}

	if opts.MintRecipient, err = parseOptionalAddress("mint recipient", f.to); err != nil {
		return usecase.StageOptions{}, err
	}
	if f.amount != "" {
		if opts.MintAmount, err = mintAmount(ctx, a, deployment, mintNetwork, f.amount, token.Decimals); err != nil {
			return usecase.StageOptions{}, fmt.Errorf("--amount: %w", err)
		}
	}

	return opts, nil
}

// mintAmount scales amount by the decimals of the deployed token. Before the
// token exists the configured decimals are used.
func mintAmount(ctx context.Context, a *app.App, deployment string, network domain.NetworkKey, amount string, fallback uint8) (*big.Int, error) {
	status, err := a.ShowPipelineStatus.Run(ctx, usecase.ShowPipelineStatusParams{Deployment: deployment})
	if err != nil {
		return nil, err
	}
	if network == "" {
		for _, d := range status.Networks {
			if status.State.Network(d.Key).Token != nil {
				network = d.Key
				break
			}
		}
	}
	if rec := status.State.Network(network); network != "" && rec != nil && rec.Token != nil {
		v, _, err := a.TransferTokens.ParseAmount(ctx, network, *rec.Token, amount)
		return v, err
	}
	return domain.ParseUnits(amount, fallback)
}
