package cli

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/app"
	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	domainconfig "github.com/trebuchet-org/treb-ccip/internal/domain/config"
)

func testRuntimeConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		Deployment: "default",
		Token: domainconfig.TokenDefaults{
			Name:      "Config Token",
			Symbol:    "CFG",
			Decimals:  6,
			MaxSupply: "1000",
			PreMint:   "10",
		},
		Pool: domainconfig.PoolDefaults{
			LocalTokenDecimals: 6,
			Allowlist:          []string{"0x1000000000000000000000000000000000000001"},
			AdminMode:          "ccip-admin",
		},
		RateLimits: domain.DefaultRateLimits(),
	}
}

func parseStageFlags(t *testing.T, args ...string) (*cobra.Command, *stageFlags) {
	t.Helper()
	var flags stageFlags
	cmd := &cobra.Command{Use: "run"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &flags
}

func TestStageFlags_Options(t *testing.T) {
	a := &app.App{Config: testRuntimeConfig()}
	ctx := context.Background()

	t.Run("falls back to config", func(t *testing.T) {
		cmd, flags := parseStageFlags(t)
		opts, err := flags.options(ctx, cmd, a, "default", "")
		require.NoError(t, err)

		assert.Equal(t, "Config Token", opts.Token.Name)
		assert.Equal(t, "CFG", opts.Token.Symbol)
		assert.Equal(t, uint8(6), opts.Token.Decimals)
		assert.Equal(t, big.NewInt(1_000_000_000), opts.Token.MaxSupply)
		assert.Equal(t, big.NewInt(10_000_000), opts.Token.PreMint)
		assert.Equal(t, uint8(6), opts.LocalTokenDecimals)
		assert.Equal(t, []common.Address{common.HexToAddress("0x1000000000000000000000000000000000000001")}, opts.Allowlist)
		assert.Equal(t, domain.AdminViaCCIPAdmin, opts.AdminMode)
		assert.Nil(t, opts.MintRecipient)
		assert.Nil(t, opts.MintAmount)
	})

	t.Run("flags win", func(t *testing.T) {
		cmd, flags := parseStageFlags(t,
			"--name", "Flag Token", "--symbol", "FLG", "--decimals", "2",
			"--max-supply", "0", "--pre-mint", "1.5",
			"--pool-decimals", "2", "--allowlist", "",
			"--admin-mode", "owner", "--to", "0x2000000000000000000000000000000000000002")
		opts, err := flags.options(ctx, cmd, a, "default", "")
		require.NoError(t, err)

		assert.Equal(t, "Flag Token", opts.Token.Name)
		assert.Equal(t, uint8(2), opts.Token.Decimals)
		assert.Zero(t, opts.Token.MaxSupply.Sign())
		assert.Equal(t, big.NewInt(150), opts.Token.PreMint)
		assert.Equal(t, uint8(2), opts.LocalTokenDecimals)
		assert.Empty(t, opts.Allowlist)
		assert.Equal(t, domain.AdminViaOwner, opts.AdminMode)
		require.NotNil(t, opts.MintRecipient)
		assert.Equal(t, common.HexToAddress("0x2000000000000000000000000000000000000002"), *opts.MintRecipient)
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
		}{
			{name: "admin mode", args: []string{"--admin-mode", "root"}},
			{name: "allowlist", args: []string{"--allowlist", "0x12"}},
			{name: "recipient", args: []string{"--to", "nope"}},
			{name: "pre-mint precision", args: []string{"--decimals", "2", "--pre-mint", "0.001"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cmd, flags := parseStageFlags(t, tt.args...)
				_, err := flags.options(ctx, cmd, a, "default", "")
				assert.Error(t, err)
			})
		}
	})
}

type fakeSelector struct {
	offered []domain.NetworkKey
	pick    domain.NetworkKey
}

func (f *fakeSelector) SelectNetwork(_ context.Context, _ string, options []domain.Descriptor) (domain.NetworkKey, error) {
	for _, o := range options {
		f.offered = append(f.offered, o.Key)
	}
	return f.pick, nil
}

func TestResolveNetwork(t *testing.T) {
	registry, err := config.NewRegistry(config.DefaultDescriptors())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("configured network", func(t *testing.T) {
		selector := &fakeSelector{}
		cfg := testRuntimeConfig()
		cfg.Network = domain.NetworkArbitrum
		a := &app.App{Config: cfg, Registry: registry, Selector: selector}

		key, err := resolveNetwork(ctx, a, "pick")
		require.NoError(t, err)
		assert.Equal(t, domain.NetworkArbitrum, key)
		assert.Empty(t, selector.offered)
	})

	t.Run("asks without a configured network", func(t *testing.T) {
		selector := &fakeSelector{pick: domain.NetworkFuji}
		a := &app.App{Config: testRuntimeConfig(), Registry: registry, Selector: selector}

		key, err := resolveNetwork(ctx, a, "pick")
		require.NoError(t, err)
		assert.Equal(t, domain.NetworkFuji, key)
		assert.Equal(t, []domain.NetworkKey{domain.NetworkFuji, domain.NetworkArbitrum}, selector.offered)
	})

	t.Run("destination excludes the source", func(t *testing.T) {
		selector := &fakeSelector{pick: domain.NetworkArbitrum}
		a := &app.App{Config: testRuntimeConfig(), Registry: registry, Selector: selector}

		key, err := pickNetwork(ctx, a, "", "to", domain.NetworkFuji)
		require.NoError(t, err)
		assert.Equal(t, domain.NetworkArbitrum, key)
		assert.Equal(t, []domain.NetworkKey{domain.NetworkArbitrum}, selector.offered)

		key, err = pickNetwork(ctx, a, "fuji", "to")
		require.NoError(t, err)
		assert.Equal(t, domain.NetworkFuji, key)
	})
}
