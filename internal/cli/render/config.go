package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// ConfigRenderer renders the resolved configuration
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// Render prints every resolved setting. Secrets are masked.
func (r *ConfigRenderer) Render(cfg *config.RuntimeConfig) error {
	fmt.Fprintln(r.out, "📋 Current config:")
	r.section("Project")
	r.line("Root", cfg.ProjectRoot)
	r.line("Data dir", getRelativePath(cfg.DataDir))
	r.line("Deployment", cfg.Deployment)
	r.line("Network", orUnset(cfg.Network.String()))
	r.line("Confirmations", fmt.Sprint(cfg.Confirmations))
	r.line("Debounce", cfg.Debounce.String())
	r.line("Timeout", cfg.Timeout.String())

	r.section("Signer")
	switch cfg.Signer.Type {
	case config.SignerTypePrivateKey:
		r.line("Type", "private key")
		r.line("Key", MaskSecret(cfg.Signer.PrivateKey))
	case config.SignerTypeRemote:
		r.line("Type", "remote")
		r.line("Endpoint", cfg.Signer.Endpoint)
		r.line("Address", cfg.Signer.Address)
		if cfg.Signer.APIKey != "" {
			r.line("API key", MaskSecret(cfg.Signer.APIKey))
		}
	default:
		r.line("Type", pendingStyle.Sprint("(not configured)"))
	}

	r.section("Token defaults")
	r.line("Name", orUnset(cfg.Token.Name))
	r.line("Symbol", orUnset(cfg.Token.Symbol))
	r.line("Decimals", fmt.Sprint(cfg.Token.Decimals))
	r.line("Max supply", cfg.Token.MaxSupply)
	r.line("Pre-mint", cfg.Token.PreMint)

	r.section("Pool defaults")
	r.line("Decimals", fmt.Sprint(cfg.Pool.LocalTokenDecimals))
	r.line("Allowlist", orUnset(strings.Join(cfg.Pool.Allowlist, ", ")))
	r.line("Admin mode", cfg.Pool.AdminMode)
	r.line("Outbound", limiter(cfg.RateLimits.Outbound))
	r.line("Inbound", limiter(cfg.RateLimits.Inbound))

	r.section("Functions")
	r.line("Network", cfg.Functions.Network.String())
	r.line("Consumer", cfg.Functions.Consumer)
	r.line("Subscription", fmt.Sprint(cfg.Functions.SubscriptionID))
	r.line("Gas limit", fmt.Sprint(cfg.Functions.GasLimit))
	r.line("DON id", cfg.Functions.DonID)
	r.line("Source", orUnset(cfg.Functions.SourceFile))

	r.section("Networks")
	for _, d := range cfg.Networks {
		r.line(d.Key.String(), fmt.Sprintf("%s, chain %d, %s", d.Name, d.ChainID, d.RPCURL))
	}
	return nil
}

// RenderSet reports a value written to the local config
func (r *ConfigRenderer) RenderSet(result *usecase.LocalConfigResult) error {
	fmt.Fprintf(r.out, "%s Set %s to: %s\n", okStyle.Sprint("✓"), result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 Config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove reports a value removed from the local config
func (r *ConfigRenderer) RenderRemove(result *usecase.LocalConfigResult) error {
	switch result.Key {
	case config.ConfigKeyDeployment:
		fmt.Fprintf(r.out, "%s Reset deployment to: %s\n", okStyle.Sprint("✓"), result.UpdatedConfig.Deployment)
	default:
		fmt.Fprintf(r.out, "%s Removed %s from config (was: %s)\n", okStyle.Sprint("✓"), result.Key, orUnset(result.Value))
	}
	fmt.Fprintf(r.out, "📁 Config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func (r *ConfigRenderer) section(title string) {
	fmt.Fprintf(r.out, "\n%s\n", sectionHeaderStyle.Sprint(title))
}

func (r *ConfigRenderer) line(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-14s", label+":"), value)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func limiter(c domain.RateLimiterConfig) string {
	if !c.IsEnabled {
		return "disabled"
	}
	return fmt.Sprintf("capacity %s, rate %s/s", c.Capacity, c.Rate)
}

// MaskSecret keeps a short prefix and the last four characters of a secret
func MaskSecret(s string) string {
	if len(s) <= 10 {
		return strings.Repeat("*", len(s))
	}
	return s[:6] + strings.Repeat("*", 8) + s[len(s)-4:]
}

var _ Renderer[*config.RuntimeConfig] = (*ConfigRenderer)(nil)
