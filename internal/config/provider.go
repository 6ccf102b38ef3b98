package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
)

// RuntimeConfig is the resolved configuration shared with use cases
type RuntimeConfig = config.RuntimeConfig

// DataDirName is the per-project state directory
const DataDirName = ".treb-ccip"

// EnvPrefix prefixes every environment variable read through viper
const EnvPrefix = "TREB_CCIP"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Deployment:     v.GetString("deployment"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		Confirmations:  v.GetUint64("confirmations"),
		Debounce:       v.GetDuration("debounce"),
	}
	if cfg.Confirmations == 0 {
		cfg.Confirmations = 1
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}

	if name := v.GetString("network"); name != "" {
		key, err := domain.ParseNetworkKey(name)
		if err != nil {
			return nil, err
		}
		cfg.Network = key
	}

	networks, err := LoadDescriptors(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.Networks = networks

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.Foundry = foundryConfig

	cfg.Signer = signerConfig(v)

	cfg.Token = config.TokenDefaults{
		Name:      v.GetString("token.name"),
		Symbol:    v.GetString("token.symbol"),
		Decimals:  uint8(v.GetUint("token.decimals")),
		MaxSupply: v.GetString("token.max_supply"),
		PreMint:   v.GetString("token.pre_mint"),
	}
	cfg.Pool = config.PoolDefaults{
		LocalTokenDecimals: uint8(v.GetUint("pool.decimals")),
		Allowlist:          v.GetStringSlice("pool.allowlist"),
		AdminMode:          v.GetString("pool.admin_mode"),
	}

	cfg.RateLimits, err = LoadRateLimits(resolvePath(projectRoot, v.GetString("rate_limits")))
	if err != nil {
		return nil, err
	}

	functionsNetwork, err := domain.ParseNetworkKey(v.GetString("functions.network"))
	if err != nil {
		return nil, fmt.Errorf("functions.network: %w", err)
	}
	cfg.Functions = config.FunctionsConfig{
		Network:        functionsNetwork,
		Consumer:       v.GetString("functions.consumer"),
		SubscriptionID: v.GetUint64("functions.subscription_id"),
		GasLimit:       v.GetUint32("functions.gas_limit"),
		DonID:          v.GetString("functions.don_id"),
		Confirmations:  v.GetUint64("functions.confirmations"),
		SourceFile:     resolvePath(projectRoot, v.GetString("functions.source")),
	}

	return cfg, nil
}

func signerConfig(v *viper.Viper) config.SignerConfig {
	s := config.SignerConfig{
		PrivateKey: v.GetString("private_key"),
		Endpoint:   v.GetString("signer_endpoint"),
		APIKey:     v.GetString("signer_api_key"),
		Address:    v.GetString("signer_address"),
	}
	switch {
	case s.Endpoint != "":
		s.Type = config.SignerTypeRemote
	case s.PrivateKey != "":
		s.Type = config.SignerTypePrivateKey
	default:
		s.Type = config.SignerTypeNone
	}
	return s
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// FindProjectRoot walks up from the current directory looking for a
// .treb-ccip directory, networks.toml or foundry.toml. It falls back to the
// current directory.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		for _, marker := range []string{DataDirName, NetworksFile, "foundry.toml"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("deployment", "default")
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("confirmations", 1)
	v.SetDefault("debounce", "500ms")
	v.SetDefault("token.decimals", 18)
	v.SetDefault("token.max_supply", "0")
	v.SetDefault("token.pre_mint", "0")
	v.SetDefault("pool.decimals", 18)
	v.SetDefault("pool.admin_mode", string(domain.AdminViaOwner))
	v.SetDefault("functions.network", string(domain.NetworkFuji))
	v.SetDefault("functions.consumer", "0x59a694498d7cc2b89ac004de0f86305c741fedeb")
	v.SetDefault("functions.subscription_id", 15689)
	v.SetDefault("functions.gas_limit", 300000)
	v.SetDefault("functions.don_id", "fun-avalanche-fuji-1")
	v.SetDefault("functions.confirmations", 2)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	// Only global flags map onto config keys. Command flags such as --token
	// would otherwise shadow the token.* section.
	if cmd != nil {
		cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
