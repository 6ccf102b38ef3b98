package config

// LocalConfig holds the per-project defaults kept in config.local.json.
// Viper reads the same file, so both keys apply when their flag is omitted.
type LocalConfig struct {
	Network    string `json:"network,omitempty"`
	Deployment string `json:"deployment,omitempty"`
}

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{
		Deployment: "default",
	}
}

// ConfigKey names a value that can be kept in the local config
type ConfigKey string

const (
	ConfigKeyNetwork    ConfigKey = "network"
	ConfigKeyDeployment ConfigKey = "deployment"
)

// ValidConfigKeys returns the keys accepted by config set and config remove
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{ConfigKeyNetwork, ConfigKeyDeployment}
}

// NormalizeConfigKey maps aliases onto their ConfigKey. ok is false for
// unknown keys.
func NormalizeConfigKey(key string) (ConfigKey, bool) {
	switch key {
	case "network", "net":
		return ConfigKeyNetwork, true
	case "deployment", "dep":
		return ConfigKeyDeployment, true
	}
	return "", false
}
