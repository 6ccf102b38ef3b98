package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// LocalConfigResult is the local config after a change
type LocalConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string // the new value, or the removed one
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store LocalConfigRepository
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigRepository) *SetConfig {
	return &SetConfig{store: store}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*LocalConfigResult, error) {
	key, err := parseConfigKey(params.Key)
	if err != nil {
		return nil, err
	}

	value := strings.TrimSpace(params.Value)
	switch key {
	case config.ConfigKeyNetwork:
		network, err := domain.ParseNetworkKey(value)
		if err != nil {
			return nil, err
		}
		value = string(network)
	case config.ConfigKeyDeployment:
		if value == "" || strings.ContainsAny(value, `/\`) {
			return nil, fmt.Errorf("invalid deployment name %q", params.Value)
		}
	}

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	switch key {
	case config.ConfigKeyNetwork:
		local.Network = value
	case config.ConfigKeyDeployment:
		local.Deployment = value
	}
	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &LocalConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         value,
	}, nil
}

// RemoveConfig is a use case for removing configuration values
type RemoveConfig struct {
	store LocalConfigRepository
}

// NewRemoveConfig creates a new RemoveConfig use case
func NewRemoveConfig(store LocalConfigRepository) *RemoveConfig {
	return &RemoveConfig{store: store}
}

// Run removes key. The network becomes unset and the deployment reverts to
// "default".
func (uc *RemoveConfig) Run(ctx context.Context, rawKey string) (*LocalConfigResult, error) {
	key, err := parseConfigKey(rawKey)
	if err != nil {
		return nil, err
	}

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var removed string
	switch key {
	case config.ConfigKeyNetwork:
		removed, local.Network = local.Network, ""
	case config.ConfigKeyDeployment:
		removed, local.Deployment = local.Deployment, config.DefaultLocalConfig().Deployment
	}
	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &LocalConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         removed,
	}, nil
}

func parseConfigKey(raw string) (config.ConfigKey, error) {
	key, ok := config.NormalizeConfigKey(strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		valid := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string { return string(k) })
		return "", fmt.Errorf("unknown config key: %s\nAvailable keys: %s", raw, strings.Join(valid, ", "))
	}
	return key, nil
}
