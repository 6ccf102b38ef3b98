package config

import (
	"fmt"
	"math/big"
	"os"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"gopkg.in/yaml.v3"
)

type rateLimiterYAML struct {
	Enabled  bool   `yaml:"enabled"`
	Capacity string `yaml:"capacity"`
	Rate     string `yaml:"rate"`
}

type rateLimitsYAML struct {
	Outbound rateLimiterYAML `yaml:"outbound"`
	Inbound  rateLimiterYAML `yaml:"inbound"`
}

// LoadRateLimits reads a rate limit file. An empty path yields the disabled
// defaults.
func LoadRateLimits(path string) (domain.RateLimits, error) {
	if path == "" {
		return domain.DefaultRateLimits(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RateLimits{}, fmt.Errorf("failed to read rate limits: %w", err)
	}
	return ParseRateLimits(data)
}

// ParseRateLimits decodes and validates rate limit YAML.
func ParseRateLimits(data []byte) (domain.RateLimits, error) {
	var raw rateLimitsYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.RateLimits{}, fmt.Errorf("failed to parse rate limits: %w", err)
	}

	outbound, err := raw.Outbound.toDomain("outbound")
	if err != nil {
		return domain.RateLimits{}, err
	}
	inbound, err := raw.Inbound.toDomain("inbound")
	if err != nil {
		return domain.RateLimits{}, err
	}
	return domain.RateLimits{Outbound: outbound, Inbound: inbound}, nil
}

func (r rateLimiterYAML) toDomain(direction string) (domain.RateLimiterConfig, error) {
	cfg := domain.RateLimiterConfig{IsEnabled: r.Enabled}
	var err error
	if cfg.Capacity, err = parseUint(r.Capacity); err != nil {
		return cfg, &domain.ConfigError{Field: "rate_limits." + direction + ".capacity", Reason: err.Error()}
	}
	if cfg.Rate, err = parseUint(r.Rate); err != nil {
		return cfg, &domain.ConfigError{Field: "rate_limits." + direction + ".rate", Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", direction, err)
	}
	return cfg, nil
}

func parseUint(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid unsigned integer %q", s)
	}
	return v, nil
}
