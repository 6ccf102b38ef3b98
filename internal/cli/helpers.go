package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-ccip/internal/app"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// resolveNetwork returns --network (or the local default) or asks the
// operator to pick one of the supported networks other than exclude.
func resolveNetwork(ctx context.Context, a *app.App, prompt string, exclude ...domain.NetworkKey) (domain.NetworkKey, error) {
	if a.Config.Network != "" && !lo.Contains(exclude, a.Config.Network) {
		return a.Config.Network, nil
	}
	options := lo.Filter(a.Registry.All(), func(d domain.Descriptor, _ int) bool {
		return !lo.Contains(exclude, d.Key)
	})
	return a.Selector.SelectNetwork(ctx, prompt, options)
}

// pickNetwork parses value when given, otherwise asks for a network other
// than exclude.
func pickNetwork(ctx context.Context, a *app.App, value, prompt string, exclude ...domain.NetworkKey) (domain.NetworkKey, error) {
	if value != "" {
		return domain.ParseNetworkKey(value)
	}
	options := lo.Filter(a.Registry.All(), func(d domain.Descriptor, _ int) bool {
		return !lo.Contains(exclude, d.Key)
	})
	return a.Selector.SelectNetwork(ctx, prompt, options)
}

// parseAddress accepts only 0x-prefixed 40 digit hex addresses
func parseAddress(field, value string) (common.Address, error) {
	if !domain.IsStrictHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidAddress, field, value)
	}
	return common.HexToAddress(value), nil
}

// parseOptionalAddress returns nil for an empty value
func parseOptionalAddress(field, value string) (*common.Address, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	addr, err := parseAddress(field, strings.TrimSpace(value))
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// parseAddresses parses a list such as the pool allowlist
func parseAddresses(field string, values []string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		addr, err := parseAddress(field, v)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}
