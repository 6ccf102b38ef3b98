package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/bindings"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// DeployPool deploys a BurnMintTokenPool for params.Token
func (g *Gateway) DeployPool(ctx context.Context, network domain.NetworkKey, params domain.PoolParams) (*domain.TxReceipt, error) {
	allowlist := params.Allowlist
	if allowlist == nil {
		allowlist = []common.Address{}
	}
	args := g.pool.PackConstructor(params.Token, params.LocalTokenDecimals, allowlist, params.RMNProxy, params.Router)
	return g.deploy(ctx, network, BurnMintTokenPoolArtifact, args)
}

// ApplyChainUpdates registers remote chains on a pool
func (g *Gateway) ApplyChainUpdates(ctx context.Context, network domain.NetworkKey, pool common.Address, removals []uint64, additions []domain.ChainUpdate) (*domain.TxReceipt, error) {
	if removals == nil {
		removals = []uint64{}
	}
	updates := make([]bindings.TokenPoolChainUpdate, len(additions))
	for i, u := range additions {
		updates[i] = bindings.TokenPoolChainUpdate{
			RemoteChainSelector:       u.RemoteChainSelector,
			RemotePoolAddresses:       u.RemotePoolAddresses,
			RemoteTokenAddress:        u.RemoteTokenAddress,
			OutboundRateLimiterConfig: rateLimiter(u.Outbound),
			InboundRateLimiterConfig:  rateLimiter(u.Inbound),
		}
	}
	data, err := g.pool.TryPackApplyChainUpdates(removals, updates)
	if err != nil {
		return nil, err
	}
	return g.send(ctx, network, "applyChainUpdates", pool, data, g.pool.UnpackError)
}

func rateLimiter(c domain.RateLimiterConfig) bindings.RateLimiterConfig {
	return bindings.RateLimiterConfig{IsEnabled: c.IsEnabled, Capacity: orZero(c.Capacity), Rate: orZero(c.Rate)}
}

// RegisterAdmin proposes the signer as token administrator
func (g *Gateway) RegisterAdmin(ctx context.Context, network domain.NetworkKey, module, token common.Address, mode domain.AdminClaimMode) (*domain.TxReceipt, error) {
	switch mode {
	case domain.AdminViaCCIPAdmin:
		return g.send(ctx, network, "registerAdminViaGetCCIPAdmin", module, g.module.PackRegisterAdminViaGetCCIPAdmin(token), g.module.UnpackError)
	default:
		return g.send(ctx, network, "registerAdminViaOwner", module, g.module.PackRegisterAdminViaOwner(token), g.module.UnpackError)
	}
}

func (g *Gateway) AcceptAdminRole(ctx context.Context, network domain.NetworkKey, registry, token common.Address) (*domain.TxReceipt, error) {
	return g.send(ctx, network, "acceptAdminRole", registry, g.admin.PackAcceptAdminRole(token), g.admin.UnpackError)
}

func (g *Gateway) SetPool(ctx context.Context, network domain.NetworkKey, registry, token, pool common.Address) (*domain.TxReceipt, error) {
	return g.send(ctx, network, "setPool", registry, g.admin.PackSetPool(token, pool), g.admin.UnpackError)
}
