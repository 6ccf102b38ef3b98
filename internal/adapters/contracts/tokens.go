package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// DeployToken deploys a BurnMintERC20
func (g *Gateway) DeployToken(ctx context.Context, network domain.NetworkKey, params domain.TokenParams) (*domain.TxReceipt, error) {
	args := g.token.PackConstructor(params.Name, params.Symbol, params.Decimals, orZero(params.MaxSupply), orZero(params.PreMint))
	return g.deploy(ctx, network, BurnMintERC20Artifact, args)
}

// GrantMintAndBurnRoles lets pool mint and burn token
func (g *Gateway) GrantMintAndBurnRoles(ctx context.Context, network domain.NetworkKey, token, pool common.Address) (*domain.TxReceipt, error) {
	return g.send(ctx, network, "grantMintAndBurnRoles", token, g.token.PackGrantMintAndBurnRoles(pool), g.token.UnpackError)
}

func (g *Gateway) Mint(ctx context.Context, network domain.NetworkKey, token, to common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	return g.send(ctx, network, "mint", token, g.token.PackMint(to, orZero(amount)), g.token.UnpackError)
}

func (g *Gateway) Approve(ctx context.Context, network domain.NetworkKey, token, spender common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	return g.send(ctx, network, "approve", token, g.token.PackApprove(spender, orZero(amount)), g.token.UnpackError)
}

func (g *Gateway) Allowance(ctx context.Context, network domain.NetworkKey, token, owner, spender common.Address) (*big.Int, error) {
	out, err := g.call(ctx, network, token, g.token.PackAllowance(owner, spender))
	if err != nil {
		return nil, err
	}
	return g.token.UnpackAllowance(out)
}

func (g *Gateway) BalanceOf(ctx context.Context, network domain.NetworkKey, token, account common.Address) (*big.Int, error) {
	out, err := g.call(ctx, network, token, g.token.PackBalanceOf(account))
	if err != nil {
		return nil, err
	}
	return g.token.UnpackBalanceOf(out)
}

// Metadata reads symbol and decimals once per token and network
func (g *Gateway) Metadata(ctx context.Context, network domain.NetworkKey, token common.Address) (domain.TokenMetadata, error) {
	key := string(network) + ":" + token.Hex()
	if md, ok := g.metadata.Get(key); ok {
		return md, nil
	}

	out, err := g.call(ctx, network, token, g.token.PackDecimals())
	if err != nil {
		return domain.TokenMetadata{}, err
	}
	decimals, err := g.token.UnpackDecimals(out)
	if err != nil {
		return domain.TokenMetadata{}, fmt.Errorf("decode decimals of %s: %w", token.Hex(), err)
	}

	out, err = g.call(ctx, network, token, g.token.PackSymbol())
	if err != nil {
		return domain.TokenMetadata{}, err
	}
	symbol, err := g.token.UnpackSymbol(out)
	if err != nil {
		return domain.TokenMetadata{}, fmt.Errorf("decode symbol of %s: %w", token.Hex(), err)
	}

	md := domain.TokenMetadata{Address: token, Symbol: symbol, Decimals: decimals}
	g.metadata.Add(key, md)
	return md, nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
