package wallet

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// NewSigner builds the signer selected by the configuration. It returns nil
// without error when no signer is configured.
func NewSigner(cfg *config.RuntimeConfig) (blockchain.Signer, error) {
	sc := cfg.Signer
	switch sc.Type {
	case config.SignerTypeNone:
		return nil, nil
	case config.SignerTypePrivateKey:
		return NewLocalSigner(sc.PrivateKey)
	case config.SignerTypeRemote:
		if !common.IsHexAddress(sc.Address) {
			return nil, &domain.ConfigError{Field: "signer_address", Reason: fmt.Sprintf("remote signer needs an account address, got %q", sc.Address)}
		}
		return NewRemoteSigner(sc.Endpoint, sc.APIKey, common.HexToAddress(sc.Address)), nil
	}
	return nil, &domain.ConfigError{Field: "signer", Reason: fmt.Sprintf("unknown signer type %q", sc.Type)}
}

// Wallet exposes the configured signer account to use cases
type Wallet struct {
	signer blockchain.Signer
}

// NewWallet wraps signer, which may be nil
func NewWallet(signer blockchain.Signer) *Wallet {
	return &Wallet{signer: signer}
}

// Account returns the signer address or a wallet-not-connected error
func (w *Wallet) Account(context.Context) (common.Address, error) {
	if w.signer == nil {
		return common.Address{}, domain.NewWalletNotConnectedError("no signer configured: set private_key or signer_endpoint")
	}
	return w.signer.Address(), nil
}

var _ usecase.Wallet = (*Wallet)(nil)
