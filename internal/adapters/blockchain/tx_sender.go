package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
	"golang.org/x/time/rate"
)

// Signer signs transactions for a single account
type Signer interface {
	Address() common.Address
	SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// gasBufferPercent is added on top of the node's gas estimate
const gasBufferPercent = 20

// TxRequest is one transaction to submit. A nil To deploys Data as init code.
type TxRequest struct {
	Network domain.NetworkKey
	Action  string
	To      *common.Address
	Data    []byte
	Value   *big.Int
}

// TxSender builds, signs, submits and confirms transactions
type TxSender struct {
	pool          *ClientPool
	registry      usecase.NetworkRegistry
	signer        Signer
	confirmations uint64
	poll          *rate.Limiter
	log           *slog.Logger
}

// NewTxSender creates a TxSender. signer may be nil, in which case every
// submission fails with a wallet-not-connected error.
func NewTxSender(pool *ClientPool, registry usecase.NetworkRegistry, signer Signer, cfg *config.RuntimeConfig, log *slog.Logger) *TxSender {
	confirmations := cfg.Confirmations
	if confirmations == 0 {
		confirmations = 1
	}
	return &TxSender{
		pool:          pool,
		registry:      registry,
		signer:        signer,
		confirmations: confirmations,
		poll:          rate.NewLimiter(rate.Every(2*time.Second), 1),
		log:           log,
	}
}

// Account returns the signing address
func (s *TxSender) Account() (common.Address, error) {
	if s.signer == nil {
		return common.Address{}, domain.NewWalletNotConnectedError("no signer configured: set private_key or signer_endpoint")
	}
	return s.signer.Address(), nil
}

// Simulate executes req as an eth_call from the signer and returns the
// return data.
func (s *TxSender) Simulate(ctx context.Context, req TxRequest) ([]byte, error) {
	from, err := s.Account()
	if err != nil {
		return nil, err
	}
	client, err := s.pool.Client(ctx, req.Network)
	if err != nil {
		return nil, err
	}
	return client.CallContract(ctx, ethereum.CallMsg{
		From:  from,
		To:    req.To,
		Value: valueOrZero(req.Value),
		Data:  req.Data,
	}, nil)
}

// Send submits req and waits for the configured number of confirmations
func (s *TxSender) Send(ctx context.Context, req TxRequest) (*domain.TxReceipt, error) {
	return s.SendWithConfirmations(ctx, req, s.confirmations)
}

// SendWithConfirmations submits req and waits for confirmations blocks
func (s *TxSender) SendWithConfirmations(ctx context.Context, req TxRequest, confirmations uint64) (*domain.TxReceipt, error) {
	fail := func(hash *common.Hash, err error) error {
		return &domain.ExecutionError{Action: req.Action, Network: req.Network, TxHash: hash, Err: err}
	}

	from, err := s.Account()
	if err != nil {
		return nil, err
	}
	desc, err := s.registry.Descriptor(req.Network)
	if err != nil {
		return nil, err
	}
	client, err := s.pool.Client(ctx, req.Network)
	if err != nil {
		return nil, err
	}
	value := valueOrZero(req.Value)

	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fail(nil, fmt.Errorf("get nonce: %w", err))
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fail(nil, fmt.Errorf("get gas price: %w", err))
	}
	gas, err := client.EstimateGas(ctx, ethereum.CallMsg{From: from, To: req.To, Value: value, Data: req.Data})
	if err != nil {
		return nil, fail(nil, fmt.Errorf("estimate gas: %w", err))
	}
	gas += gas * gasBufferPercent / 100

	var tx *types.Transaction
	if req.To == nil {
		tx = types.NewContractCreation(nonce, value, gas, gasPrice, req.Data)
	} else {
		tx = types.NewTransaction(nonce, *req.To, value, gas, gasPrice, req.Data)
	}

	signed, err := s.signer.SignTx(ctx, tx, new(big.Int).SetUint64(desc.ChainID))
	if err != nil {
		return nil, fail(nil, fmt.Errorf("sign transaction: %w", err))
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return nil, fail(nil, fmt.Errorf("send transaction: %w", err))
	}
	hash := signed.Hash()
	s.log.Info("transaction submitted", "action", req.Action, "network", req.Network, "tx", hash.Hex(), "nonce", nonce)

	receipt, err := bind.WaitMined(ctx, client, signed)
	if err != nil {
		return nil, fail(&hash, fmt.Errorf("wait for receipt: %w", err))
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fail(&hash, domain.ErrTransactionReverted)
	}

	confirmed, err := s.waitConfirmations(ctx, client, receipt.BlockNumber.Uint64(), confirmations)
	if err != nil {
		return nil, fail(&hash, err)
	}

	out := &domain.TxReceipt{
		Network:       req.Network,
		Hash:          hash,
		BlockNumber:   receipt.BlockNumber.Uint64(),
		GasUsed:       receipt.GasUsed,
		Confirmations: confirmed,
	}
	if req.To == nil {
		if receipt.ContractAddress == (common.Address{}) {
			return nil, fail(&hash, errors.New("deployment receipt has no contract address"))
		}
		addr := receipt.ContractAddress
		out.ContractAddress = &addr
	}
	s.log.Info("transaction confirmed", "action", req.Action, "network", req.Network, "tx", hash.Hex(), "block", out.BlockNumber)
	return out, nil
}

// waitConfirmations polls the head until the receipt block has enough
// confirmations. The mined block itself counts as the first.
func (s *TxSender) waitConfirmations(ctx context.Context, client Backend, mined, want uint64) (uint64, error) {
	for {
		head, err := client.BlockNumber(ctx)
		if err != nil {
			return 0, fmt.Errorf("get block number: %w", err)
		}
		var have uint64
		if head >= mined {
			have = head - mined + 1
		}
		if have >= want {
			return have, nil
		}
		if err := s.poll.Wait(ctx); err != nil {
			return have, err
		}
	}
}

func valueOrZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}
