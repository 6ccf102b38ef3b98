package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/bindings"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// GetFee quotes msg on the source router
func (g *Gateway) GetFee(ctx context.Context, network domain.NetworkKey, router common.Address, destSelector uint64, msg domain.Message) (*big.Int, error) {
	data, err := g.router.TryPackGetFee(destSelector, toClientMessage(msg))
	if err != nil {
		return nil, err
	}
	out, err := g.call(ctx, network, router, data)
	if err != nil {
		return nil, describeRevert(err, g.router.UnpackError)
	}
	return g.router.UnpackGetFee(out)
}

// CCIPSend simulates ccipSend to read the message id, then submits it
func (g *Gateway) CCIPSend(ctx context.Context, network domain.NetworkKey, router common.Address, destSelector uint64, msg domain.Message, value *big.Int) (*domain.SendReceipt, error) {
	data, err := g.router.TryPackCcipSend(destSelector, toClientMessage(msg))
	if err != nil {
		return nil, err
	}
	req := blockchain.TxRequest{Network: network, Action: "ccipSend", To: &router, Data: data, Value: value}

	var messageID *common.Hash
	out, err := g.tx.Simulate(ctx, req)
	if err != nil {
		return nil, &domain.ExecutionError{Action: req.Action, Network: network, Err: describeRevert(err, g.router.UnpackError)}
	}
	if id, err := g.router.UnpackCcipSend(out); err == nil {
		hash := common.Hash(id)
		messageID = &hash
	} else {
		g.log.Debug("could not decode message id", "network", network, "error", err)
	}

	receipt, err := g.tx.Send(ctx, req)
	if err != nil {
		return nil, describeRevert(err, g.router.UnpackError)
	}
	return &domain.SendReceipt{TxReceipt: *receipt, MessageID: messageID}, nil
}

// IsChainSupported reports whether the router serves destSelector
func (g *Gateway) IsChainSupported(ctx context.Context, network domain.NetworkKey, router common.Address, destSelector uint64) (bool, error) {
	out, err := g.call(ctx, network, router, g.router.PackIsChainSupported(destSelector))
	if err != nil {
		return false, err
	}
	supported, err := g.router.UnpackIsChainSupported(out)
	if err != nil {
		return false, fmt.Errorf("decode isChainSupported: %w", err)
	}
	return supported, nil
}

func toClientMessage(msg domain.Message) bindings.ClientEVM2AnyMessage {
	amounts := make([]bindings.ClientEVMTokenAmount, len(msg.TokenAmounts))
	for i, ta := range msg.TokenAmounts {
		amounts[i] = bindings.ClientEVMTokenAmount{Token: ta.Token, Amount: orZero(ta.Amount)}
	}
	data := msg.Data
	if data == nil {
		data = []byte{}
	}
	return bindings.ClientEVM2AnyMessage{
		Receiver:     msg.Receiver,
		Data:         data,
		TokenAmounts: amounts,
		FeeToken:     msg.FeeToken,
		ExtraArgs:    msg.ExtraArgs,
	}
}
