package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// DeployConsumer deploys a Functions consumer bound to router
func (g *Gateway) DeployConsumer(ctx context.Context, network domain.NetworkKey, router common.Address) (*domain.TxReceipt, error) {
	return g.deploy(ctx, network, FunctionsConsumerArtifact, g.consumer.PackConstructor(router))
}

// UpdateRequest stores an encoded request on the consumer
func (g *Gateway) UpdateRequest(ctx context.Context, network domain.NetworkKey, submission domain.FunctionsSubmission, confirmations uint64) (*domain.TxReceipt, error) {
	data, err := g.consumer.TryPackUpdateRequest(submission.Request, submission.SubscriptionID, submission.GasLimit, submission.DonID)
	if err != nil {
		return nil, err
	}
	consumer := submission.Consumer
	receipt, err := g.tx.SendWithConfirmations(ctx, blockchain.TxRequest{
		Network: network,
		Action:  "updateRequest",
		To:      &consumer,
		Data:    data,
	}, confirmations)
	if err != nil {
		return nil, describeRevert(err, g.consumer.UnpackError)
	}
	return receipt, nil
}
