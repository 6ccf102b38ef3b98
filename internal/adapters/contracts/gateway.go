package contracts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/bindings"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// Artifact names whose creation code is loaded from the Foundry output
const (
	BurnMintERC20Artifact     = "BurnMintERC20"
	BurnMintTokenPoolArtifact = "BurnMintTokenPool"
	FunctionsConsumerArtifact = "FunctionsConsumer"
)

const metadataCacheSize = 256

// Transactor submits transactions through the configured signer
type Transactor interface {
	Simulate(ctx context.Context, req blockchain.TxRequest) ([]byte, error)
	Send(ctx context.Context, req blockchain.TxRequest) (*domain.TxReceipt, error)
	SendWithConfirmations(ctx context.Context, req blockchain.TxRequest, confirmations uint64) (*domain.TxReceipt, error)
}

// Caller performs read-only calls
type Caller interface {
	Call(ctx context.Context, network domain.NetworkKey, msg ethereum.CallMsg) ([]byte, error)
}

// BytecodeSource returns contract creation code by artifact name
type BytecodeSource interface {
	Bytecode(name string) ([]byte, error)
}

// Gateway implements every on-chain port with the generated bindings
type Gateway struct {
	tx        Transactor
	caller    Caller
	artifacts BytecodeSource
	log       *slog.Logger

	token    *bindings.BurnMintERC20
	pool     *bindings.BurnMintTokenPool
	admin    *bindings.TokenAdminRegistry
	module   *bindings.RegistryModuleOwnerCustom
	router   *bindings.Router
	consumer *bindings.FunctionsConsumer
	metadata *lru.Cache[string, domain.TokenMetadata]
}

// NewGateway creates a Gateway
func NewGateway(tx Transactor, caller Caller, artifacts BytecodeSource, log *slog.Logger) (*Gateway, error) {
	cache, err := lru.New[string, domain.TokenMetadata](metadataCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata cache: %w", err)
	}
	return &Gateway{
		tx:        tx,
		caller:    caller,
		artifacts: artifacts,
		log:       log,
		token:     bindings.NewBurnMintERC20(),
		pool:      bindings.NewBurnMintTokenPool(),
		admin:     bindings.NewTokenAdminRegistry(),
		module:    bindings.NewRegistryModuleOwnerCustom(),
		router:    bindings.NewRouter(),
		consumer:  bindings.NewFunctionsConsumer(),
		metadata:  cache,
	}, nil
}

// send submits a call to a deployed contract
func (g *Gateway) send(ctx context.Context, network domain.NetworkKey, action string, to common.Address, data []byte, decoders ...revertDecoder) (*domain.TxReceipt, error) {
	g.log.Debug("submitting", "network", network, "action", action, "contract", to.Hex())
	receipt, err := g.tx.Send(ctx, blockchain.TxRequest{Network: network, Action: action, To: &to, Data: data})
	if err != nil {
		return nil, describeRevert(err, decoders...)
	}
	return receipt, nil
}

// deploy submits creation code followed by the packed constructor arguments
func (g *Gateway) deploy(ctx context.Context, network domain.NetworkKey, artifact string, args []byte) (*domain.TxReceipt, error) {
	code, err := g.artifacts.Bytecode(artifact)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(code)+len(args))
	data = append(data, code...)
	data = append(data, args...)

	g.log.Debug("deploying", "network", network, "contract", artifact, "size", len(data))
	receipt, err := g.tx.Send(ctx, blockchain.TxRequest{Network: network, Action: "deploy " + artifact, Data: data})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// call runs a view function and returns the raw result
func (g *Gateway) call(ctx context.Context, network domain.NetworkKey, to common.Address, data []byte) ([]byte, error) {
	out, err := g.caller.Call(ctx, network, ethereum.CallMsg{To: &to, Data: data})
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", to.Hex(), network, err)
	}
	return out, nil
}

type revertDecoder func(raw []byte) (any, error)

// describeRevert appends the decoded custom error to err when the node
// returned revert data that one of decoders understands.
func describeRevert(err error, decoders ...revertDecoder) error {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return err
	}
	hexData, ok := dataErr.ErrorData().(string)
	if !ok {
		return err
	}
	raw, decodeErr := hexutil.Decode(hexData)
	if decodeErr != nil || len(raw) < 4 {
		return err
	}
	for _, decode := range decoders {
		if v, unpackErr := decode(raw); unpackErr == nil {
			return fmt.Errorf("%w: %s", err, revertName(v))
		}
	}
	return err
}

func revertName(v any) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", v), "*bindings.")
	return name + strings.TrimPrefix(fmt.Sprintf("%+v", v), "&")
}

var (
	_ usecase.TokenContracts            = (*Gateway)(nil)
	_ usecase.PoolContracts             = (*Gateway)(nil)
	_ usecase.AdminRegistryContracts    = (*Gateway)(nil)
	_ usecase.RouterContract            = (*Gateway)(nil)
	_ usecase.FunctionsConsumerContract = (*Gateway)(nil)
)
