package blockchain_test

import (
	"context"
	"crypto/ecdsa"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	domainconfig "github.com/trebuchet-org/treb-ccip/internal/domain/config"
)

// fakeBackend mines every submitted transaction into block 100
type fakeBackend struct {
	mu       sync.Mutex
	chainID  *big.Int
	status   uint64
	sent     []*types.Transaction
	gas      uint64
	callData []byte
	code     map[common.Address][]byte
}

func newFakeBackend(chainID uint64) *fakeBackend {
	return &fakeBackend{
		chainID: new(big.Int).SetUint64(chainID),
		status:  types.ReceiptStatusSuccessful,
		gas:     100000,
		code:    map[common.Address][]byte{},
	}
}

func (b *fakeBackend) ChainID(context.Context) (*big.Int, error) { return b.chainID, nil }
func (b *fakeBackend) BlockNumber(context.Context) (uint64, error) {
	return 100, nil
}
func (b *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint64(len(b.sent)), nil
}
func (b *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(25_000_000_000), nil
}
func (b *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return b.gas, nil
}
func (b *fakeBackend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	return append([]byte{}, call.Data...), nil
}
func (b *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, tx)
	return nil
}
func (b *fakeBackend) CodeAt(_ context.Context, addr common.Address, _ *big.Int) ([]byte, error) {
	return b.code[addr], nil
}
func (b *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, tx := range b.sent {
		if tx.Hash() != hash {
			continue
		}
		receipt := &types.Receipt{
			Status:      b.status,
			TxHash:      hash,
			BlockNumber: big.NewInt(100),
			GasUsed:     21000,
		}
		if tx.To() == nil {
			receipt.ContractAddress = crypto.CreateAddress(common.Address{0x01}, tx.Nonce())
		}
		return receipt, nil
	}
	return nil, ethereum.NotFound
}

type keySigner struct {
	key *ecdsa.PrivateKey
}

func newKeySigner(t *testing.T) *keySigner {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return &keySigner{key: key}
}

func (s *keySigner) Address() common.Address { return crypto.PubkeyToAddress(s.key.PublicKey) }

func (s *keySigner) SignTx(_ context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}

func newTestSender(t *testing.T, backend *fakeBackend, signer blockchain.Signer) *blockchain.TxSender {
	t.Helper()
	registry, err := config.NewRegistry(config.DefaultDescriptors())
	require.NoError(t, err)
	pool := blockchain.NewClientPoolWithDialer(registry, func(context.Context, string) (blockchain.Backend, error) {
		return backend, nil
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return blockchain.NewTxSender(pool, registry, signer, &domainconfig.RuntimeConfig{Confirmations: 1}, logger)
}

func TestTxSender_Send(t *testing.T) {
	ctx := context.Background()
	to := common.HexToAddress("0x00000000000000000000000000000000000000c3")

	t.Run("call with buffered gas", func(t *testing.T) {
		backend := newFakeBackend(43113)
		signer := newKeySigner(t)
		sender := newTestSender(t, backend, signer)

		receipt, err := sender.Send(ctx, blockchain.TxRequest{
			Network: domain.NetworkFuji,
			Action:  "approve",
			To:      &to,
			Data:    []byte{0x09, 0x5e, 0xa7, 0xb3},
		})
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)

		tx := backend.sent[0]
		assert.Equal(t, uint64(120000), tx.Gas())
		assert.Equal(t, &to, tx.To())
		assert.Equal(t, int64(0), tx.Value().Int64())
		assert.Equal(t, big.NewInt(43113), tx.ChainId())

		from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(43113)), tx)
		require.NoError(t, err)
		assert.Equal(t, signer.Address(), from)

		assert.Equal(t, tx.Hash(), receipt.Hash)
		assert.Equal(t, uint64(100), receipt.BlockNumber)
		assert.Equal(t, uint64(1), receipt.Confirmations)
		assert.Nil(t, receipt.ContractAddress)
	})

	t.Run("contract creation returns the address", func(t *testing.T) {
		backend := newFakeBackend(421614)
		sender := newTestSender(t, backend, newKeySigner(t))

		receipt, err := sender.Send(ctx, blockchain.TxRequest{
			Network: domain.NetworkArbitrum,
			Action:  "deploy token",
			Data:    []byte{0x60, 0x80},
		})
		require.NoError(t, err)
		require.NotNil(t, receipt.ContractAddress)
		assert.Equal(t, crypto.CreateAddress(common.Address{0x01}, 0), *receipt.ContractAddress)
		assert.Nil(t, backend.sent[0].To())
	})

	t.Run("attaches value", func(t *testing.T) {
		backend := newFakeBackend(43113)
		sender := newTestSender(t, backend, newKeySigner(t))

		_, err := sender.Send(ctx, blockchain.TxRequest{Network: domain.NetworkFuji, Action: "ccipSend", To: &to, Value: big.NewInt(5)})
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(5), backend.sent[0].Value())
	})

	t.Run("reverted transaction", func(t *testing.T) {
		backend := newFakeBackend(43113)
		backend.status = types.ReceiptStatusFailed
		sender := newTestSender(t, backend, newKeySigner(t))

		_, err := sender.Send(ctx, blockchain.TxRequest{Network: domain.NetworkFuji, Action: "mint", To: &to})
		assert.ErrorIs(t, err, domain.ErrTransactionReverted)
		assert.ErrorIs(t, err, domain.ErrExecution)

		var execErr *domain.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "mint", execErr.Action)
		require.NotNil(t, execErr.TxHash)
		assert.Equal(t, backend.sent[0].Hash(), *execErr.TxHash)
	})

	t.Run("no signer", func(t *testing.T) {
		backend := newFakeBackend(43113)
		sender := newTestSender(t, backend, nil)

		_, err := sender.Send(ctx, blockchain.TxRequest{Network: domain.NetworkFuji, Action: "mint", To: &to})
		assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
		assert.Empty(t, backend.sent)
	})
}

func TestTxSender_Simulate(t *testing.T) {
	backend := newFakeBackend(43113)
	sender := newTestSender(t, backend, newKeySigner(t))
	to := common.HexToAddress("0x00000000000000000000000000000000000000c3")

	out, err := sender.Simulate(context.Background(), blockchain.TxRequest{Network: domain.NetworkFuji, To: &to, Data: []byte{0xde, 0xad}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, out)
	assert.Empty(t, backend.sent)
}

func TestClientPool(t *testing.T) {
	registry, err := config.NewRegistry(config.DefaultDescriptors())
	require.NoError(t, err)

	dials := 0
	backend := newFakeBackend(43113)
	token := common.HexToAddress("0x00000000000000000000000000000000000000c3")
	backend.code[token] = []byte{0x60}

	pool := blockchain.NewClientPoolWithDialer(registry, func(context.Context, string) (blockchain.Backend, error) {
		dials++
		return backend, nil
	})
	ctx := context.Background()

	id, err := pool.ChainID(ctx, domain.NetworkFuji)
	require.NoError(t, err)
	assert.Equal(t, uint64(43113), id)

	ok, err := pool.HasCode(ctx, domain.NetworkFuji, token)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = pool.HasCode(ctx, domain.NetworkFuji, common.HexToAddress("0x01"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, dials, "client is cached per network")

	t.Run("network without rpc url", func(t *testing.T) {
		descriptors := config.DefaultDescriptors()
		descriptors[1].RPCURL = ""
		bare, err := config.NewRegistry(descriptors)
		require.NoError(t, err)

		_, err = blockchain.NewClientPoolWithDialer(bare, blockchain.DialEthclient).Client(ctx, domain.NetworkArbitrum)
		assert.ErrorIs(t, err, domain.ErrConfig)
	})
}
