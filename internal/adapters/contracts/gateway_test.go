package contracts_test

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/bindings"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/contracts"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

var (
	token  = common.HexToAddress("0x00000000000000000000000000000000000000c3")
	router = common.HexToAddress("0xF694E193200268f9a4868e4Aa017A0118C9a8177")
)

type fakeTransactor struct {
	simulated []blockchain.TxRequest
	sent      []blockchain.TxRequest
	simResult []byte
	simErr    error
	sendErr   error
}

func (f *fakeTransactor) Simulate(_ context.Context, req blockchain.TxRequest) ([]byte, error) {
	f.simulated = append(f.simulated, req)
	return f.simResult, f.simErr
}

func (f *fakeTransactor) Send(ctx context.Context, req blockchain.TxRequest) (*domain.TxReceipt, error) {
	return f.SendWithConfirmations(ctx, req, 1)
}

func (f *fakeTransactor) SendWithConfirmations(_ context.Context, req blockchain.TxRequest, confirmations uint64) (*domain.TxReceipt, error) {
	f.sent = append(f.sent, req)
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &domain.TxReceipt{Network: req.Network, Hash: common.HexToHash("0x01"), BlockNumber: 9, Confirmations: confirmations}, nil
}

// fakeCaller answers view calls by 4-byte selector
type fakeCaller struct {
	answers map[string][]byte
	calls   map[string]int
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{answers: map[string][]byte{}, calls: map[string]int{}}
}

func (f *fakeCaller) Call(_ context.Context, _ domain.NetworkKey, msg ethereum.CallMsg) ([]byte, error) {
	selector := hex.EncodeToString(msg.Data[:4])
	f.calls[selector]++
	out, ok := f.answers[selector]
	if !ok {
		return nil, revertError{data: "0x"}
	}
	return out, nil
}

type revertError struct{ data string }

func (e revertError) Error() string          { return "execution reverted" }
func (e revertError) ErrorData() interface{} { return e.data }

type staticArtifacts map[string][]byte

func (a staticArtifacts) Bytecode(name string) ([]byte, error) {
	code, ok := a[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return code, nil
}

func word(v int64) []byte {
	return common.LeftPadBytes(big.NewInt(v).Bytes(), 32)
}

func newGateway(t *testing.T, tx *fakeTransactor, caller *fakeCaller) *contracts.Gateway {
	t.Helper()
	artifacts := staticArtifacts{
		contracts.BurnMintERC20Artifact:     {0x60, 0x80, 0x01},
		contracts.BurnMintTokenPoolArtifact: {0x60, 0x80, 0x02},
		contracts.FunctionsConsumerArtifact: {0x60, 0x80, 0x03},
	}
	g, err := contracts.NewGateway(tx, caller, artifacts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return g
}

func TestGateway_DeployToken(t *testing.T) {
	tx := &fakeTransactor{}
	g := newGateway(t, tx, newFakeCaller())

	_, err := g.DeployToken(context.Background(), domain.NetworkFuji, domain.TokenParams{Name: "Cross Token", Symbol: "XT", Decimals: 18})
	require.NoError(t, err)
	require.Len(t, tx.sent, 1)

	req := tx.sent[0]
	assert.Nil(t, req.To)
	assert.Equal(t, []byte{0x60, 0x80, 0x01}, req.Data[:3])

	parsed, err := bindings.BurnMintERC20MetaData.ParseABI()
	require.NoError(t, err)
	args, err := parsed.Constructor.Inputs.Unpack(req.Data[3:])
	require.NoError(t, err)
	assert.Equal(t, "Cross Token", args[0])
	assert.Equal(t, "XT", args[1])
	assert.Equal(t, uint8(18), args[2])
	assert.Equal(t, 0, args[3].(*big.Int).Sign(), "nil max supply packs as zero")
}

func TestGateway_DeployPool(t *testing.T) {
	tx := &fakeTransactor{}
	g := newGateway(t, tx, newFakeCaller())

	_, err := g.DeployPool(context.Background(), domain.NetworkFuji, domain.PoolParams{Token: token, LocalTokenDecimals: 18, Router: router})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x80, 0x02}, tx.sent[0].Data[:3])

	t.Run("missing artifact", func(t *testing.T) {
		g, err := contracts.NewGateway(&fakeTransactor{}, newFakeCaller(), staticArtifacts{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)
		_, err = g.DeployPool(context.Background(), domain.NetworkFuji, domain.PoolParams{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGateway_ApplyChainUpdates(t *testing.T) {
	tx := &fakeTransactor{}
	g := newGateway(t, tx, newFakeCaller())
	pool := common.HexToAddress("0x00000000000000000000000000000000000000d4")

	_, err := g.ApplyChainUpdates(context.Background(), domain.NetworkFuji, pool, nil, []domain.ChainUpdate{{
		RemoteChainSelector: 3478487238524512106,
		RemotePoolAddresses: [][]byte{common.LeftPadBytes(pool.Bytes(), 32)},
		RemoteTokenAddress:  common.LeftPadBytes(token.Bytes(), 32),
		Outbound:            domain.DisabledRateLimiter(),
		Inbound:             domain.DisabledRateLimiter(),
	}})
	require.NoError(t, err)
	require.Len(t, tx.sent, 1)
	assert.Equal(t, &pool, tx.sent[0].To)
	assert.Equal(t, "e8a1da17", hex.EncodeToString(tx.sent[0].Data[:4]))
}

func TestGateway_RegisterAdmin(t *testing.T) {
	module := common.HexToAddress("0x3e1a1cF16A5cA0Ae422c965c5d5F40e9F0F1a0c6")
	tests := []struct {
		mode   domain.AdminClaimMode
		action string
	}{
		{domain.AdminViaOwner, "registerAdminViaOwner"},
		{domain.AdminViaCCIPAdmin, "registerAdminViaGetCCIPAdmin"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			tx := &fakeTransactor{}
			g := newGateway(t, tx, newFakeCaller())
			_, err := g.RegisterAdmin(context.Background(), domain.NetworkFuji, module, token, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.action, tx.sent[0].Action)
			assert.Equal(t, &module, tx.sent[0].To)
		})
	}
}

func TestGateway_Metadata(t *testing.T) {
	caller := newFakeCaller()
	stringTy, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	symbol, err := abi.Arguments{{Type: stringTy}}.Pack("CCIP-BnM")
	require.NoError(t, err)
	caller.answers["313ce567"] = word(18)
	caller.answers["95d89b41"] = symbol

	g := newGateway(t, &fakeTransactor{}, caller)
	for i := 0; i < 2; i++ {
		md, err := g.Metadata(context.Background(), domain.NetworkFuji, token)
		require.NoError(t, err)
		assert.Equal(t, "CCIP-BnM", md.Symbol)
		assert.Equal(t, uint8(18), md.Decimals)
	}
	assert.Equal(t, 1, caller.calls["313ce567"], "metadata is cached")
}

func TestGateway_GetFee(t *testing.T) {
	caller := newFakeCaller()
	caller.answers["20487ded"] = word(12345)
	g := newGateway(t, &fakeTransactor{}, caller)

	msg := domain.Message{
		Receiver:     common.LeftPadBytes(token.Bytes(), 32),
		TokenAmounts: []domain.TokenAmount{{Token: token, Amount: big.NewInt(1)}},
		ExtraArgs:    []byte{0x18, 0x1d, 0xcf, 0x10},
	}
	fee, err := g.GetFee(context.Background(), domain.NetworkFuji, router, 3478487238524512106, msg)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(12345), fee)
}

func TestGateway_CCIPSend(t *testing.T) {
	ctx := context.Background()
	msg := domain.Message{
		Receiver:     common.LeftPadBytes(token.Bytes(), 32),
		TokenAmounts: []domain.TokenAmount{{Token: token, Amount: big.NewInt(1)}},
	}
	messageID := common.HexToHash("0x1d00000000000000000000000000000000000000000000000000000000000002")

	t.Run("simulates for the message id and sends with value", func(t *testing.T) {
		tx := &fakeTransactor{simResult: messageID.Bytes()}
		g := newGateway(t, tx, newFakeCaller())

		receipt, err := g.CCIPSend(ctx, domain.NetworkFuji, router, 3478487238524512106, msg, big.NewInt(7))
		require.NoError(t, err)
		require.NotNil(t, receipt.MessageID)
		assert.Equal(t, messageID, *receipt.MessageID)

		require.Len(t, tx.simulated, 1)
		require.Len(t, tx.sent, 1)
		assert.Equal(t, "96f4e9f9", hex.EncodeToString(tx.sent[0].Data[:4]))
		assert.Equal(t, big.NewInt(7), tx.sent[0].Value)
		assert.Equal(t, tx.simulated[0].Data, tx.sent[0].Data)
	})

	t.Run("revert during simulation names the router error", func(t *testing.T) {
		data := append(bindings.RouterUnsupportedDestinationChainErrorID().Bytes()[:4], word(7)...)
		tx := &fakeTransactor{simErr: revertError{data: hexutil.Encode(data)}}
		g := newGateway(t, tx, newFakeCaller())

		_, err := g.CCIPSend(ctx, domain.NetworkFuji, router, 7, msg, nil)
		assert.ErrorIs(t, err, domain.ErrExecution)
		assert.ErrorContains(t, err, "RouterUnsupportedDestinationChain")
		assert.Empty(t, tx.sent)
	})
}

func TestGateway_UpdateRequest(t *testing.T) {
	tx := &fakeTransactor{}
	g := newGateway(t, tx, newFakeCaller())
	consumer := common.HexToAddress("0x59a694498d7cc2b89ac004de0f86305c741fedeb")
	donID, err := domain.DonIDFromString("fun-avalanche-fuji-1")
	require.NoError(t, err)

	receipt, err := g.UpdateRequest(context.Background(), domain.NetworkFuji, domain.FunctionsSubmission{
		Consumer:       consumer,
		Request:        []byte{0xa2},
		SubscriptionID: 15689,
		GasLimit:       300000,
		DonID:          donID,
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), receipt.Confirmations)
	assert.Equal(t, &consumer, tx.sent[0].To)
}
