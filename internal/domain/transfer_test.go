package domain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() TransferRequest {
	return TransferRequest{
		Source:      NetworkFuji,
		Destination: NetworkArbitrum,
		Token:       common.HexToAddress("0x1000000000000000000000000000000000000001"),
		Amount:      big.NewInt(10),
		Receiver:    common.HexToAddress("0x5000000000000000000000000000000000000005"),
		FeeCurrency: FeeNative,
	}
}

func TestTransferRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TransferRequest)
		is     error
	}{
		{name: "valid", modify: func(*TransferRequest) {}},
		{name: "same network", modify: func(r *TransferRequest) { r.Destination = NetworkFuji }},
		{name: "missing source", modify: func(r *TransferRequest) { r.Source = "" }},
		{name: "zero token", modify: func(r *TransferRequest) { r.Token = common.Address{} }, is: ErrInvalidAddress},
		{name: "zero receiver", modify: func(r *TransferRequest) { r.Receiver = common.Address{} }, is: ErrInvalidAddress},
		{name: "zero amount", modify: func(r *TransferRequest) { r.Amount = big.NewInt(0) }},
		{name: "nil amount", modify: func(r *TransferRequest) { r.Amount = nil }},
		{name: "fee currency", modify: func(r *TransferRequest) { r.FeeCurrency = "eth" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)
			err := req.Validate()
			if tt.name == "valid" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestTransferRequest_KeyChangesWithEveryParameter(t *testing.T) {
	base := validRequest()
	keys := map[string]bool{base.Key(): true}

	variants := []func(*TransferRequest){
		func(r *TransferRequest) { r.Source, r.Destination = r.Destination, r.Source },
		func(r *TransferRequest) { r.Token = common.HexToAddress("0x9") },
		func(r *TransferRequest) { r.Amount = big.NewInt(11) },
		func(r *TransferRequest) { r.Receiver = common.HexToAddress("0x8") },
		func(r *TransferRequest) { r.FeeCurrency = FeeLink },
	}
	for _, v := range variants {
		req := validRequest()
		v(&req)
		keys[req.Key()] = true
	}
	assert.Len(t, keys, len(variants)+1)
	assert.Equal(t, base.Key(), validRequest().Key())
}

func TestTransferAttempt_Transitions(t *testing.T) {
	a := NewTransferAttempt("id", validRequest())
	assert.Equal(t, TransferIdle, a.Status)

	assert.ErrorIs(t, a.Transition(TransferSending), ErrInvalidTransition)

	require.NoError(t, a.Transition(TransferEstimating))
	require.NoError(t, a.Transition(TransferApproving))
	a.Fail(errors.New("approve reverted"))
	assert.Equal(t, TransferFailed, a.Status)
	assert.Equal(t, "approve reverted", a.LastError)

	require.NoError(t, a.Transition(TransferEstimating), "failed attempts can be retried")
	assert.Empty(t, a.LastError)
	require.NoError(t, a.Transition(TransferSending))
	require.NoError(t, a.Transition(TransferConfirmed))

	for _, next := range []TransferStatus{TransferIdle, TransferEstimating, TransferFailed} {
		assert.False(t, CanTransition(TransferConfirmed, next), next)
	}
}

func TestApprovalAndValueRules(t *testing.T) {
	assert.True(t, NeedsApproval(nil, big.NewInt(1)))
	assert.True(t, NeedsApproval(big.NewInt(9), big.NewInt(10)))
	assert.False(t, NeedsApproval(big.NewInt(10), big.NewInt(10)))
	assert.False(t, NeedsApproval(big.NewInt(0), big.NewInt(0)))

	fee := big.NewInt(5)
	assert.Equal(t, "5", NativeValue(FeeNative, fee).String())
	assert.Equal(t, "0", NativeValue(FeeLink, fee).String())
	assert.NotSame(t, fee, NativeValue(FeeNative, fee))
}

func TestCCIPTrackingURL(t *testing.T) {
	hash := common.HexToHash("0xabc")
	assert.Equal(t, "https://ccip.chain.link/tx/"+hash.Hex(), CCIPTrackingURL(hash))
}
