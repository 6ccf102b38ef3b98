package domain

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	hash := common.HexToHash("0x01")
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		is   []error
		msg  string
	}{
		{
			name: "unsupported network",
			err:  &UnsupportedNetworkError{ChainID: 1},
			is:   []error{ErrUnsupportedNetwork},
			msg:  "unsupported network: chain id 1",
		},
		{
			name: "config",
			err:  &ConfigError{Network: NetworkFuji, Field: "router", Reason: "missing"},
			is:   []error{ErrConfig},
			msg:  "config fuji.router: missing",
		},
		{
			name: "precondition",
			err:  &PreconditionError{Stage: StageLinkPool, Network: NetworkArbitrum, Reason: "pool missing"},
			is:   []error{ErrStageDisabled},
			msg:  "Link Token to Pool on arbitrum is disabled: pool missing",
		},
		{
			name: "wrong network",
			err:  NewWrongNetworkError(43113, 1),
			is:   []error{ErrWrongNetwork},
			msg:  "wallet connected to the wrong network: expected chain 43113, got 1 (switch the wallet RPC to the target network)",
		},
		{
			name: "wallet not connected",
			err:  NewWalletNotConnectedError("no key"),
			is:   []error{ErrWalletNotConnected},
			msg:  "wallet not connected: no key",
		},
		{
			name: "execution",
			err:  &ExecutionError{Action: "ccipSend", Network: NetworkFuji, TxHash: &hash, Err: ErrTransactionReverted},
			is:   []error{ErrExecution, ErrTransactionReverted},
			msg:  "ccipSend on fuji failed (tx " + hash.Hex() + "): transaction reverted",
		},
		{
			name: "estimation",
			err:  &EstimationError{Source: NetworkFuji, Destination: NetworkArbitrum, Err: cause},
			is:   []error{ErrEstimation, cause},
			msg:  "fee estimate fuji -> arbitrum: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.msg)
			for _, target := range tt.is {
				assert.ErrorIs(t, tt.err, target)
			}
		})
	}
}

func TestParseNetworkKey(t *testing.T) {
	for in, want := range map[string]NetworkKey{
		"fuji":             NetworkFuji,
		" Avalanche-Fuji ": NetworkFuji,
		"43113":            NetworkFuji,
		"arbitrum-sepolia": NetworkArbitrum,
		"421614":           NetworkArbitrum,
	} {
		got, err := ParseNetworkKey(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseNetworkKey("mainnet")
	assert.ErrorIs(t, err, ErrUnsupportedNetwork)
}

func TestIsStrictHexAddress(t *testing.T) {
	assert.True(t, IsStrictHexAddress("0x234a5fb5Bd614a7AA2FfAB244D603abFA0Ac5C5C"))
	assert.False(t, IsStrictHexAddress("234a5fb5Bd614a7AA2FfAB244D603abFA0Ac5C5C"))
	assert.False(t, IsStrictHexAddress("0x234a5fb5Bd614a7AA2FfAB244D603abFA0Ac5C5"))
	assert.False(t, IsStrictHexAddress("0x234a5fb5Bd614a7AA2FfAB244D603abFA0Ac5C5G"))
}

func TestParseStage(t *testing.T) {
	for in, want := range map[string]Stage{
		"1":              StageDeployToken,
		"deploy-pool":    StageDeployPool,
		"Configure-Pool": StageConfigurePool,
		"7":              StageMintSupply,
		"mint":           StageMintSupply,
	} {
		got, err := ParseStage(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"0", "8", "deploy"} {
		_, err := ParseStage(bad)
		assert.Error(t, err, bad)
	}
}

func TestTokenParams_Validate(t *testing.T) {
	ok := TokenParams{Name: "T", Symbol: "T", Decimals: 18}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Decimals = 37
	assert.ErrorIs(t, bad.Validate(), ErrConfig)

	bad = ok
	bad.Name = ""
	assert.ErrorIs(t, bad.Validate(), ErrConfig)
}

func TestDonIDFromString(t *testing.T) {
	id, err := DonIDFromString("fun-avalanche-fuji-1")
	assert.NoError(t, err)
	assert.Equal(t, "fun-avalanche-fuji-1", string(id[:20]))
	assert.Equal(t, make([]byte, 12), id[20:])

	_, err = DonIDFromString("")
	assert.Error(t, err)
}
