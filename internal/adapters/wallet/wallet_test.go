package wallet_test

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/wallet"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
)

// Well-known anvil development key
const anvilKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var anvilAccount = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func TestLocalSigner(t *testing.T) {
	signer, err := wallet.NewLocalSigner(anvilKey)
	require.NoError(t, err)
	assert.Equal(t, anvilAccount, signer.Address())

	to := common.HexToAddress("0x00000000000000000000000000000000000000c3")
	tx := types.NewTransaction(0, to, big.NewInt(1), 21000, big.NewInt(1), nil)
	signed, err := signer.SignTx(context.Background(), tx, big.NewInt(43113))
	require.NoError(t, err)

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(43113)), signed)
	require.NoError(t, err)
	assert.Equal(t, anvilAccount, from)

	t.Run("rejects malformed key", func(t *testing.T) {
		_, err := wallet.NewLocalSigner("0x1234")
		assert.Error(t, err)
	})
}

func TestRemoteSigner(t *testing.T) {
	key, err := crypto.HexToECDSA(anvilKey[2:])
	require.NoError(t, err)

	var gotMethod, gotKey string
	var gotArgs map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Method string                   `json:"method"`
			Params []map[string]interface{} `json:"params"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		gotMethod = req.Method
		gotArgs = req.Params[0]

		nonce, _ := hexutil.DecodeUint64(gotArgs["nonce"].(string))
		gas, _ := hexutil.DecodeUint64(gotArgs["gas"].(string))
		gasPrice, _ := hexutil.DecodeBig(gotArgs["gasPrice"].(string))
		value, _ := hexutil.DecodeBig(gotArgs["value"].(string))
		chainID, _ := hexutil.DecodeBig(gotArgs["chainId"].(string))
		tx := types.NewTransaction(nonce, common.HexToAddress(gotArgs["to"].(string)), value, gas, gasPrice, nil)
		signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
		require.NoError(t, err)
		raw, err := signed.MarshalBinary()
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "id": 1, "result": hexutil.Encode(raw)})
	}))
	defer server.Close()

	signer := wallet.NewRemoteSigner(server.URL, "secret", anvilAccount)
	to := common.HexToAddress("0x00000000000000000000000000000000000000c3")
	tx := types.NewTransaction(7, to, big.NewInt(3), 50000, big.NewInt(2), nil)

	signed, err := signer.SignTx(context.Background(), tx, big.NewInt(421614))
	require.NoError(t, err)

	assert.Equal(t, "eth_signTransaction", gotMethod)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, anvilAccount.Hex(), gotArgs["from"])
	assert.Equal(t, "0x66eee", gotArgs["chainId"])
	assert.Equal(t, uint64(7), signed.Nonce())

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(421614)), signed)
	require.NoError(t, err)
	assert.Equal(t, anvilAccount, from)

	t.Run("rpc error", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"key locked"}}`))
		}))
		defer failing.Close()

		_, err := wallet.NewRemoteSigner(failing.URL, "", anvilAccount).SignTx(context.Background(), tx, big.NewInt(1))
		assert.ErrorContains(t, err, "key locked")
	})
}

func TestNewSigner(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SignerConfig
		want    common.Address
		none    bool
		wantErr bool
	}{
		{name: "none", cfg: config.SignerConfig{Type: config.SignerTypeNone}, none: true},
		{name: "private key", cfg: config.SignerConfig{Type: config.SignerTypePrivateKey, PrivateKey: anvilKey}, want: anvilAccount},
		{name: "remote", cfg: config.SignerConfig{Type: config.SignerTypeRemote, Endpoint: "http://localhost:1", Address: anvilAccount.Hex()}, want: anvilAccount},
		{name: "remote without address", cfg: config.SignerConfig{Type: config.SignerTypeRemote, Endpoint: "http://localhost:1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, err := wallet.NewSigner(&config.RuntimeConfig{Signer: tt.cfg})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrConfig)
				return
			}
			require.NoError(t, err)
			if tt.none {
				assert.Nil(t, signer)
				return
			}
			assert.Equal(t, tt.want, signer.Address())
		})
	}
}

func TestWallet_Account(t *testing.T) {
	_, err := wallet.NewWallet(nil).Account(context.Background())
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)

	signer, err := wallet.NewLocalSigner(anvilKey)
	require.NoError(t, err)
	account, err := wallet.NewWallet(signer).Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, anvilAccount, account)
}
