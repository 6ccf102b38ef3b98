package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// Backend is the node API used for reads and transaction submission.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Dialer opens a Backend for an RPC URL
type Dialer func(ctx context.Context, rpcURL string) (Backend, error)

// DialEthclient is the Dialer used outside tests
func DialEthclient(ctx context.Context, rpcURL string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ClientPool lazily connects to each network's RPC and caches the client
type ClientPool struct {
	registry usecase.NetworkRegistry
	dial     Dialer
	timeout  time.Duration

	mu      sync.Mutex
	clients map[domain.NetworkKey]Backend
}

// NewClientPool creates a pool dialing with ethclient
func NewClientPool(registry usecase.NetworkRegistry) *ClientPool {
	return NewClientPoolWithDialer(registry, DialEthclient)
}

// NewClientPoolWithDialer creates a pool with a custom dialer
func NewClientPoolWithDialer(registry usecase.NetworkRegistry, dial Dialer) *ClientPool {
	return &ClientPool{
		registry: registry,
		dial:     dial,
		timeout:  5 * time.Second,
		clients:  make(map[domain.NetworkKey]Backend),
	}
}

// Client returns the backend for network, dialing on first use
func (p *ClientPool) Client(ctx context.Context, network domain.NetworkKey) (Backend, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[network]; ok {
		return client, nil
	}
	desc, err := p.registry.Descriptor(network)
	if err != nil {
		return nil, err
	}
	if desc.RPCURL == "" {
		return nil, &domain.ConfigError{Network: network, Field: "rpc_url", Reason: "no RPC URL configured"}
	}

	client, err := p.dial(ctx, desc.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC for %s: %w", network, err)
	}
	p.clients[network] = client
	return client, nil
}

// ChainID asks the network's RPC which chain it serves
func (p *ClientPool) ChainID(ctx context.Context, network domain.NetworkKey) (uint64, error) {
	client, err := p.Client(ctx, network)
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return id.Uint64(), nil
}

// HasCode checks if a contract exists at the given address
func (p *ClientPool) HasCode(ctx context.Context, network domain.NetworkKey, addr common.Address) (bool, error) {
	client, err := p.Client(ctx, network)
	if err != nil {
		return false, err
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	code, err := client.CodeAt(ctx, addr, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return len(code) > 0, nil
}

// Call performs a read-only contract call against the latest block
func (p *ClientPool) Call(ctx context.Context, network domain.NetworkKey, msg ethereum.CallMsg) ([]byte, error) {
	client, err := p.Client(ctx, network)
	if err != nil {
		return nil, err
	}
	return client.CallContract(ctx, msg, nil)
}

// Close releases every dialed client that supports closing
func (p *ClientPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for key, client := range p.clients {
		if c, ok := client.(interface{ Close() }); ok {
			c.Close()
		}
		delete(p.clients, key)
	}
}

// Ensure the pool implements the interface
var _ usecase.ChainReader = (*ClientPool)(nil)
