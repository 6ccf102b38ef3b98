package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

var (
	testAccount  = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testReceiver = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	testToken    = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

func newTestRegistry(t *testing.T) *config.Registry {
	t.Helper()
	registry, err := config.NewRegistry(config.DefaultDescriptors())
	require.NoError(t, err)
	return registry
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStateStore keeps serialized state so every Load returns a fresh copy
type memoryStateStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves int
}

func newMemoryStateStore() *memoryStateStore {
	return &memoryStateStore{data: map[string][]byte{}}
}

func (s *memoryStateStore) Load(_ context.Context, name string) (*domain.DeploymentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	var state domain.DeploymentState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *memoryStateStore) Save(_ context.Context, state *domain.DeploymentState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.data[state.Name] = raw
	s.saves++
	return nil
}

func (s *memoryStateStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[name]; !ok {
		return domain.ErrNotFound
	}
	delete(s.data, name)
	return nil
}

// memoryHistory records transfer attempts
type memoryHistory struct {
	attempts []*domain.TransferAttempt
}

func (h *memoryHistory) Append(_ context.Context, attempt *domain.TransferAttempt) error {
	h.attempts = append(h.attempts, attempt)
	return nil
}

func (h *memoryHistory) List(context.Context) ([]*domain.TransferAttempt, error) {
	return h.attempts, nil
}

// staticWallet is a configured signer, or a disconnected one when err is set
type staticWallet struct {
	account common.Address
	err     error
}

func (w staticWallet) Account(context.Context) (common.Address, error) {
	return w.account, w.err
}

// fakeChain reports chain ids per network and code per address
type fakeChain struct {
	mu       sync.Mutex
	chainIDs map[domain.NetworkKey]uint64
	code     map[common.Address]bool
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		chainIDs: map[domain.NetworkKey]uint64{
			domain.NetworkFuji:     43113,
			domain.NetworkArbitrum: 421614,
		},
		code: map[common.Address]bool{},
	}
}

func (c *fakeChain) ChainID(_ context.Context, network domain.NetworkKey) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.chainIDs[network]
	if !ok {
		return 0, fmt.Errorf("no rpc for %s", network)
	}
	return id, nil
}

func (c *fakeChain) HasCode(_ context.Context, _ domain.NetworkKey, addr common.Address) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code[addr], nil
}

// fakeContracts implements the pipeline contract ports with deterministic
// addresses and records every call.
type fakeContracts struct {
	mu       sync.Mutex
	next     byte
	calls    []string
	failOn   string
	updates  map[domain.NetworkKey][]domain.ChainUpdate
	minted   map[common.Address]*big.Int
	onSubmit func(call string)
}

func newFakeContracts() *fakeContracts {
	return &fakeContracts{
		next:    0x10,
		updates: map[domain.NetworkKey][]domain.ChainUpdate{},
		minted:  map[common.Address]*big.Int{},
	}
}

func (f *fakeContracts) receipt(network domain.NetworkKey, call string, deploy bool) (*domain.TxReceipt, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fmt.Sprintf("%s@%s", call, network))
	f.next++
	n := f.next
	fail := f.failOn == call
	hook := f.onSubmit
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if fail {
		hash := common.BytesToHash([]byte{n})
		return nil, &domain.ExecutionError{Action: call, Network: network, TxHash: &hash, Err: domain.ErrTransactionReverted}
	}
	r := &domain.TxReceipt{
		Network:     network,
		Hash:        common.BytesToHash([]byte{0xee, n}),
		BlockNumber: uint64(n),
	}
	if deploy {
		addr := common.BytesToAddress([]byte{0xaa, n})
		r.ContractAddress = &addr
	}
	return r, nil
}

func (f *fakeContracts) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeContracts) DeployToken(_ context.Context, network domain.NetworkKey, _ domain.TokenParams) (*domain.TxReceipt, error) {
	return f.receipt(network, "deployToken", true)
}

func (f *fakeContracts) GrantMintAndBurnRoles(_ context.Context, network domain.NetworkKey, _, _ common.Address) (*domain.TxReceipt, error) {
	return f.receipt(network, "grantMintAndBurnRoles", false)
}

func (f *fakeContracts) Mint(_ context.Context, network domain.NetworkKey, _, to common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	r, err := f.receipt(network, "mint", false)
	if err == nil {
		f.mu.Lock()
		f.minted[to] = new(big.Int).Set(amount)
		f.mu.Unlock()
	}
	return r, err
}

func (f *fakeContracts) Approve(_ context.Context, network domain.NetworkKey, _, _ common.Address, _ *big.Int) (*domain.TxReceipt, error) {
	return f.receipt(network, "approve", false)
}

func (f *fakeContracts) Allowance(context.Context, domain.NetworkKey, common.Address, common.Address, common.Address) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (f *fakeContracts) BalanceOf(context.Context, domain.NetworkKey, common.Address, common.Address) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (f *fakeContracts) Metadata(_ context.Context, _ domain.NetworkKey, token common.Address) (domain.TokenMetadata, error) {
	return domain.TokenMetadata{Address: token, Symbol: "TST", Decimals: 18}, nil
}

func (f *fakeContracts) DeployPool(_ context.Context, network domain.NetworkKey, _ domain.PoolParams) (*domain.TxReceipt, error) {
	return f.receipt(network, "deployPool", true)
}

func (f *fakeContracts) ApplyChainUpdates(_ context.Context, network domain.NetworkKey, _ common.Address, _ []uint64, additions []domain.ChainUpdate) (*domain.TxReceipt, error) {
	r, err := f.receipt(network, "applyChainUpdates", false)
	if err == nil {
		f.mu.Lock()
		f.updates[network] = additions
		f.mu.Unlock()
	}
	return r, err
}

func (f *fakeContracts) RegisterAdmin(_ context.Context, network domain.NetworkKey, _, _ common.Address, _ domain.AdminClaimMode) (*domain.TxReceipt, error) {
	return f.receipt(network, "registerAdmin", false)
}

func (f *fakeContracts) AcceptAdminRole(_ context.Context, network domain.NetworkKey, _, _ common.Address) (*domain.TxReceipt, error) {
	return f.receipt(network, "acceptAdminRole", false)
}

func (f *fakeContracts) SetPool(_ context.Context, network domain.NetworkKey, _, _, _ common.Address) (*domain.TxReceipt, error) {
	return f.receipt(network, "setPool", false)
}

// MockRouter is a mock implementation of RouterContract
type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) GetFee(ctx context.Context, network domain.NetworkKey, router common.Address, destSelector uint64, msg domain.Message) (*big.Int, error) {
	args := m.Called(ctx, network, router, destSelector, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockRouter) CCIPSend(ctx context.Context, network domain.NetworkKey, router common.Address, destSelector uint64, msg domain.Message, value *big.Int) (*domain.SendReceipt, error) {
	args := m.Called(ctx, network, router, destSelector, msg, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SendReceipt), args.Error(1)
}

// MockTokens is a mock implementation of TokenContracts for transfer tests
type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) DeployToken(ctx context.Context, network domain.NetworkKey, params domain.TokenParams) (*domain.TxReceipt, error) {
	args := m.Called(ctx, network, params)
	return receiptArg(args)
}

func (m *MockTokens) GrantMintAndBurnRoles(ctx context.Context, network domain.NetworkKey, token, pool common.Address) (*domain.TxReceipt, error) {
	args := m.Called(ctx, network, token, pool)
	return receiptArg(args)
}

func (m *MockTokens) Mint(ctx context.Context, network domain.NetworkKey, token, to common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	args := m.Called(ctx, network, token, to, amount)
	return receiptArg(args)
}

func (m *MockTokens) Approve(ctx context.Context, network domain.NetworkKey, token, spender common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	args := m.Called(ctx, network, token, spender, amount)
	return receiptArg(args)
}

func (m *MockTokens) Allowance(ctx context.Context, network domain.NetworkKey, token, owner, spender common.Address) (*big.Int, error) {
	args := m.Called(ctx, network, token, owner, spender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTokens) BalanceOf(ctx context.Context, network domain.NetworkKey, token, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, network, token, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTokens) Metadata(ctx context.Context, network domain.NetworkKey, token common.Address) (domain.TokenMetadata, error) {
	args := m.Called(ctx, network, token)
	return args.Get(0).(domain.TokenMetadata), args.Error(1)
}

func receiptArg(args mock.Arguments) (*domain.TxReceipt, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TxReceipt), args.Error(1)
}

// recordingProgress collects progress events
type recordingProgress struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
}

func (p *recordingProgress) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingProgress) Info(string)  {}
func (p *recordingProgress) Error(string) {}

func (p *recordingProgress) Stages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Stage
	}
	return out
}
