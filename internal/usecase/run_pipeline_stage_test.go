package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

type pipelineFixture struct {
	uc        *usecase.RunPipelineStage
	store     *memoryStateStore
	contracts *fakeContracts
	chain     *fakeChain
	runState  *domain.PipelineRunState
	progress  *recordingProgress
	registry  usecase.NetworkRegistry
}

func newPipelineFixture(t *testing.T, wallet usecase.Wallet, registry usecase.NetworkRegistry) *pipelineFixture {
	t.Helper()
	if registry == nil {
		registry = newTestRegistry(t)
	}
	f := &pipelineFixture{
		store:     newMemoryStateStore(),
		contracts: newFakeContracts(),
		chain:     newFakeChain(),
		runState:  &domain.PipelineRunState{},
		progress:  &recordingProgress{},
		registry:  registry,
	}
	stages := usecase.NewPipelineStages(registry, f.contracts, f.contracts, f.contracts, f.progress)
	f.uc = usecase.NewRunPipelineStage(registry, stages, f.store, wallet, f.chain, f.runState, f.progress, discardLogger())
	return f
}

func testStageOptions() usecase.StageOptions {
	return usecase.StageOptions{
		Token: domain.TokenParams{
			Name:      "Test Token",
			Symbol:    "TST",
			Decimals:  18,
			MaxSupply: big.NewInt(0),
			PreMint:   big.NewInt(0),
		},
		AdminMode:  domain.AdminViaOwner,
		RateLimits: domain.DefaultRateLimits(),
		MintAmount: big.NewInt(1000),
	}
}

func (f *pipelineFixture) run(t *testing.T, stage domain.Stage, network domain.NetworkKey) *usecase.RunPipelineStageResult {
	t.Helper()
	res, err := f.uc.Run(context.Background(), usecase.RunPipelineStageParams{
		Deployment: "test",
		Stage:      stage,
		Network:    network,
		Options:    testStageOptions(),
	})
	require.NoError(t, err, "%s on %s", stage, network)
	return res
}

func TestRunPipelineStage_FullDeployment(t *testing.T) {
	f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)

	for _, stage := range domain.Stages {
		for _, network := range domain.NetworkKeys {
			res := f.run(t, stage, network)
			assert.Equal(t, stage, res.Stage)
		}
		state, err := f.store.Load(context.Background(), "test")
		require.NoError(t, err)
		assert.True(t, state.StageComplete(stage), "stage %s", stage)
		if stage < domain.StageConfigurePool {
			assert.Equal(t, stage+1, state.ActiveStage())
		} else {
			assert.Equal(t, domain.StageMintSupply, state.ActiveStage())
		}
	}

	state, err := f.store.Load(context.Background(), "test")
	require.NoError(t, err)
	fuji := state.Network(domain.NetworkFuji)
	arb := state.Network(domain.NetworkArbitrum)
	require.NotNil(t, fuji.Token)
	require.NotNil(t, arb.Pool)

	t.Run("chain updates cross reference the remote network", func(t *testing.T) {
		fujiUpdates := f.contracts.updates[domain.NetworkFuji]
		require.Len(t, fujiUpdates, 1)
		assert.Equal(t, uint64(3478487238524512106), fujiUpdates[0].RemoteChainSelector)
		assert.Equal(t, [][]byte{usecase.EncodeAddress(*arb.Pool)}, fujiUpdates[0].RemotePoolAddresses)
		assert.Equal(t, usecase.EncodeAddress(*arb.Token), fujiUpdates[0].RemoteTokenAddress)

		arbUpdates := f.contracts.updates[domain.NetworkArbitrum]
		require.Len(t, arbUpdates, 1)
		assert.Equal(t, uint64(14767482510784806043), arbUpdates[0].RemoteChainSelector)
		assert.Equal(t, usecase.EncodeAddress(*fuji.Token), arbUpdates[0].RemoteTokenAddress)
	})

	t.Run("claim admin registers before accepting", func(t *testing.T) {
		calls := f.contracts.Calls()
		reg := indexOf(calls, "registerAdmin@fuji")
		acc := indexOf(calls, "acceptAdminRole@fuji")
		require.GreaterOrEqual(t, reg, 0)
		assert.Less(t, reg, acc)
		assert.Len(t, fuji.Transactions, 8)
	})

	t.Run("mint is repeatable", func(t *testing.T) {
		f.run(t, domain.StageMintSupply, domain.NetworkFuji)
		assert.Equal(t, big.NewInt(1000), f.contracts.minted[testAccount])
	})

	t.Run("completed stages stay disabled", func(t *testing.T) {
		_, err := f.uc.Run(context.Background(), usecase.RunPipelineStageParams{
			Deployment: "test",
			Stage:      domain.StageDeployToken,
			Network:    domain.NetworkFuji,
			Options:    testStageOptions(),
		})
		assert.ErrorIs(t, err, domain.ErrStageDisabled)
	})
}

func TestRunPipelineStage_Gating(t *testing.T) {
	tests := []struct {
		name  string
		setup []struct {
			stage   domain.Stage
			network domain.NetworkKey
		}
		stage   domain.Stage
		network domain.NetworkKey
	}{
		{
			name:    "pool before token",
			stage:   domain.StageDeployPool,
			network: domain.NetworkFuji,
		},
		{
			name: "pool before token exists on every network",
			setup: []struct {
				stage   domain.Stage
				network domain.NetworkKey
			}{{domain.StageDeployToken, domain.NetworkFuji}},
			stage:   domain.StageDeployPool,
			network: domain.NetworkFuji,
		},
		{
			name:    "mint on a fresh deployment",
			stage:   domain.StageMintSupply,
			network: domain.NetworkArbitrum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)
			for _, s := range tt.setup {
				f.run(t, s.stage, s.network)
			}
			before := len(f.contracts.Calls())

			_, err := f.uc.Run(context.Background(), usecase.RunPipelineStageParams{
				Deployment: "test",
				Stage:      tt.stage,
				Network:    tt.network,
				Options:    testStageOptions(),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrStageDisabled)
			var pe *domain.PreconditionError
			require.True(t, errors.As(err, &pe))
			assert.NotEmpty(t, pe.Reason)
			assert.Len(t, f.contracts.Calls(), before, "no transaction may be sent")
		})
	}
}

func TestRunPipelineStage_Preconditions(t *testing.T) {
	ctx := context.Background()
	params := usecase.RunPipelineStageParams{
		Deployment: "test",
		Stage:      domain.StageDeployToken,
		Network:    domain.NetworkFuji,
		Options:    testStageOptions(),
	}

	t.Run("wallet not connected", func(t *testing.T) {
		f := newPipelineFixture(t, staticWallet{err: domain.NewWalletNotConnectedError("no signer configured")}, nil)
		_, err := f.uc.Run(ctx, params)
		assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
		assert.Empty(t, f.contracts.Calls())
	})

	t.Run("wrong network", func(t *testing.T) {
		f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)
		f.chain.chainIDs[domain.NetworkFuji] = 1
		_, err := f.uc.Run(ctx, params)
		assert.ErrorIs(t, err, domain.ErrWrongNetwork)
		var we *domain.WalletError
		require.True(t, errors.As(err, &we))
		assert.Equal(t, uint64(43113), we.Expected)
		assert.Equal(t, uint64(1), we.Actual)
		assert.Empty(t, f.contracts.Calls())
	})

	t.Run("busy", func(t *testing.T) {
		f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)
		require.NoError(t, f.runState.TryBegin(domain.StageDeployToken, domain.NetworkArbitrum))
		_, err := f.uc.Run(ctx, params)
		assert.ErrorIs(t, err, domain.ErrPipelineBusy)
		assert.Empty(t, f.contracts.Calls())
		f.runState.End()
	})

	t.Run("invalid token params", func(t *testing.T) {
		f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)
		p := params
		p.Options.Token.Symbol = ""
		_, err := f.uc.Run(ctx, p)
		assert.ErrorIs(t, err, domain.ErrConfig)
		assert.Empty(t, f.contracts.Calls())
	})

	t.Run("missing rmn proxy", func(t *testing.T) {
		descriptors := config.DefaultDescriptors()
		for i := range descriptors {
			descriptors[i].RMNProxy = nil
		}
		registry, err := config.NewRegistry(descriptors)
		require.NoError(t, err)

		f := newPipelineFixture(t, staticWallet{account: testAccount}, registry)
		f.run(t, domain.StageDeployToken, domain.NetworkFuji)
		f.run(t, domain.StageDeployToken, domain.NetworkArbitrum)
		before := len(f.contracts.Calls())

		_, err = f.uc.Run(ctx, usecase.RunPipelineStageParams{
			Deployment: "test",
			Stage:      domain.StageDeployPool,
			Network:    domain.NetworkFuji,
			Options:    testStageOptions(),
		})
		var ce *domain.ConfigError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "rmn_proxy", ce.Field)
		assert.Len(t, f.contracts.Calls(), before)
	})
}

func TestRunPipelineStage_FailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)
	f.contracts.failOn = "deployToken"

	_, err := f.uc.Run(ctx, usecase.RunPipelineStageParams{
		Deployment: "test",
		Stage:      domain.StageDeployToken,
		Network:    domain.NetworkFuji,
		Options:    testStageOptions(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecution)
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
	assert.Zero(t, f.store.saves)
	assert.False(t, f.runState.Snapshot().Busy)
	assert.Contains(t, f.progress.Stages(), usecase.ProgressStageFailed)

	f.contracts.failOn = ""
	res := f.run(t, domain.StageDeployToken, domain.NetworkFuji)
	require.NotNil(t, res.State.Network(domain.NetworkFuji).Token)
}

func TestRunPipelineStage_SingleFlight(t *testing.T) {
	ctx := context.Background()
	f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)

	var nested error
	f.contracts.onSubmit = func(string) {
		_, nested = f.uc.Run(ctx, usecase.RunPipelineStageParams{
			Deployment: "test",
			Stage:      domain.StageDeployToken,
			Network:    domain.NetworkArbitrum,
			Options:    testStageOptions(),
		})
	}

	f.run(t, domain.StageDeployToken, domain.NetworkFuji)
	assert.ErrorIs(t, nested, domain.ErrPipelineBusy)
	assert.Equal(t, []string{"deployToken@fuji"}, f.contracts.Calls())
}

func TestRunPipelineStage_Advance(t *testing.T) {
	ctx := context.Background()
	f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)

	results, err := f.uc.Advance(ctx, usecase.AdvancePipelineParams{Deployment: "test", Options: testStageOptions()})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.NetworkFuji, results[0].Network)
	assert.Equal(t, domain.NetworkArbitrum, results[1].Network)
	assert.False(t, results[0].Advanced)
	assert.True(t, results[1].Advanced)
	assert.Equal(t, domain.StageDeployPool, results[1].ActiveStage)

	results, err = f.uc.Advance(ctx, usecase.AdvancePipelineParams{Deployment: "test", Options: testStageOptions()})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.StageDeployPool, results[0].Stage)
}

func TestRunPipelineStage_AdvanceStopsBeforeMint(t *testing.T) {
	ctx := context.Background()
	f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)
	for _, stage := range domain.Stages {
		if stage.Terminal() {
			continue
		}
		for _, network := range domain.NetworkKeys {
			f.run(t, stage, network)
		}
	}

	results, err := f.uc.Advance(ctx, usecase.AdvancePipelineParams{Deployment: "test", Options: testStageOptions()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStageDisabled)
	assert.Contains(t, err.Error(), "pipeline run mint --network")
	assert.Empty(t, results)
	assert.Empty(t, f.contracts.minted, "advance must not mint")

	res := f.run(t, domain.StageMintSupply, domain.NetworkArbitrum)
	assert.Equal(t, domain.NetworkArbitrum, res.Network)
	assert.Len(t, f.contracts.minted, 1)
}

func TestEnsureWallet(t *testing.T) {
	registry := newTestRegistry(t)
	desc, err := registry.Descriptor(domain.NetworkArbitrum)
	require.NoError(t, err)

	account, err := usecase.EnsureWallet(context.Background(), staticWallet{account: testAccount}, newFakeChain(), desc)
	require.NoError(t, err)
	assert.Equal(t, testAccount, account)

	_, err = usecase.EnsureWallet(context.Background(), staticWallet{account: testAccount}, &fakeChain{chainIDs: map[domain.NetworkKey]uint64{}}, desc)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrWrongNetwork)
}

func TestShowPipelineStatus(t *testing.T) {
	ctx := context.Background()
	f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)
	f.run(t, domain.StageDeployToken, domain.NetworkFuji)

	state, err := f.store.Load(ctx, "test")
	require.NoError(t, err)
	f.chain.code[*state.Network(domain.NetworkFuji).Token] = true

	uc := usecase.NewShowPipelineStatus(f.registry, f.store, f.chain, f.runState)
	res, err := uc.Run(ctx, usecase.ShowPipelineStatusParams{Deployment: "test", Verify: true})
	require.NoError(t, err)

	assert.Equal(t, domain.StageDeployToken, res.ActiveStage)
	assert.Len(t, res.Networks, 2)
	assert.False(t, res.Availability[domain.StageDeployToken][domain.NetworkFuji].Enabled)
	assert.True(t, res.Availability[domain.StageDeployToken][domain.NetworkArbitrum].Enabled)
	assert.False(t, res.Availability[domain.StageDeployPool][domain.NetworkFuji].Enabled)

	fuji := res.Verification[domain.NetworkFuji]
	require.NotNil(t, fuji.TokenHasCode)
	assert.True(t, *fuji.TokenHasCode)
	assert.Nil(t, fuji.PoolHasCode)
	assert.Nil(t, res.Verification[domain.NetworkArbitrum].TokenHasCode)
}

func TestImportAndResetPipeline(t *testing.T) {
	ctx := context.Background()
	f := newPipelineFixture(t, staticWallet{account: testAccount}, nil)
	token := common.HexToAddress("0x1000000000000000000000000000000000000001")
	pool := common.HexToAddress("0x2000000000000000000000000000000000000002")

	importer := usecase.NewImportAddresses(f.registry, f.store, f.chain, f.runState)

	t.Run("rejects addresses without code", func(t *testing.T) {
		_, err := importer.Run(ctx, usecase.ImportAddressesParams{Deployment: "test", Network: domain.NetworkFuji, Token: &token})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})

	t.Run("records verified addresses", func(t *testing.T) {
		f.chain.code[token] = true
		f.chain.code[pool] = true
		state, err := importer.Run(ctx, usecase.ImportAddressesParams{Deployment: "test", Network: domain.NetworkFuji, Token: &token, Pool: &pool})
		require.NoError(t, err)
		assert.Equal(t, token, *state.Network(domain.NetworkFuji).Token)
		assert.Equal(t, pool, *state.Network(domain.NetworkFuji).Pool)
	})

	t.Run("reset removes the state", func(t *testing.T) {
		reset := usecase.NewResetPipeline(f.store)
		require.NoError(t, reset.Run(ctx, "test"))
		_, err := f.store.Load(ctx, "test")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, reset.Run(ctx, "test"))
	})
}

func indexOf(items []string, want string) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}
