package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
)

func newTestDeploymentStore(t *testing.T) *DeploymentStateStoreAdapter {
	t.Helper()
	return NewDeploymentStateStoreAdapter(&config.RuntimeConfig{DataDir: t.TempDir()})
}

func TestDeploymentStateStore_LoadMissing(t *testing.T) {
	store := newTestDeploymentStore(t)

	_, err := store.Load(context.Background(), "default")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeploymentStateStore_SaveAndLoad(t *testing.T) {
	store := newTestDeploymentStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	token := common.HexToAddress("0x1000000000000000000000000000000000000001")
	pool := common.HexToAddress("0x2000000000000000000000000000000000000002")
	state := domain.NewDeploymentState("default", domain.NetworkKeys)
	fuji := state.Network(domain.NetworkFuji)
	fuji.Token = &token
	fuji.Pool = &pool
	fuji.RolesGranted = true
	fuji.Transactions = []domain.StageTransaction{{
		Stage:       domain.StageDeployToken,
		Action:      "deploy BurnMintERC20",
		Hash:        common.HexToHash("0xabc"),
		BlockNumber: 42,
		ConfirmedAt: now,
	}}

	require.NoError(t, store.Save(ctx, state))
	assert.FileExists(t, filepath.Join(store.dir, "default.json"))

	loaded, err := store.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "default", loaded.Name)

	got := loaded.Network(domain.NetworkFuji)
	require.NotNil(t, got.Token)
	assert.Equal(t, token, *got.Token)
	assert.Equal(t, pool, *got.Pool)
	assert.True(t, got.RolesGranted)
	assert.False(t, got.AdminClaimed)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, domain.StageDeployToken, got.Transactions[0].Stage)
	assert.True(t, now.Equal(got.Transactions[0].ConfirmedAt))

	assert.False(t, loaded.Network(domain.NetworkArbitrum).Completed(domain.StageDeployToken))
	assert.Equal(t, domain.StageDeployToken, loaded.ActiveStage())
}

func TestDeploymentStateStore_SaveOverwrites(t *testing.T) {
	store := newTestDeploymentStore(t)
	ctx := context.Background()

	state := domain.NewDeploymentState("staging", domain.NetworkKeys)
	require.NoError(t, store.Save(ctx, state))

	state.Network(domain.NetworkArbitrum).Minted = true
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, "staging")
	require.NoError(t, err)
	assert.True(t, loaded.Network(domain.NetworkArbitrum).Minted)

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestDeploymentStateStore_Delete(t *testing.T) {
	store := newTestDeploymentStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewDeploymentState("default", domain.NetworkKeys)))
	require.NoError(t, store.Delete(ctx, "default"))

	_, err := store.Load(ctx, "default")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "default"), domain.ErrNotFound)
}

func TestDeploymentStateStore_InvalidName(t *testing.T) {
	store := newTestDeploymentStore(t)

	for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
		t.Run(name, func(t *testing.T) {
			_, err := store.Load(context.Background(), name)
			assert.ErrorIs(t, err, domain.ErrConfig)
		})
	}
}

func TestDeploymentStateStore_CorruptFile(t *testing.T) {
	store := newTestDeploymentStore(t)
	require.NoError(t, os.MkdirAll(store.dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "default.json"), []byte("{not json"), 0644))

	_, err := store.Load(context.Background(), "default")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
