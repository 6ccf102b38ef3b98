package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/domain/config"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

func TestPipelineProgress(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	p := NewPipelineProgress(&out)
	ctx := context.Background()
	token := common.HexToAddress("0x1000000000000000000000000000000000000001")

	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.ProgressStageStarting, Current: 1, Total: 7, Message: "Deploy Token on Avalanche Fuji"})
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.ProgressTxSubmitting, Message: "deploy BurnMintERC20 on Avalanche Fuji", Spinner: true})
	p.OnProgress(ctx, usecase.ProgressEvent{
		Stage:    usecase.ProgressTxConfirmed,
		Message:  "deploy BurnMintERC20 confirmed in block 12",
		Metadata: &domain.TxReceipt{Hash: common.HexToHash("0xabc")},
	})
	p.OnProgress(ctx, usecase.ProgressEvent{
		Stage:    usecase.ProgressStageCompleted,
		Message:  "Deploy Token on Avalanche Fuji",
		Metadata: &domain.StageResult{Token: &token},
	})

	got := out.String()
	assert.Contains(t, got, "[1/7] Deploy Token on Avalanche Fuji")
	assert.Contains(t, got, "✓ deploy BurnMintERC20 confirmed in block 12")
	assert.Contains(t, got, common.HexToHash("0xabc").Hex())
	assert.Contains(t, got, "✓ Completed: Deploy Token on Avalanche Fuji")
	assert.Contains(t, got, "token: "+token.Hex())
}

func TestSpinnerProgressReporter_Failure(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	r := NewSpinnerProgressReporterTo(&out)

	r.OnProgress(context.Background(), usecase.ProgressEvent{Stage: usecase.ProgressStageFailed, Message: "mint on fuji failed"})
	r.Error("boom")

	assert.Contains(t, out.String(), "✗ mint on fuji failed")
	assert.Contains(t, out.String(), "boom\n")
}

func TestProgressSinkFor(t *testing.T) {
	var out bytes.Buffer
	assert.IsType(t, &NopSink{}, progressSinkFor(&config.RuntimeConfig{JSON: true}, &out))
	assert.IsType(t, &PipelineProgress{}, progressSinkFor(&config.RuntimeConfig{}, &out))
}
