package usecase_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// echoRouter quotes a fee equal to the transferred amount. Amounts listed in
// block wait for their context to be cancelled.
type echoRouter struct {
	mu     sync.Mutex
	calls  int
	block  map[int64]bool
	causes []error
}

func (r *echoRouter) GetFee(ctx context.Context, _ domain.NetworkKey, _ common.Address, _ uint64, msg domain.Message) (*big.Int, error) {
	r.mu.Lock()
	r.calls++
	amount := msg.TokenAmounts[0].Amount
	blocked := r.block[amount.Int64()]
	r.mu.Unlock()

	if blocked {
		<-ctx.Done()
		r.mu.Lock()
		r.causes = append(r.causes, context.Cause(ctx))
		r.mu.Unlock()
		return nil, ctx.Err()
	}
	return new(big.Int).Set(amount), nil
}

func (r *echoRouter) CCIPSend(context.Context, domain.NetworkKey, common.Address, uint64, domain.Message, *big.Int) (*domain.SendReceipt, error) {
	panic("not used")
}

func requestFor(amount int64) domain.TransferRequest {
	req := transferRequest(domain.FeeNative)
	req.Amount = big.NewInt(amount)
	return req
}

func TestFeeEstimator_Estimate(t *testing.T) {
	registry := newTestRegistry(t)
	router := new(MockRouter)
	estimator := usecase.NewFeeEstimator(registry, router)
	ctx := context.Background()

	t.Run("reads the fee for the built message", func(t *testing.T) {
		router.On("GetFee", ctx, domain.NetworkFuji, common.HexToAddress("0xF694E193200268f9a4868e4Aa017A0118C9a8177"), uint64(3478487238524512106), mock.Anything).
			Return(big.NewInt(42), nil).Once()

		quote, err := estimator.Estimate(ctx, transferRequest(domain.FeeNative))
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(42), quote.Fee)
		assert.Equal(t, domain.NetworkArbitrum, quote.Destination.Key)
		assert.True(t, quote.Message.PaysNative())
	})

	t.Run("incomplete request", func(t *testing.T) {
		req := transferRequest(domain.FeeNative)
		req.Amount = nil
		_, err := estimator.Estimate(ctx, req)
		var ee *domain.EstimationError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, domain.NetworkFuji, ee.Source)
	})

	t.Run("router failure", func(t *testing.T) {
		router.On("GetFee", ctx, domain.NetworkArbitrum, mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
		req := transferRequest(domain.FeeNative)
		req.Source, req.Destination = domain.NetworkArbitrum, domain.NetworkFuji
		_, err := estimator.Estimate(ctx, req)
		assert.ErrorIs(t, err, domain.ErrEstimation)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestFeeQuoter(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	t.Run("last scheduled request wins", func(t *testing.T) {
		router := &echoRouter{}
		var mu sync.Mutex
		var results []usecase.QuoteResult
		quoter := usecase.NewFeeQuoter(usecase.NewFeeEstimator(registry, router), 20*time.Millisecond, func(r usecase.QuoteResult) {
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		})
		defer quoter.Stop()

		quoter.Schedule(ctx, requestFor(1))
		quoter.Schedule(ctx, requestFor(2))
		last := quoter.Schedule(ctx, requestFor(3))

		require.Eventually(t, func() bool {
			_, ok := quoter.Latest()
			return ok
		}, time.Second, 5*time.Millisecond)
		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, results, 1)
		assert.Equal(t, last, results[0].Seq)
		require.NoError(t, results[0].Err)
		assert.Equal(t, big.NewInt(3), results[0].Quote.Fee)
	})

	t.Run("in-flight estimate is cancelled by a newer request", func(t *testing.T) {
		router := &echoRouter{block: map[int64]bool{1: true}}
		delivered := make(chan usecase.QuoteResult, 4)
		quoter := usecase.NewFeeQuoter(usecase.NewFeeEstimator(registry, router), time.Millisecond, func(r usecase.QuoteResult) {
			delivered <- r
		})
		defer quoter.Stop()

		quoter.Schedule(ctx, requestFor(1))
		require.Eventually(t, func() bool {
			router.mu.Lock()
			defer router.mu.Unlock()
			return router.calls == 1
		}, time.Second, time.Millisecond)

		last := quoter.Schedule(ctx, requestFor(2))
		select {
		case r := <-delivered:
			assert.Equal(t, last, r.Seq)
			assert.Equal(t, big.NewInt(2), r.Quote.Fee)
		case <-time.After(time.Second):
			t.Fatal("no estimate delivered")
		}
		select {
		case r := <-delivered:
			t.Fatalf("stale estimate delivered: %+v", r)
		case <-time.After(30 * time.Millisecond):
		}

		router.mu.Lock()
		defer router.mu.Unlock()
		require.Len(t, router.causes, 1)
		assert.ErrorIs(t, router.causes[0], domain.ErrEstimateSuperseded)
	})

	t.Run("invalidate drops the latest result", func(t *testing.T) {
		quoter := usecase.NewFeeQuoter(usecase.NewFeeEstimator(registry, &echoRouter{}), time.Millisecond, nil)
		defer quoter.Stop()

		quoter.Schedule(ctx, requestFor(5))
		require.Eventually(t, func() bool {
			_, ok := quoter.Latest()
			return ok
		}, time.Second, time.Millisecond)

		quoter.Invalidate()
		_, ok := quoter.Latest()
		assert.False(t, ok)
	})
}
