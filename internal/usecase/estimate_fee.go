package usecase

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// FeeQuote is the fee for one request. The message is the exact message the
// fee was read for.
type FeeQuote struct {
	Request     domain.TransferRequest
	Source      domain.Descriptor
	Destination domain.Descriptor
	Message     domain.Message
	Fee         *big.Int
	QuotedAt    time.Time
}

// FeeEstimator reads CCIP fees from the source router
type FeeEstimator struct {
	registry NetworkRegistry
	router   RouterContract
}

// NewFeeEstimator creates a new FeeEstimator
func NewFeeEstimator(registry NetworkRegistry, router RouterContract) *FeeEstimator {
	return &FeeEstimator{registry: registry, router: router}
}

// Estimate builds the message for req and asks the source router for the
// fee. Failures are returned as *domain.EstimationError.
func (e *FeeEstimator) Estimate(ctx context.Context, req domain.TransferRequest) (*FeeQuote, error) {
	wrap := func(err error) error {
		return &domain.EstimationError{Source: req.Source, Destination: req.Destination, Err: err}
	}

	if err := req.Validate(); err != nil {
		return nil, wrap(err)
	}
	source, err := e.registry.Descriptor(req.Source)
	if err != nil {
		return nil, wrap(err)
	}
	dest, err := e.registry.Descriptor(req.Destination)
	if err != nil {
		return nil, wrap(err)
	}
	router, err := source.RouterAddress()
	if err != nil {
		return nil, wrap(err)
	}

	msg, err := BuildMessage(req.Receiver,
		[]domain.TokenAmount{{Token: req.Token, Amount: req.Amount}},
		req.FeeCurrency, source)
	if err != nil {
		return nil, wrap(err)
	}

	fee, err := e.router.GetFee(ctx, req.Source, router, dest.ChainSelector, msg)
	if err != nil {
		return nil, wrap(err)
	}
	if fee == nil {
		return nil, wrap(fmt.Errorf("router returned no fee"))
	}

	return &FeeQuote{
		Request:     req,
		Source:      source,
		Destination: dest,
		Message:     msg,
		Fee:         fee,
		QuotedAt:    time.Now().UTC(),
	}, nil
}

// QuoteResult is delivered for the latest scheduled request only
type QuoteResult struct {
	Seq   uint64
	Quote *FeeQuote
	Err   error
}

// FeeQuoter debounces fee estimates for a request that changes while the
// operator edits it. Only the last scheduled request produces a result;
// earlier in-flight reads are cancelled and their answers dropped.
type FeeQuoter struct {
	estimator *FeeEstimator
	window    time.Duration
	onResult  func(QuoteResult)

	mu      sync.Mutex
	seq     uint64
	timer   *time.Timer
	cancel  context.CancelCauseFunc
	latest  *QuoteResult
	stopped bool
}

// NewFeeQuoter creates a quoter that waits window after the last change
// before reading the fee. onResult may be nil.
func NewFeeQuoter(estimator *FeeEstimator, window time.Duration, onResult func(QuoteResult)) *FeeQuoter {
	return &FeeQuoter{
		estimator: estimator,
		window:    window,
		onResult:  onResult,
	}
}

// Schedule replaces any pending or running estimate with one for req and
// returns its sequence number.
func (q *FeeQuoter) Schedule(ctx context.Context, req domain.TransferRequest) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	seq := q.seq
	if q.stopped {
		return seq
	}
	if q.timer != nil {
		q.timer.Stop()
	}
	if q.cancel != nil {
		q.cancel(domain.ErrEstimateSuperseded)
		q.cancel = nil
	}

	q.timer = time.AfterFunc(q.window, func() {
		q.run(ctx, seq, req)
	})
	return seq
}

func (q *FeeQuoter) run(parent context.Context, seq uint64, req domain.TransferRequest) {
	q.mu.Lock()
	if seq != q.seq || q.stopped {
		q.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancelCause(parent)
	q.cancel = cancel
	q.mu.Unlock()
	defer cancel(nil)

	quote, err := q.estimator.Estimate(ctx, req)

	q.mu.Lock()
	if seq != q.seq || q.stopped {
		q.mu.Unlock()
		return
	}
	res := QuoteResult{Seq: seq, Quote: quote, Err: err}
	q.latest = &res
	q.cancel = nil
	cb := q.onResult
	q.mu.Unlock()

	if cb != nil {
		cb(res)
	}
}

// Latest returns the most recent delivered result
func (q *FeeQuoter) Latest() (QuoteResult, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.latest == nil {
		return QuoteResult{}, false
	}
	return *q.latest, true
}

// Invalidate drops the pending estimate and any delivered result, for when
// the request becomes incomplete.
func (q *FeeQuoter) Invalidate() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	q.latest = nil
	if q.timer != nil {
		q.timer.Stop()
	}
	if q.cancel != nil {
		q.cancel(domain.ErrEstimateSuperseded)
		q.cancel = nil
	}
}

// Stop cancels pending work. No result is delivered afterwards.
func (q *FeeQuoter) Stop() {
	q.Invalidate()
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
}
