package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// PreparedTransfer is an estimated attempt together with what it needs
// before ccipSend can go out.
type PreparedTransfer struct {
	Attempt  *domain.TransferAttempt
	Quote    *FeeQuote
	Account  common.Address
	Router   common.Address
	FeeToken common.Address
	// Value is the native amount attached to ccipSend
	Value *big.Int
}

// TokenApprovalAmount is what the router must be allowed to pull of the
// transferred token.
func (p *PreparedTransfer) TokenApprovalAmount() *big.Int {
	amount := new(big.Int).Set(p.Attempt.Request.Amount)
	if p.sameFeeToken() {
		amount.Add(amount, p.Quote.Fee)
	}
	return amount
}

func (p *PreparedTransfer) sameFeeToken() bool {
	return p.Attempt.Request.FeeCurrency == domain.FeeLink && p.FeeToken == p.Attempt.Request.Token
}

// SendTransferParams contains parameters for sending a transfer
type SendTransferParams struct {
	Request domain.TransferRequest
	// ApproveFirst submits missing approvals instead of failing
	ApproveFirst bool
}

// TransferTokens prepares, approves and sends CCIP token transfers
type TransferTokens struct {
	estimator *FeeEstimator
	tokens    TokenContracts
	router    RouterContract
	wallet    Wallet
	chain     ChainReader
	history   TransferHistoryStore
	progress  ProgressSink
	log       *slog.Logger
	newID     func() string
}

// NewTransferTokens creates a new TransferTokens use case
func NewTransferTokens(
	estimator *FeeEstimator,
	tokens TokenContracts,
	router RouterContract,
	wallet Wallet,
	chain ChainReader,
	history TransferHistoryStore,
	progress ProgressSink,
	log *slog.Logger,
) *TransferTokens {
	return &TransferTokens{
		estimator: estimator,
		tokens:    tokens,
		router:    router,
		wallet:    wallet,
		chain:     chain,
		history:   history,
		progress:  progress,
		log:       log,
		newID:     func() string { return uuid.NewString() },
	}
}

// ParseAmount converts a decimal amount using the token's decimals on network
func (uc *TransferTokens) ParseAmount(ctx context.Context, network domain.NetworkKey, token common.Address, amount string) (*big.Int, domain.TokenMetadata, error) {
	meta, err := uc.tokens.Metadata(ctx, network, token)
	if err != nil {
		return nil, domain.TokenMetadata{}, fmt.Errorf("failed to read token metadata: %w", err)
	}
	v, err := domain.ParseUnits(amount, meta.Decimals)
	if err != nil {
		return nil, meta, err
	}
	return v, meta, nil
}

// TokenBalance is the signer's holding of a token on one network
type TokenBalance struct {
	Network  domain.NetworkKey
	Account  common.Address
	Metadata domain.TokenMetadata
	Balance  *big.Int
}

// Balance reads the signer's balance of token on network
func (uc *TransferTokens) Balance(ctx context.Context, network domain.NetworkKey, token common.Address) (*TokenBalance, error) {
	account, err := uc.wallet.Account(ctx)
	if err != nil {
		return nil, err
	}
	meta, err := uc.tokens.Metadata(ctx, network, token)
	if err != nil {
		return nil, fmt.Errorf("failed to read token metadata: %w", err)
	}
	balance, err := uc.tokens.BalanceOf(ctx, network, token, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	return &TokenBalance{Network: network, Account: account, Metadata: meta, Balance: balance}, nil
}

// Quote estimates the fee only. No wallet is needed.
func (uc *TransferTokens) Quote(ctx context.Context, req domain.TransferRequest) (*FeeQuote, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: ProgressEstimating, Message: "Estimating fee", Spinner: true})
	return uc.estimator.Estimate(ctx, req)
}

// Prepare estimates the fee and reads the allowances that decide whether
// approvals are needed.
func (uc *TransferTokens) Prepare(ctx context.Context, req domain.TransferRequest) (*PreparedTransfer, error) {
	attempt := domain.NewTransferAttempt(uc.newID(), req)
	if err := attempt.Transition(domain.TransferEstimating); err != nil {
		return nil, err
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: ProgressEstimating, Message: "Estimating fee", Spinner: true})

	quote, err := uc.estimator.Estimate(ctx, req)
	if err != nil {
		attempt.Fail(err)
		return &PreparedTransfer{Attempt: attempt}, err
	}
	attempt.Fee = quote.Fee

	prepared := &PreparedTransfer{
		Attempt:  attempt,
		Quote:    quote,
		FeeToken: quote.Message.FeeToken,
		Value:    domain.NativeValue(req.FeeCurrency, quote.Fee),
	}
	prepared.Router, _ = quote.Source.RouterAddress()

	account, err := EnsureWallet(ctx, uc.wallet, uc.chain, quote.Source)
	if err != nil {
		attempt.Fail(err)
		return prepared, err
	}
	prepared.Account = account

	allowance, err := uc.tokens.Allowance(ctx, req.Source, req.Token, account, prepared.Router)
	if err != nil {
		err = fmt.Errorf("failed to read allowance: %w", err)
		attempt.Fail(err)
		return prepared, err
	}
	attempt.Allowance = allowance
	attempt.NeedsApproval = domain.NeedsApproval(allowance, prepared.TokenApprovalAmount())

	if req.FeeCurrency == domain.FeeLink && !prepared.sameFeeToken() {
		feeAllowance, err := uc.tokens.Allowance(ctx, req.Source, prepared.FeeToken, account, prepared.Router)
		if err != nil {
			err = fmt.Errorf("failed to read fee token allowance: %w", err)
			attempt.Fail(err)
			return prepared, err
		}
		attempt.FeeTokenAllowance = feeAllowance
		attempt.NeedsFeeApproval = domain.NeedsApproval(feeAllowance, quote.Fee)
	}

	return prepared, nil
}

// Approve submits the approvals a prepared transfer is missing
func (uc *TransferTokens) Approve(ctx context.Context, prepared *PreparedTransfer) error {
	attempt := prepared.Attempt
	if !attempt.NeedsApproval && !attempt.NeedsFeeApproval {
		return nil
	}
	if err := attempt.Transition(domain.TransferApproving); err != nil {
		return err
	}
	req := attempt.Request

	if attempt.NeedsApproval {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: ProgressApproving, Message: "Approving router to spend token", Spinner: true})
		receipt, err := uc.tokens.Approve(ctx, req.Source, req.Token, prepared.Router, prepared.TokenApprovalAmount())
		if err != nil {
			attempt.Fail(err)
			return err
		}
		attempt.ApprovalTx = &receipt.Hash
		attempt.NeedsApproval = false
		uc.log.Info("token approved", "network", req.Source, "token", req.Token.Hex(), "tx", receipt.Hash.Hex())
	}

	if attempt.NeedsFeeApproval {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: ProgressApproving, Message: "Approving router to spend fee token", Spinner: true})
		receipt, err := uc.tokens.Approve(ctx, req.Source, prepared.FeeToken, prepared.Router, prepared.Quote.Fee)
		if err != nil {
			attempt.Fail(err)
			return err
		}
		if attempt.ApprovalTx == nil {
			attempt.ApprovalTx = &receipt.Hash
		}
		attempt.NeedsFeeApproval = false
		uc.log.Info("fee token approved", "network", req.Source, "token", prepared.FeeToken.Hex(), "tx", receipt.Hash.Hex())
	}
	return nil
}

// ApproveOnly prepares req and submits any missing approvals without sending
func (uc *TransferTokens) ApproveOnly(ctx context.Context, req domain.TransferRequest) (*domain.TransferAttempt, error) {
	prepared, err := uc.Prepare(ctx, req)
	if err != nil {
		return attemptOf(prepared), err
	}
	if err := uc.Approve(ctx, prepared); err != nil {
		return prepared.Attempt, err
	}
	return prepared.Attempt, nil
}

// Send runs a transfer to confirmation. Every attempt is recorded in the
// history, failed ones included.
func (uc *TransferTokens) Send(ctx context.Context, params SendTransferParams) (*domain.TransferAttempt, error) {
	prepared, err := uc.Prepare(ctx, params.Request)
	if err != nil {
		return uc.record(ctx, attemptOf(prepared), err)
	}
	attempt := prepared.Attempt

	if attempt.NeedsApproval || attempt.NeedsFeeApproval {
		if !params.ApproveFirst {
			err := fmt.Errorf("%w: allowance %s is below %s", domain.ErrApprovalRequired,
				bigString(attempt.Allowance), prepared.TokenApprovalAmount())
			attempt.Fail(err)
			return uc.record(ctx, attempt, err)
		}
		if err := uc.Approve(ctx, prepared); err != nil {
			return uc.record(ctx, attempt, err)
		}
	}

	if err := attempt.Transition(domain.TransferSending); err != nil {
		return attempt, err
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: ProgressSending, Message: "Sending ccipSend", Spinner: true})

	receipt, err := uc.router.CCIPSend(ctx, params.Request.Source, prepared.Router,
		prepared.Quote.Destination.ChainSelector, prepared.Quote.Message, prepared.Value)
	if err != nil {
		var execErr *domain.ExecutionError
		if errors.As(err, &execErr) && execErr.TxHash != nil {
			attempt.SendTx = execErr.TxHash
		}
		attempt.Fail(err)
		return uc.record(ctx, attempt, err)
	}

	hash := receipt.Hash
	attempt.SendTx = &hash
	attempt.MessageID = receipt.MessageID
	attempt.TrackingURL = domain.CCIPTrackingURL(hash)
	if err := attempt.Transition(domain.TransferConfirmed); err != nil {
		return attempt, err
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: ProgressConfirmed, Message: attempt.TrackingURL, Metadata: receipt})
	uc.log.Info("transfer sent", "source", params.Request.Source, "destination", params.Request.Destination, "tx", hash.Hex())

	return uc.record(ctx, attempt, nil)
}

func (uc *TransferTokens) record(ctx context.Context, attempt *domain.TransferAttempt, cause error) (*domain.TransferAttempt, error) {
	if attempt == nil {
		return nil, cause
	}
	if err := uc.history.Append(ctx, attempt); err != nil {
		uc.log.Warn("failed to record transfer", "id", attempt.ID, "error", err)
	}
	return attempt, cause
}

func attemptOf(p *PreparedTransfer) *domain.TransferAttempt {
	if p == nil {
		return nil
	}
	return p.Attempt
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// ListTransfers returns recorded transfer attempts
type ListTransfers struct {
	history TransferHistoryStore
}

// NewListTransfers creates a new ListTransfers use case
func NewListTransfers(history TransferHistoryStore) *ListTransfers {
	return &ListTransfers{history: history}
}

// Run returns the history, newest first, truncated to limit when positive
func (uc *ListTransfers) Run(ctx context.Context, limit int) ([]*domain.TransferAttempt, error) {
	attempts, err := uc.history.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.TransferAttempt, 0, len(attempts))
	for i := len(attempts) - 1; i >= 0; i-- {
		out = append(out, attempts[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
