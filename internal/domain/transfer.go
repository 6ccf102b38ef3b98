package domain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// TransferStatus is the in-flight status of a transfer attempt.
type TransferStatus string

const (
	TransferIdle       TransferStatus = "idle"
	TransferEstimating TransferStatus = "estimating"
	TransferApproving  TransferStatus = "approving"
	TransferSending    TransferStatus = "sending"
	TransferConfirmed  TransferStatus = "confirmed"
	TransferFailed     TransferStatus = "failed"
)

var transferTransitions = map[TransferStatus][]TransferStatus{
	TransferIdle:       {TransferEstimating},
	TransferEstimating: {TransferEstimating, TransferApproving, TransferSending, TransferFailed},
	TransferApproving:  {TransferSending, TransferEstimating, TransferFailed},
	TransferSending:    {TransferConfirmed, TransferFailed},
	TransferFailed:     {TransferEstimating},
	TransferConfirmed:  {},
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to TransferStatus) bool {
	for _, next := range transferTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransferRequest is the complete set of parameters for one transfer.
type TransferRequest struct {
	Source      NetworkKey
	Destination NetworkKey
	Token       common.Address
	Amount      *big.Int
	Receiver    common.Address
	FeeCurrency FeeCurrency
}

// Validate checks the request is complete.
func (r TransferRequest) Validate() error {
	if r.Source == "" || r.Destination == "" {
		return fmt.Errorf("source and destination networks are required")
	}
	if r.Source == r.Destination {
		return fmt.Errorf("source and destination must differ")
	}
	if r.Token == (common.Address{}) {
		return fmt.Errorf("%w: token", ErrInvalidAddress)
	}
	if r.Receiver == (common.Address{}) {
		return fmt.Errorf("%w: receiver", ErrInvalidAddress)
	}
	if r.Amount == nil || r.Amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if _, err := ParseFeeCurrency(string(r.FeeCurrency)); err != nil {
		return err
	}
	return nil
}

// Key identifies the parameter tuple. Any change produces a new key.
func (r TransferRequest) Key() string {
	amount := "<nil>"
	if r.Amount != nil {
		amount = r.Amount.String()
	}
	return fmt.Sprintf("%s>%s|%s|%s|%s|%s",
		r.Source, r.Destination, r.Token.Hex(), amount, r.Receiver.Hex(), r.FeeCurrency)
}

// TransferAttempt tracks one transfer from estimate to confirmation.
type TransferAttempt struct {
	ID                string          `json:"id"`
	Request           TransferRequest `json:"request"`
	Status            TransferStatus  `json:"status"`
	Fee               *big.Int        `json:"fee,omitempty"`
	Allowance         *big.Int        `json:"allowance,omitempty"`
	FeeTokenAllowance *big.Int        `json:"feeTokenAllowance,omitempty"`
	NeedsApproval     bool            `json:"needsApproval"`
	NeedsFeeApproval  bool            `json:"needsFeeApproval"`
	ApprovalTx        *common.Hash    `json:"approvalTx,omitempty"`
	SendTx            *common.Hash    `json:"sendTx,omitempty"`
	MessageID         *common.Hash    `json:"messageId,omitempty"`
	TrackingURL       string          `json:"trackingUrl,omitempty"`
	LastError         string          `json:"lastError,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// NewTransferAttempt starts an idle attempt for req.
func NewTransferAttempt(id string, req TransferRequest) *TransferAttempt {
	now := time.Now().UTC()
	return &TransferAttempt{
		ID:        id,
		Request:   req,
		Status:    TransferIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Transition moves the attempt to the next status.
func (a *TransferAttempt) Transition(to TransferStatus) error {
	if !CanTransition(a.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, to)
	}
	a.Status = to
	if to != TransferFailed {
		a.LastError = ""
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Fail records err and moves the attempt to failed.
func (a *TransferAttempt) Fail(err error) {
	a.Status = TransferFailed
	if err != nil {
		a.LastError = err.Error()
	}
	a.UpdatedAt = time.Now().UTC()
}

// CCIPExplorerURL is the public CCIP explorer base for transaction links.
const CCIPExplorerURL = "https://ccip.chain.link"

// CCIPTrackingURL links a source transaction on the CCIP explorer.
func CCIPTrackingURL(hash common.Hash) string {
	return CCIPExplorerURL + "/tx/" + hash.Hex()
}
