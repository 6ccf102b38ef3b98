package domain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrUnsupportedNetwork is returned for chain ids or keys outside the registry
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrConfig marks configuration errors caught before submitting anything
	ErrConfig = errors.New("configuration error")

	// ErrStageDisabled is returned when a stage action is not currently enabled
	ErrStageDisabled = errors.New("stage disabled")

	// ErrPipelineBusy is returned while another pipeline action is in flight
	ErrPipelineBusy = errors.New("another action is in progress")

	// ErrWalletNotConnected is returned when no signer is configured
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrWrongNetwork is returned when the wallet serves a different chain
	ErrWrongNetwork = errors.New("wallet connected to the wrong network")

	// ErrTransactionReverted is returned when a mined transaction failed
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrExecution marks failures while submitting or confirming a transaction
	ErrExecution = errors.New("execution failed")

	// ErrEstimation marks fee read failures
	ErrEstimation = errors.New("fee estimation failed")

	// ErrEstimateSuperseded is the cancellation cause of estimates replaced by a newer request
	ErrEstimateSuperseded = errors.New("estimate superseded by a newer request")

	// ErrApprovalRequired is returned when sending without sufficient allowance
	ErrApprovalRequired = errors.New("token approval required")

	// ErrInvalidTransition is returned for transfer status changes the state machine forbids
	ErrInvalidTransition = errors.New("invalid transfer status transition")
)

// UnsupportedNetworkError is returned by registry lookups for unknown chains.
type UnsupportedNetworkError struct {
	ChainID uint64
}

func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("unsupported network: chain id %d", e.ChainID)
}

func (e *UnsupportedNetworkError) Unwrap() error { return ErrUnsupportedNetwork }

// ConfigError reports a missing or invalid configured value for a network.
type ConfigError struct {
	Network NetworkKey
	Field   string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Network == "" {
		return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("config %s.%s: %s", e.Network, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// PreconditionError explains why a stage is disabled on a network.
type PreconditionError struct {
	Stage   Stage
	Network NetworkKey
	Reason  string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s on %s is disabled: %s", e.Stage.Title(), e.Network, e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrStageDisabled }

// WalletError reports a signer problem. Expected/Actual are set for
// wrong-network errors.
type WalletError struct {
	Reason   string
	Expected uint64
	Actual   uint64
	err      error
}

// NewWrongNetworkError builds the error for a wallet serving another chain.
func NewWrongNetworkError(expected, actual uint64) *WalletError {
	return &WalletError{
		Reason:   "switch the wallet RPC to the target network",
		Expected: expected,
		Actual:   actual,
		err:      ErrWrongNetwork,
	}
}

// NewWalletNotConnectedError builds the error for a missing signer.
func NewWalletNotConnectedError(reason string) *WalletError {
	return &WalletError{Reason: reason, err: ErrWalletNotConnected}
}

func (e *WalletError) Error() string {
	if errors.Is(e.err, ErrWrongNetwork) {
		return fmt.Sprintf("%v: expected chain %d, got %d (%s)", e.err, e.Expected, e.Actual, e.Reason)
	}
	return fmt.Sprintf("%v: %s", e.err, e.Reason)
}

func (e *WalletError) Unwrap() error { return e.err }

// ExecutionError wraps a failed or reverted transaction.
type ExecutionError struct {
	Action  string
	Network NetworkKey
	TxHash  *common.Hash
	Err     error
}

func (e *ExecutionError) Error() string {
	if e.TxHash != nil {
		return fmt.Sprintf("%s on %s failed (tx %s): %v", e.Action, e.Network, e.TxHash.Hex(), e.Err)
	}
	return fmt.Sprintf("%s on %s failed: %v", e.Action, e.Network, e.Err)
}

func (e *ExecutionError) Unwrap() []error { return []error{ErrExecution, e.Err} }

// EstimationError wraps a failed fee read.
type EstimationError struct {
	Source      NetworkKey
	Destination NetworkKey
	Err         error
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("fee estimate %s -> %s: %v", e.Source, e.Destination, e.Err)
}

func (e *EstimationError) Unwrap() []error { return []error{ErrEstimation, e.Err} }
