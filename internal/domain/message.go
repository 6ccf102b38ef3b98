package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// FeeCurrency selects how the CCIP fee is paid.
type FeeCurrency string

const (
	FeeNative FeeCurrency = "native"
	FeeLink   FeeCurrency = "link"
)

// ParseFeeCurrency validates a fee currency string.
func ParseFeeCurrency(s string) (FeeCurrency, error) {
	switch FeeCurrency(strings.ToLower(s)) {
	case FeeNative:
		return FeeNative, nil
	case FeeLink:
		return FeeLink, nil
	}
	return "", fmt.Errorf("unknown fee currency %q (expected native or link)", s)
}

// TokenAmount is one positional (token, amount) entry of a message.
type TokenAmount struct {
	Token  common.Address
	Amount *big.Int
}

// Message is a CCIP EVM-to-any message. It is rebuilt for every estimate.
type Message struct {
	Receiver     []byte
	Data         []byte
	TokenAmounts []TokenAmount
	FeeToken     common.Address
	ExtraArgs    []byte
}

// PaysNative reports whether the zero fee-token sentinel is set.
func (m Message) PaysNative() bool {
	return m.FeeToken == (common.Address{})
}

// NeedsApproval is the approval rule: the router must be allowed to pull
// at least amount.
func NeedsApproval(allowance, amount *big.Int) bool {
	if amount == nil || amount.Sign() == 0 {
		return false
	}
	if allowance == nil {
		return true
	}
	return allowance.Cmp(amount) < 0
}

// NativeValue is the value attached to ccipSend: the fee when paying in
// native currency, zero otherwise.
func NativeValue(currency FeeCurrency, fee *big.Int) *big.Int {
	if currency == FeeNative && fee != nil {
		return new(big.Int).Set(fee)
	}
	return big.NewInt(0)
}
