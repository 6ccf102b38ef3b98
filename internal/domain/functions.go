package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// FunctionsRequest is an off-chain compute request before encoding.
type FunctionsRequest struct {
	Source string
	Args   []string
}

// FunctionsSubmission is everything updateRequest needs.
type FunctionsSubmission struct {
	Consumer       common.Address
	Request        []byte
	SubscriptionID uint64
	GasLimit       uint32
	DonID          [32]byte
}

// DonIDFromString right-pads an ASCII DON identifier to 32 bytes.
func DonIDFromString(s string) ([32]byte, error) {
	var id [32]byte
	if len(s) == 0 {
		return id, fmt.Errorf("don id is required")
	}
	if len(s) > len(id) {
		return id, fmt.Errorf("don id %q longer than 32 bytes", s)
	}
	copy(id[:], s)
	return id, nil
}
