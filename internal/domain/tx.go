package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// TxReceipt is the confirmed outcome of a submitted transaction.
type TxReceipt struct {
	Network         NetworkKey
	Hash            common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	ContractAddress *common.Address
	Confirmations   uint64
}

// SendReceipt is a confirmed ccipSend with its message id.
type SendReceipt struct {
	TxReceipt
	MessageID *common.Hash
}
