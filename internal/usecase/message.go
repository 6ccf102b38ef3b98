package usecase

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

// EVMExtraArgsV2Tag is bytes4(keccak256("CCIP EVMExtraArgsV2")).
var EVMExtraArgsV2Tag = crypto.Keccak256([]byte("CCIP EVMExtraArgsV2"))[:4]

var extraArgsV2 = func() abi.Arguments {
	uint256Type, _ := abi.NewType("uint256", "", nil)
	boolType, _ := abi.NewType("bool", "", nil)
	return abi.Arguments{{Type: uint256Type}, {Type: boolType}}
}()

// EncodeExtraArgsV2 encodes (gasLimit, allowOutOfOrderExecution) behind the
// V2 tag.
func EncodeExtraArgsV2(gasLimit *big.Int, allowOutOfOrder bool) ([]byte, error) {
	if gasLimit == nil {
		gasLimit = big.NewInt(0)
	}
	enc, err := extraArgsV2.Pack(gasLimit, allowOutOfOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extra args: %w", err)
	}
	out := make([]byte, 0, len(EVMExtraArgsV2Tag)+len(enc))
	out = append(out, EVMExtraArgsV2Tag...)
	return append(out, enc...), nil
}

// EncodeAddress is abi.encode(address), the receiver and remote address
// format used by CCIP.
func EncodeAddress(addr common.Address) []byte {
	return common.LeftPadBytes(addr.Bytes(), 32)
}

// ResolveFeeToken maps a fee currency to the fee token address on the source
// network. Native payment uses the zero address.
func ResolveFeeToken(currency domain.FeeCurrency, source domain.Descriptor) (common.Address, error) {
	switch currency {
	case domain.FeeNative:
		return common.Address{}, nil
	case domain.FeeLink:
		return source.FeeTokenAddress()
	}
	return common.Address{}, fmt.Errorf("unknown fee currency %q", currency)
}

// BuildMessage builds a value-only CCIP message. Destination gas is zero
// because there is no receiver callback, and out-of-order execution is
// allowed.
func BuildMessage(receiver common.Address, tokenAmounts []domain.TokenAmount, currency domain.FeeCurrency, source domain.Descriptor) (domain.Message, error) {
	feeToken, err := ResolveFeeToken(currency, source)
	if err != nil {
		return domain.Message{}, err
	}

	extraArgs, err := EncodeExtraArgsV2(big.NewInt(0), true)
	if err != nil {
		return domain.Message{}, err
	}

	amounts := make([]domain.TokenAmount, len(tokenAmounts))
	for i, ta := range tokenAmounts {
		if ta.Amount == nil {
			return domain.Message{}, fmt.Errorf("token amount %d has no amount", i)
		}
		amounts[i] = domain.TokenAmount{Token: ta.Token, Amount: new(big.Int).Set(ta.Amount)}
	}

	return domain.Message{
		Receiver:     EncodeAddress(receiver),
		Data:         []byte{},
		TokenAmounts: amounts,
		FeeToken:     feeToken,
		ExtraArgs:    extraArgs,
	}, nil
}
