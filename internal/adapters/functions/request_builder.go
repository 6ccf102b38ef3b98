package functions

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// Code locations and languages understood by the Functions DON
const (
	LocationInline     = 0
	LanguageJavaScript = 0
)

// ErrMissingSourceOrArgs is returned for requests without source or args
var ErrMissingSourceOrArgs = errors.New("Missing source or args") //nolint:staticcheck

type cborRequest struct {
	CodeLocation uint     `cbor:"codeLocation"`
	Language     uint     `cbor:"language"`
	Source       string   `cbor:"source"`
	Args         []string `cbor:"args"`
}

// RequestBuilder encodes inline JavaScript requests as canonical CBOR
type RequestBuilder struct {
	enc cbor.EncMode
}

// NewRequestBuilder creates a RequestBuilder
func NewRequestBuilder() (*RequestBuilder, error) {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create cbor encoder: %w", err)
	}
	return &RequestBuilder{enc: enc}, nil
}

// Build encodes req
func (b *RequestBuilder) Build(_ context.Context, req domain.FunctionsRequest) ([]byte, error) {
	if req.Source == "" || req.Args == nil {
		return nil, ErrMissingSourceOrArgs
	}
	out, err := b.enc.Marshal(cborRequest{
		CodeLocation: LocationInline,
		Language:     LanguageJavaScript,
		Source:       req.Source,
		Args:         req.Args,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return out, nil
}

var _ usecase.FunctionsRequestBuilder = (*RequestBuilder)(nil)
