package functions_test

import (
	"context"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/adapters/functions"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

func TestRequestBuilder_Build(t *testing.T) {
	builder, err := functions.NewRequestBuilder()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("encodes inline javascript", func(t *testing.T) {
		source := "return Functions.encodeString(args[0])"
		out, err := builder.Build(ctx, domain.FunctionsRequest{Source: source, Args: []string{"40.4", "-3.7", "0xhash"}})
		require.NoError(t, err)
		assert.Equal(t, byte(0xa4), out[0], "map with four entries")

		var decoded map[string]interface{}
		require.NoError(t, cbor.Unmarshal(out, &decoded))
		assert.Equal(t, uint64(0), decoded["codeLocation"])
		assert.Equal(t, uint64(0), decoded["language"])
		assert.Equal(t, source, decoded["source"])
		assert.Equal(t, []interface{}{"40.4", "-3.7", "0xhash"}, decoded["args"])
	})

	t.Run("is deterministic", func(t *testing.T) {
		req := domain.FunctionsRequest{Source: "return 1", Args: []string{"a", "b"}}
		first, err := builder.Build(ctx, req)
		require.NoError(t, err)
		second, err := builder.Build(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("empty args are encoded as an empty array", func(t *testing.T) {
		out, err := builder.Build(ctx, domain.FunctionsRequest{Source: "return 1", Args: []string{}})
		require.NoError(t, err)
		assert.Equal(t, byte(0xa4), out[0], "map with four entries")

		var decoded map[string]interface{}
		require.NoError(t, cbor.Unmarshal(out, &decoded))
		args, ok := decoded["args"]
		require.True(t, ok, "args key present")
		assert.Equal(t, []interface{}{}, args)
		assert.Contains(t, string(out), "args\x80")
	})

	tests := []struct {
		name string
		req  domain.FunctionsRequest
	}{
		{name: "missing source", req: domain.FunctionsRequest{Args: []string{"x"}}},
		{name: "missing args", req: domain.FunctionsRequest{Source: "return 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Build(ctx, tt.req)
			assert.ErrorIs(t, err, functions.ErrMissingSourceOrArgs)
		})
	}
}
