package interactive

import (
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
)

func TestCreateFuzzySearchFunc(t *testing.T) {
	color.NoColor = true
	items := formatNetworkOptions(config.DefaultDescriptors())
	search := createFuzzySearchFunc(items)

	tests := []struct {
		input string
		index int
		want  bool
	}{
		{"", 0, true},
		{"fuji", 0, true},
		{"fuji", 1, false},
		{"arbsep", 1, true},
		{"421614", 1, true},
		{"zzz", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, search(tt.input, tt.index))
		})
	}
}

func TestSelectNetwork_NonInteractive(t *testing.T) {
	s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
	descriptors := config.DefaultDescriptors()

	key, err := s.SelectNetwork(context.Background(), "Network", descriptors[:1])
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkFuji, key)

	_, err = s.SelectNetwork(context.Background(), "Network", descriptors)
	assert.Error(t, err)

	ok, err := s.Confirm("Send?")
	require.NoError(t, err)
	assert.True(t, ok)
}
