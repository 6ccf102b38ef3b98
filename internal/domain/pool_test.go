package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterConfig_Validate(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)

	tests := []struct {
		name    string
		cfg     RateLimiterConfig
		wantErr bool
	}{
		{name: "disabled", cfg: DisabledRateLimiter()},
		{name: "enabled", cfg: RateLimiterConfig{IsEnabled: true, Capacity: big.NewInt(100), Rate: big.NewInt(1)}},
		{name: "enabled without rate", cfg: RateLimiterConfig{IsEnabled: true, Capacity: big.NewInt(100), Rate: big.NewInt(0)}, wantErr: true},
		{name: "missing capacity", cfg: RateLimiterConfig{Rate: big.NewInt(0)}, wantErr: true},
		{name: "negative", cfg: RateLimiterConfig{Capacity: big.NewInt(-1), Rate: big.NewInt(0)}, wantErr: true},
		{name: "overflows uint128", cfg: RateLimiterConfig{Capacity: tooBig, Rate: big.NewInt(0)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseAdminClaimMode(t *testing.T) {
	mode, err := ParseAdminClaimMode("")
	assert.NoError(t, err)
	assert.Equal(t, AdminViaOwner, mode)

	mode, err = ParseAdminClaimMode("ccip-admin")
	assert.NoError(t, err)
	assert.Equal(t, AdminViaCCIPAdmin, mode)

	_, err = ParseAdminClaimMode("getter")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNetworkKey_Remotes(t *testing.T) {
	assert.Equal(t, []NetworkKey{NetworkArbitrum}, NetworkFuji.Remotes(NetworkKeys))
	assert.Empty(t, NetworkFuji.Remotes([]NetworkKey{NetworkFuji}))
}
