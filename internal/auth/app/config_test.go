package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		TokenSecret: []byte(strings.Repeat("s", 32)),
		TokenTTL:    time.Hour,
		HashCost:    12,
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	t.Run("missing secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.TokenSecret = nil
		require.ErrorContains(t, cfg.Validate(), "TOKEN_SECRET is required")
	})

	t.Run("short secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.TokenSecret = []byte("short")
		require.ErrorContains(t, cfg.Validate(), "at least 32 bytes")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.TokenTTL = 0
		require.ErrorContains(t, cfg.Validate(), "TOKEN_TTL_SECONDS")
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Environment is intentionally left untouched; defaults only.
	cfg := LoadConfig()

	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 12, cfg.HashCost)
	require.Equal(t, "hirewire-auth", cfg.Issuer)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("TOKEN_SECRET", strings.Repeat("k", 40))
	t.Setenv("TOKEN_TTL_SECONDS", "600")
	t.Setenv("HASH_COST", "10")
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()

	require.Len(t, cfg.TokenSecret, 40)
	require.Equal(t, 10*time.Minute, cfg.TokenTTL)
	require.Equal(t, 10, cfg.HashCost)
	require.Equal(t, 9090, cfg.Port)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_TTLDurationString(t *testing.T) {
	t.Setenv("TOKEN_TTL_SECONDS", "2h")
	require.Equal(t, 2*time.Hour, LoadConfig().TokenTTL)
}
