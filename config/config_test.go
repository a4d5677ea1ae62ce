package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("LOGIN_RATE_LIMIT", "")
	t.Setenv("STORE_DRIVER", "")

	cfg := FromEnv()
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpires)
	assert.Equal(t, 5, cfg.LoginRateLimit)
	assert.Equal(t, time.Minute, cfg.LoginRateWindow)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "2d")
	t.Setenv("LOGIN_RATE_LIMIT", "10")
	t.Setenv("LOGIN_RATE_WINDOW", "30s")
	t.Setenv("STORE_DRIVER", StoreMemory)
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 48*time.Hour, cfg.JWTExpires)
	assert.Equal(t, 10, cfg.LoginRateLimit)
	assert.Equal(t, 30*time.Second, cfg.LoginRateWindow)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("7d")
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, d)

	_, err = ParseDuration("xd")
	assert.Error(t, err)
}

func TestValidate_RequiresSecretForMongo(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", StoreMongo)

	cfg := FromEnv()
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)
	assert.Empty(t, cfg.JWTSecret)
}

func TestValidate_MemoryDriverGetsRandomSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", StoreMemory)

	a, b := FromEnv(), FromEnv()
	require.NoError(t, a.Validate())
	require.NoError(t, b.Validate())
	assert.Len(t, a.JWTSecret, 64)
	assert.NotEqual(t, a.JWTSecret, b.JWTSecret)
}

func TestValidate_KeepsConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", StoreMongo)

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}
