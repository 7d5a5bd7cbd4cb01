package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{SecretKey: "s3cret", Algorithm: "hs384"}}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "HS384", cfg.Auth.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultAuthBurst, cfg.HTTP.AuthRateLimit.Burst)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		auth    *AuthConfig
		wantErr string
	}{
		{
			name:    "missing secret",
			auth:    &AuthConfig{Algorithm: "HS256", BcryptCost: bcrypt.MinCost},
			wantErr: "auth.secretKey must be provided",
		},
		{
			name:    "asymmetric algorithm",
			auth:    &AuthConfig{SecretKey: "k", Algorithm: "RS256", BcryptCost: bcrypt.MinCost},
			wantErr: "unsupported auth.algorithm",
		},
		{
			name:    "cost out of range",
			auth:    &AuthConfig{SecretKey: "k", Algorithm: "HS256", BcryptCost: 99},
			wantErr: "auth.bcryptCost must be between",
		},
		{
			name: "valid",
			auth: &AuthConfig{SecretKey: "k", Algorithm: "HS512", BcryptCost: bcrypt.MinCost},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{Auth: tt.auth}).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
