// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullConfig returns a config that passes validation.
func fullConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "issuer",
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/auth"},
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

func TestValidate_Success(t *testing.T) {
	require.NoError(t, fullConfig().validate())
}

func TestValidate_MissingRequiredValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "no sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "no dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fullConfig()
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	// hash cost defaulting is owned by the password hasher
	assert.Zero(t, cfg.App.PasswordHashCost)
}

func TestApplyDefaults_DoesNotOverrideConfiguredValues(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			TokenIssuer:   "custom-issuer",
			TokenDuration: 5 * time.Minute,
		},
	}
	cfg.applyDefaults()

	assert.Equal(t, "custom-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 5*time.Minute, cfg.App.TokenDuration)
}
