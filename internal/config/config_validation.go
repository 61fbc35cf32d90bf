// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// defaultTokenIssuer is the "iss" claim used when no issuer is configured.
	defaultTokenIssuer = "go-auth-service"

	// defaultTokenDuration is the token lifetime used when none is configured.
	defaultTokenDuration = time.Hour
)

// applyDefaults fills in safe fallback values for optional settings that were
// not supplied by any configuration source. Secrets and addresses have no
// defaults; their absence is a validation error instead.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	// PasswordHashCost zero is handled by utils.HashPassword, which falls
	// back to the bcrypt default cost.
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key is process-wide security configuration: starting without
// it would make every issued token forgeable, so it is required. The database
// DSN and HTTP listen address are required for the server to do anything
// useful at all.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
