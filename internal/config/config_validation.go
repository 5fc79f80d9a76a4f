// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied by [StructuredConfig.applyDefaults] when no configuration
// source supplies a value.
const (
	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = "localhost:8080"

	// DefaultTokenIssuer is the "iss" claim used when none is configured.
	DefaultTokenIssuer = "go-task-manager"

	// DefaultAccessTokenDuration is the access token lifetime: short, so a
	// leaked bearer token has a bounded window of use.
	DefaultAccessTokenDuration = 15 * time.Minute

	// DefaultRefreshTokenDuration is the refresh token lifetime: seven days.
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour

	// DefaultRequestTimeout bounds the handling of a single inbound request.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultCacheTTL is how long cached task entries remain valid.
	DefaultCacheTTL = 5 * time.Minute
)

// applyDefaults fills in documented defaults for every field that no
// configuration source populated. Secrets and the database DSN deliberately
// have no defaults; their absence fails validation instead.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.AccessTokenDuration == 0 {
		cfg.Auth.AccessTokenDuration = DefaultAccessTokenDuration
	}
	if cfg.Auth.RefreshTokenDuration == 0 {
		cfg.Auth.RefreshTokenDuration = DefaultRefreshTokenDuration
	}
	if cfg.Storage.Redis.TTL == 0 {
		cfg.Storage.Redis.TTL = DefaultCacheTTL
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.AccessTokenSecret == "" || cfg.Auth.RefreshTokenSecret == "" {
		return ErrInvalidAuthConfigs
	}

	// Two independent secrets bound the blast radius of a leak: an access
	// token must never verify as a refresh token or vice versa.
	if cfg.Auth.AccessTokenSecret == cfg.Auth.RefreshTokenSecret {
		return ErrSameTokenSecrets
	}

	if cfg.Auth.AccessTokenDuration >= cfg.Auth.RefreshTokenDuration {
		return ErrInvalidTokenDurations
	}

	return nil
}
