package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates missing token signing secrets.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrSameTokenSecrets indicates that the access and refresh token
	// secrets are identical, which would let one token class masquerade
	// as the other.
	ErrSameTokenSecrets = errors.New("access and refresh token secrets must differ")
	// ErrInvalidTokenDurations indicates that the access token lifetime is
	// not shorter than the refresh token lifetime.
	ErrInvalidTokenDurations = errors.New("access token lifetime must be shorter than refresh token lifetime")
)
