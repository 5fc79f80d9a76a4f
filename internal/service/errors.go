package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrMissingToken        = errors.New("missing token")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenRevoked        = errors.New("token is revoked")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrInvalidStatus = errors.New("invalid assignment status")
)
