// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Failure modes of bearer-token extraction from the "Authorization" header.
// The auth middleware logs the precise cause; clients see a uniform
// missing-token response for all three.
var (
	// ErrEmptyAuthorizationHeader: the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header has no second
	// space-separated part, so there is nothing after the scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is followed by an empty token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
