// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// task-manager server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not authenticate. The same wording covers an unknown
	// email and a wrong password so the endpoint cannot be used to probe
	// which emails are registered.
	MsgInvalidCredentials = "invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMissingToken is returned when an operation requires a token and
	// none was supplied.
	MsgMissingToken = "missing token"

	// MsgTokenIsExpired is returned when a JWT is syntactically valid but
	// its expiry time has passed. Clients holding a refresh token should
	// retry after exchanging it.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsInvalid is returned when a JWT cannot be verified (wrong
	// signature, wrong issuer, malformed claims).
	MsgTokenIsInvalid = "token is invalid"

	// MsgTokenRevoked is returned when a refresh token is presented after it
	// was already exchanged or revoked by logout.
	MsgTokenRevoked = "token is revoked"

	// MsgForbidden is returned when the authenticated user lacks the role
	// required by the endpoint.
	MsgForbidden = "access denied"

	// MsgEmailAlreadyExists is returned when a signup attempt is rejected
	// because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUserNotFound is returned when an operation references a user id
	// that does not resolve to a record.
	MsgUserNotFound = "user not found"

	// MsgTaskNotFound is returned when an operation references a task id
	// that does not resolve to a record.
	MsgTaskNotFound = "task not found"

	// MsgAssignmentNotFound is returned when an operation references an
	// assignment id that does not resolve to a record.
	MsgAssignmentNotFound = "assignment not found"

	// MsgAlreadyAssigned is returned when an assignment is requested for a
	// (user, task) pair that already has one.
	MsgAlreadyAssigned = "task is already assigned to this user"

	// MsgInvalidStatus is returned when a status update carries a value
	// outside the assignment status enumeration.
	MsgInvalidStatus = "invalid assignment status"

	// MsgLoggedOut is returned by the logout endpoint; it reports success
	// regardless of whether the presented token was still live.
	MsgLoggedOut = "logged out"

	// MsgTaskDeleted is returned after a task and its assignments were
	// removed.
	MsgTaskDeleted = "task deleted"

	// MsgAssignmentRemoved is returned after an assignment was removed.
	MsgAssignmentRemoved = "assignment removed"
)
