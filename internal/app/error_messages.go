// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer values used by both the
// server handlers and the client error mapper.
//
// Msg* constants are the human-readable strings written into the "message"
// field of JSON response bodies. The client matches on them to recover the
// precise error, so the wording is part of the API.
//
// The Err* kinds form the error taxonomy of the system. Every concrete
// sentinel error of the lower layers wraps exactly one kind.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or required fields are missing.
	MsgInvalidDataProvided = "username and password are required"

	// MsgEncryptedVaultMustBeString is returned when POST /api/accounts
	// carries an encrypted_vault that is missing or not a JSON string.
	MsgEncryptedVaultMustBeString = "encrypted_vault must be a string"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "Invalid username or password"

	// MsgUsernameAlreadyExists is returned when a registration attempt uses
	// a username that is already taken.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgUserRegistered is returned on successful registration.
	MsgUserRegistered = "User registered successfully"

	// MsgVaultUpdated is returned when the encrypted vault was replaced.
	MsgVaultUpdated = "Vault updated successfully"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMissingToken is returned when an authenticated route is called
	// without a usable Authorization header.
	MsgMissingToken = "missing bearer token"

	// MsgUserNotFound is returned when the authenticated account no longer
	// exists.
	MsgUserNotFound = "user not found"

	// MsgRequestTooLarge is returned when a request body exceeds the
	// configured limit.
	MsgRequestTooLarge = "request body too large"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgStorageUnavailable is returned when the storage backend is
	// temporarily unreachable.
	MsgStorageUnavailable = "storage temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
