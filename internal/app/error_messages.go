// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// reference server handlers and the client that interprets their replies.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client matches them to tell apart errors that share
// a status code, so the wording is part of the wire contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires the user ID
	// from the JWT claim but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgInvalidEntityType is returned when the {type} path segment is not
	// a valid entity type name.
	MsgInvalidEntityType = "invalid entity type"

	// MsgInvalidRecordID is returned when the {id} path segment is empty or
	// too long.
	MsgInvalidRecordID = "invalid record id"

	// MsgInvalidSince is returned when the since query parameter is not an
	// RFC 3339 timestamp.
	MsgInvalidSince = "invalid since parameter"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	MsgHashMismatch = "hash mismatch"

	// MsgVersionIsNotSpecified is returned when the build version is not
	// known to the server.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgRegistrationFailed is returned when registration fails for an
	// unexpected reason.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when login fails for an unexpected reason.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgRecordNotFound is returned when a record does not exist for the
	// current user.
	MsgRecordNotFound = "record not found"

	// MsgVersionConflict is returned when the base version sent with an
	// upsert no longer matches the stored one.
	MsgVersionConflict = "version conflict, please sync"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"
)
