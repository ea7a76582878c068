// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidPathParam is returned when a {type} or {id} segment cannot
	// be unescaped.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrPathBodyMismatch is returned when an upsert body names a different
	// record than its URL.
	ErrPathBodyMismatch = errors.New("record in body does not match the URL")
)
