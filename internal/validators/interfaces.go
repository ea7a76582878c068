// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks what the reference backend accepts: record
// keys and payloads, base versions and user credentials. The client uses
// the same entity type rules when it reads its configuration.
package validators

import "context"

// Validator checks obj. Passing field names (FieldID, FieldFields, ...)
// limits the check to those fields; none means all of them. Failures wrap
// one of the sentinel errors of this package.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
