// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable sync client. Run returns once the user quits or ctx
// is cancelled, after local state has been flushed.
type Client interface {
	Run(ctx context.Context) error
}

// UI is the interactive front end. authenticated tells it whether a
// session was restored or obtained before it started.
type UI interface {
	Run(ctx context.Context, authenticated bool) error
}
