// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the offline-first client application runtime.
//
// It wires local storage, the remote backend, the sync queue and network
// monitor, the sync services, background workers and the terminal
// dashboard into a single process lifecycle.
package client
