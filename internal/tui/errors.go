// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-offline-sync/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong login or password"
	case errors.Is(err, service.ErrLoginAlreadyExists):
		return "This login is already taken"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Login and password are rejected by the server"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Not signed in"
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, service.ErrNetwork) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
