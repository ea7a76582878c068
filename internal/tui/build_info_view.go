// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-offline-sync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := strings.Join([]string{
		"Application: go-offline-sync client",
		"Version: " + info.Version(),
		"Date: " + info.Date(),
		"Commit: " + info.Commit(),
	}, "\n")

	return renderPage("ABOUT", body, "esc: back")
}
