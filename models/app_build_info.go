// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo is the version metadata linked into a binary with -ldflags.
// The zero value reports every field as NotAvailable.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) Date() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) Commit() string  { return orNotAvailable(a.commit) }

// AppInfo returns the GET /api/version body. A non-empty version replaces
// the linked one; an unknown date or commit is left out.
func (a AppBuildInfo) AppInfo(version string) AppInfo {
	info := AppInfo{Version: strings.TrimSpace(version)}
	if info.Version == "" {
		info.Version = a.Version()
	}
	if a.date != NotAvailable {
		info.BuildDate = a.date
	}
	if a.commit != NotAvailable {
		info.BuildCommit = a.commit
	}
	return info
}

// String is the banner both binaries print on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version(), a.Date(), a.Commit())
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

// AppInfo is the body of GET /api/version.
type AppInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
