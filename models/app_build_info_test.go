package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Equal(t, NotAvailable, info.Version())
	assert.Equal(t, NotAvailable, info.Commit())
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A", info.String())
	assert.Equal(t, AppInfo{Version: NotAvailable}, info.AppInfo(""))
}

func TestAppBuildInfo_AppInfo(t *testing.T) {
	info := NewAppBuildInfo(" v0.4.2 ", "2026-10-01", NotAvailable)

	assert.Equal(t, AppInfo{Version: "v0.4.2", BuildDate: "2026-10-01"}, info.AppInfo(""))
	assert.Equal(t, "v1.0.0", info.AppInfo("v1.0.0").Version)
}
