package tui

import (
	"time"

	"github.com/MKhiriev/go-offline-sync/models"
)

// NavigateTo switches the root model to Page.
type NavigateTo struct {
	Page string
}

// LoginResult is produced by the login page once the backend answered.
type LoginResult struct {
	Session models.Session
	Err     error
}

type snapshotMsg struct {
	snapshot models.SyncSnapshot
	queue    []models.QueueGroup
	network  models.NetworkState
	err      error
}

type syncEventMsg struct {
	event models.SyncEvent
}

type refreshTickMsg time.Time

// titledItem is the payload the dashboard creates.
type titledItem struct {
	Title string `json:"title"`
}

type entityCreatedMsg struct {
	entity models.Entity
	err    error
}

type retryDoneMsg struct {
	entityType models.EntityType
	count      int
	err        error
}

type clearStatusMsg struct{}
