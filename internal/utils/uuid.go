package utils

import "github.com/google/uuid"

// UUIDGenerator hands out version 7 UUIDs for locally created records.
// They sort by creation time, which keeps queue and index order stable.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random v4 id if the v7 clock read fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// NewTraceID returns an id for a request that arrived without one.
func NewTraceID() string {
	return uuid.NewString()
}
