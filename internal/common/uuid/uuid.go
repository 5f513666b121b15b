package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/dicestats/internal/common/uuid UUID

// UUID hands out identifiers for simulation runs
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using random (v4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Short returns the first block of a run ID, enough to tell runs apart on screen
func Short(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()[:8]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
