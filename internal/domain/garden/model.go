package garden

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ecolife/ecolife-api/internal/domain/plant"
)

// ErrSessionNotFound is returned by stores for unknown or expired sessions.
var ErrSessionNotFound = errors.New("garden session not found")

// Config holds runtime knobs for garden sessions.
type Config struct {
	Secret     string
	SessionTTL time.Duration
	MaxPlants  int
}

// Session is handed to the client when a garden is started.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Garden is the list of plants a session has picked.
type Garden struct {
	SessionID uuid.UUID     `json:"sessionId"`
	Plants    []plant.Plant `json:"plants"`
}

// Store keeps plant selections per session.
type Store interface {
	Create(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) error
	PlantIDs(ctx context.Context, sessionID uuid.UUID) ([]int, error)
	// Update replaces the selection with fn's result atomically.
	Update(ctx context.Context, sessionID uuid.UUID, fn func(ids []int) ([]int, error)) ([]int, error)
}

// PlantCatalog resolves plant identifiers.
type PlantCatalog interface {
	ByID(id int) (plant.Plant, bool)
}
