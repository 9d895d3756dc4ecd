package repositories

import (
	"context"

	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create closes any active meeting, deletes all proposals and inserts a
	// new active meeting, all in one transaction
	Create(ctx context.Context, topic string) (*entities.Meeting, error)

	// FindActive returns the active meeting with the highest id, or nil
	FindActive(ctx context.Context) (*entities.Meeting, error)

	// CloseActive marks the active meeting, if any, as closed
	CloseActive(ctx context.Context) error

	// Reset closes the active meeting and deletes all proposals in one transaction
	Reset(ctx context.Context) error
}
