package repositories

import (
	"context"

	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
)

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	// Create stores a proposal for the given meeting
	Create(ctx context.Context, meetingID uint, userName, text string) (*entities.Proposal, error)

	// Submit stores a proposal for the active meeting. The lookup and the
	// insert are atomic with respect to closing the meeting; returns
	// entities.ErrNoActiveMeeting when none is active.
	Submit(ctx context.Context, userName, text string) (*entities.Proposal, error)

	// ListByMeeting returns the meeting's proposals, most recent first
	ListByMeeting(ctx context.Context, meetingID uint) ([]*entities.Proposal, error)

	// DeleteAll removes every proposal regardless of meeting
	DeleteAll(ctx context.Context) error
}
