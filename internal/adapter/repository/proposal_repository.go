package repository

import (
	"context"

	"github.com/benbjohnson/clock"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
	"github.com/johnquangdev/brainstorm-assistant/internal/domain/repositories"
)

// proposalRepository implements the ProposalRepository interface
type proposalRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *gorm.DB, clk clock.Clock) repositories.ProposalRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &proposalRepository{db: db, clock: clk}
}

// Create stores a proposal for the given meeting
func (r *proposalRepository) Create(ctx context.Context, meetingID uint, userName, text string) (*entities.Proposal, error) {
	proposal, err := entities.NewProposal(meetingID, userName, text, r.clock.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(proposal).Error; err != nil {
		return nil, err
	}
	return proposal, nil
}

// Submit attaches a proposal to the active meeting inside one transaction.
// The meeting row is share-locked until commit, so a concurrent close waits
// for the insert and then deletes the proposal with the others. SQLite
// serialises writers and ignores the locking clause.
func (r *proposalRepository) Submit(ctx context.Context, userName, text string) (*entities.Proposal, error) {
	var proposal *entities.Proposal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		meeting, err := findActive(tx.Clauses(clause.Locking{Strength: "SHARE"}))
		if err != nil {
			return err
		}
		if meeting == nil {
			return entities.ErrNoActiveMeeting
		}

		proposal, err = entities.NewProposal(meeting.ID, userName, text, r.clock.Now().UTC())
		if err != nil {
			return err
		}
		return tx.Create(proposal).Error
	})
	if err != nil {
		return nil, err
	}
	return proposal, nil
}

// ListByMeeting retrieves all proposals of a meeting, newest first
func (r *proposalRepository) ListByMeeting(ctx context.Context, meetingID uint) ([]*entities.Proposal, error) {
	proposals := make([]*entities.Proposal, 0)
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&proposals).Error
	return proposals, err
}

// DeleteAll removes every proposal
func (r *proposalRepository) DeleteAll(ctx context.Context) error {
	return deleteAllProposals(r.db.WithContext(ctx))
}

// deleteAllProposals is not scoped to a meeting: only one meeting is ever active
func deleteAllProposals(db *gorm.DB) error {
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.Proposal{}).Error
}
