package repository

import (
	"context"
	"errors"

	"github.com/benbjohnson/clock"
	"gorm.io/gorm"

	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
	"github.com/johnquangdev/brainstorm-assistant/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB, clk clock.Clock) repositories.MeetingRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &meetingRepository{db: db, clock: clk}
}

// Create validates the topic, then closes the previous meeting, wipes the
// proposals and inserts the new meeting in a single transaction
func (r *meetingRepository) Create(ctx context.Context, topic string) (*entities.Meeting, error) {
	meeting, err := entities.NewMeeting(topic, r.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := closeActive(tx); err != nil {
			return err
		}
		if err := deleteAllProposals(tx); err != nil {
			return err
		}
		return tx.Create(meeting).Error
	})
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

// FindActive retrieves the newest active meeting
func (r *meetingRepository) FindActive(ctx context.Context) (*entities.Meeting, error) {
	return findActive(r.db.WithContext(ctx))
}

// CloseActive marks the active meeting as closed
func (r *meetingRepository) CloseActive(ctx context.Context) error {
	return closeActive(r.db.WithContext(ctx))
}

// Reset closes the active meeting and deletes all proposals
func (r *meetingRepository) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := closeActive(tx); err != nil {
			return err
		}
		return deleteAllProposals(tx)
	})
}

func closeActive(db *gorm.DB) error {
	return db.Model(&entities.Meeting{}).
		Where("status = ?", entities.MeetingStatusActive).
		Update("status", entities.MeetingStatusClosed).Error
}

func findActive(db *gorm.DB) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := db.Where("status = ?", entities.MeetingStatusActive).
		Order("id DESC").
		First(&meeting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}
