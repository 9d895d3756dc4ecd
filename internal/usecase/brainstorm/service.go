package brainstorm

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/brainstorm-assistant/errors"
	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
	"github.com/johnquangdev/brainstorm-assistant/internal/domain/repositories"
	"github.com/johnquangdev/brainstorm-assistant/internal/usecase/analysis"
)

// NoActiveMeetingTopic is reported as the topic when no meeting is active
const NoActiveMeetingTopic = "No active meeting"

// Topic describes the current meeting for clients
type Topic struct {
	Active bool
	Topic  string
}

// Service defines the brainstorming session use cases
type Service interface {
	// StartMeeting closes the current meeting, clears proposals and starts a new one
	StartMeeting(ctx context.Context, topic string) (*entities.Meeting, error)

	// SubmitProposal adds a proposal to the active meeting
	SubmitProposal(ctx context.Context, userName, text string) (*entities.Proposal, error)

	// GetCurrentTopic reports whether a meeting is active and its topic
	GetCurrentTopic(ctx context.Context) (Topic, error)

	// GetAnalysis returns the model critique of the active meeting's proposals
	GetAnalysis(ctx context.Context) (analysis.Result, error)

	// ListProposals returns the active meeting's proposals, most recent first
	ListProposals(ctx context.Context) ([]*entities.Proposal, error)

	// ResetSession closes the active meeting and clears all proposals
	ResetSession(ctx context.Context) error
}

type service struct {
	meetings  repositories.MeetingRepository
	proposals repositories.ProposalRepository
	analysis  analysis.Service
	cache     *analysis.Cache
	logger    *zap.Logger
}

// NewService constructs the brainstorming session service
func NewService(
	meetings repositories.MeetingRepository,
	proposals repositories.ProposalRepository,
	analysisService analysis.Service,
	cache *analysis.Cache,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		meetings:  meetings,
		proposals: proposals,
		analysis:  analysisService,
		cache:     cache,
		logger:    logger,
	}
}

// Ensure service implements Service interface
var _ Service = (*service)(nil)

func (s *service) StartMeeting(ctx context.Context, topic string) (*entities.Meeting, error) {
	meeting, err := s.meetings.Create(ctx, topic)
	if err != nil {
		if entities.IsValidationError(err) {
			return nil, apperrors.ErrValidation(err)
		}
		return nil, apperrors.ErrMeetingStartFailed(err)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("meeting started",
		zap.Uint("meeting_id", meeting.ID),
		zap.String("topic", meeting.Topic),
	)
	return meeting, nil
}

func (s *service) SubmitProposal(ctx context.Context, userName, text string) (*entities.Proposal, error) {
	proposal, err := s.proposals.Submit(ctx, userName, text)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrNoActiveMeeting):
			return nil, apperrors.ErrNoActiveMeeting()
		case entities.IsValidationError(err):
			return nil, apperrors.ErrValidation(err)
		default:
			return nil, apperrors.ErrProposalSaveFailed(err)
		}
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("proposal submitted",
		zap.Uint("meeting_id", proposal.MeetingID),
		zap.Uint("proposal_id", proposal.ID),
		zap.String("user_name", proposal.UserName),
	)
	return proposal, nil
}

func (s *service) GetCurrentTopic(ctx context.Context) (Topic, error) {
	meeting, err := s.meetings.FindActive(ctx)
	if err != nil {
		return Topic{}, apperrors.ErrDBQueryFailed("find active meeting", err)
	}
	if meeting == nil {
		return Topic{Active: false, Topic: NoActiveMeetingTopic}, nil
	}
	return Topic{Active: true, Topic: meeting.Topic}, nil
}

func (s *service) GetAnalysis(ctx context.Context) (analysis.Result, error) {
	meeting, err := s.meetings.FindActive(ctx)
	if err != nil {
		appErr := apperrors.ErrDBQueryFailed("find active meeting", err)
		return analysis.Failure(appErr), appErr
	}
	return s.analysis.GetAnalysis(ctx, meeting)
}

func (s *service) ListProposals(ctx context.Context) ([]*entities.Proposal, error) {
	meeting, err := s.meetings.FindActive(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("find active meeting", err)
	}
	if meeting == nil {
		return []*entities.Proposal{}, nil
	}
	proposals, err := s.proposals.ListByMeeting(ctx, meeting.ID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list proposals", err)
	}
	return proposals, nil
}

func (s *service) ResetSession(ctx context.Context) error {
	if err := s.meetings.Reset(ctx); err != nil {
		return apperrors.ErrSessionResetFailed(err)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("session reset")
	return nil
}
