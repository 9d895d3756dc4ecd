package analysis

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/brainstorm-assistant/errors"
	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
	"github.com/johnquangdev/brainstorm-assistant/internal/domain/repositories"
	pkgai "github.com/johnquangdev/brainstorm-assistant/pkg/ai"
)

// Fixed replies that do not involve the model
const (
	NoActiveMeetingMessage = "There is no active meeting, so there is nothing to analyse."
	NoProposalsMessage     = "There are no proposals yet. Please submit a proposal first."
	failurePrefix          = "Analysis failed: "
)

// Status tells the caller whether the analysis text is a result or an error report
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
)

// Result is the text shown to users and its status
type Result struct {
	Text   string
	Status Status
	// Cached is true when the text was served from the cache
	Cached bool
}

// Service defines analysis orchestration
type Service interface {
	GetAnalysis(ctx context.Context, meeting *entities.Meeting) (Result, error)
}

type service struct {
	proposals repositories.ProposalRepository
	cache     *Cache
	generator pkgai.TextGenerator
	model     string
	language  string
	logger    *zap.Logger
}

// Options configures the analysis service
type Options struct {
	Model    string
	Language string
}

// NewService constructs the analysis service
func NewService(
	proposals repositories.ProposalRepository,
	cache *Cache,
	generator pkgai.TextGenerator,
	opts Options,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	model := opts.Model
	if model == "" {
		model = generator.DefaultModel()
	}
	return &service{
		proposals: proposals,
		cache:     cache,
		generator: generator,
		model:     model,
		language:  opts.Language,
		logger:    logger,
	}
}

// GetAnalysis returns the cached analysis or generates a new one. Failures
// never propagate as a bare error: the Result always carries user-visible
// text, and the returned error (an AppError) is for logging and status
// mapping only.
func (s *service) GetAnalysis(ctx context.Context, meeting *entities.Meeting) (Result, error) {
	if meeting == nil {
		return Result{Text: NoActiveMeetingMessage, Status: StatusSuccess}, nil
	}

	text, gen, ok := s.cache.TryGet(ctx)
	if ok {
		return Result{Text: text, Status: StatusSuccess, Cached: true}, nil
	}

	proposals, err := s.proposals.ListByMeeting(ctx, meeting.ID)
	if err != nil {
		return s.fail(meeting, apperrors.ErrDBQueryFailed("list proposals", err))
	}
	if len(proposals) == 0 {
		return Result{Text: NoProposalsMessage, Status: StatusSuccess}, nil
	}

	prompt := BuildPrompt(meeting.Topic, proposals, s.language)

	start := time.Now()
	text, err = s.generator.Generate(ctx, s.model, prompt)
	if err != nil {
		return s.fail(meeting, apperrors.ErrExternalAPIFailed(s.generator.Name(), err))
	}

	s.cache.Put(ctx, gen, text)

	s.logger.Info("analysis generated",
		zap.Uint("meeting_id", meeting.ID),
		zap.Int("proposal_count", len(proposals)),
		zap.String("provider", s.generator.Name()),
		zap.String("model", s.model),
		zap.Duration("latency", time.Since(start)),
	)
	return Result{Text: text, Status: StatusSuccess}, nil
}

func (s *service) fail(meeting *entities.Meeting, appErr apperrors.AppError) (Result, error) {
	s.logger.Error("analysis failed",
		zap.Uint("meeting_id", meeting.ID),
		zap.Any("app_code", appErr.Code),
		zap.Error(appErr),
	)
	return Failure(appErr), apperrors.ErrAIAnalysisFailed(appErr)
}

// Failure builds the user-visible result for a failed analysis
func Failure(appErr apperrors.AppError) Result {
	return Result{Text: failurePrefix + appErr.Cause(), Status: StatusFailure}
}
