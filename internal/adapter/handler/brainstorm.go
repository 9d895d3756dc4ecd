package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/brainstorm-assistant/errors"
	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/dto/brainstorm"
	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/presenter"
	"github.com/johnquangdev/brainstorm-assistant/internal/usecase/analysis"
	brainstormUsecase "github.com/johnquangdev/brainstorm-assistant/internal/usecase/brainstorm"
	pkgvalidator "github.com/johnquangdev/brainstorm-assistant/pkg/validator"
)

// Messages returned by the mutating endpoints
const (
	MeetingStartedMessage    = "New meeting started!"
	ProposalSubmittedMessage = "Proposal submitted, waiting for analysis..."
	SessionResetMessage      = "Meeting ended and cleared. Please ask the facilitator to start a new meeting."
)

// Brainstorm handles brainstorming session HTTP requests
type Brainstorm struct {
	service brainstormUsecase.Service
	logger  *zap.Logger
}

// NewBrainstormHandler creates a new brainstorm handler
func NewBrainstormHandler(service brainstormUsecase.Service, logger *zap.Logger) *Brainstorm {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Brainstorm{
		service: service,
		logger:  logger,
	}
}

// StartMeeting handles POST /start_meeting_submit
// Closes the active meeting, clears all proposals and opens a meeting on the given topic
func (h *Brainstorm) StartMeeting(c echo.Context) error {
	var req brainstorm.StartMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(pkgvalidator.Describe(err)))
	}

	if _, err := h.service.StartMeeting(c.Request().Context(), req.Topic); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, MeetingStartedMessage)
}

// SubmitProposal handles POST /submit_proposal
// Adds a proposal to the active meeting. A blank user name is stored as Anonymous.
func (h *Brainstorm) SubmitProposal(c echo.Context) error {
	var req brainstorm.SubmitProposalRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(pkgvalidator.Describe(err)))
	}

	if _, err := h.service.SubmitProposal(c.Request().Context(), req.UserName, req.ProposalText); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, ProposalSubmittedMessage)
}

// GetCurrentTopic handles GET /get_current_topic
func (h *Brainstorm) GetCurrentTopic(c echo.Context) error {
	topic, err := h.service.GetCurrentTopic(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTopicResponse(topic))
}

// GetAnalysis handles GET /get_analysis
// Returns the model critique of the active meeting's proposals. Results are cached for a short window.
func (h *Brainstorm) GetAnalysis(c echo.Context) error {
	result, err := h.service.GetAnalysis(c.Request().Context())
	if err != nil {
		h.logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	status := http.StatusOK
	if result.Status == analysis.StatusFailure {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, brainstorm.AnalysisResponse{Analysis: result.Text})
}

// ListProposals handles GET /get_proposals
// Lists the active meeting's proposals, most recent first
func (h *Brainstorm) ListProposals(c echo.Context) error {
	proposals, err := h.service.ListProposals(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToProposalListResponse(proposals))
}

// ResetSession handles POST /reset_session
// Closes the active meeting and clears all proposals
func (h *Brainstorm) ResetSession(c echo.Context) error {
	if err := h.service.ResetSession(c.Request().Context()); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, SessionResetMessage)
}
