package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/dto/common"
	"github.com/johnquangdev/brainstorm-assistant/pkg/config"
)

// PingFunc reports whether a backing service is reachable
type PingFunc func(ctx context.Context) error

// Router holds all handlers
type Router struct {
	cfg        *config.Config
	brainstorm *Brainstorm
	pingDB     PingFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, brainstormHandler *Brainstorm, pingDB PingFunc) *Router {
	return &Router{
		cfg:        cfg,
		brainstorm: brainstormHandler,
		pingDB:     pingDB,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Endpoints used by the existing web clients
	e.POST("/start_meeting_submit", rt.brainstorm.StartMeeting)
	e.POST("/submit_proposal", rt.brainstorm.SubmitProposal)
	e.GET("/get_current_topic", rt.brainstorm.GetCurrentTopic)
	e.GET("/get_analysis", rt.brainstorm.GetAnalysis)
	e.GET("/get_proposals", rt.brainstorm.ListProposals)
	e.POST("/reset_session", rt.brainstorm.ResetSession)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupProposalRoutes(v1)
}

// setupMeetingRoutes configures meeting and analysis routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	g.POST("/meetings", rt.brainstorm.StartMeeting)
	g.GET("/meetings/current", rt.brainstorm.GetCurrentTopic)
	g.GET("/analysis", rt.brainstorm.GetAnalysis)
	g.POST("/session/reset", rt.brainstorm.ResetSession)
}

// setupProposalRoutes configures proposal routes
func (rt *Router) setupProposalRoutes(g *echo.Group) {
	proposalGroup := g.Group("/proposals")
	proposalGroup.POST("", rt.brainstorm.SubmitProposal)
	proposalGroup.GET("", rt.brainstorm.ListProposals)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := ""
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}

	if rt.pingDB != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := rt.pingDB(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, common.HealthResponse{
				Status:      "unavailable",
				Environment: environment,
				Error:       err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: environment,
		Time:        time.Now().UTC().Format(time.RFC3339),
	})
}
