package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/dto/brainstorm"
	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/repository"
	"github.com/johnquangdev/brainstorm-assistant/internal/infrastructure/cache"
	"github.com/johnquangdev/brainstorm-assistant/internal/infrastructure/database"
	"github.com/johnquangdev/brainstorm-assistant/internal/usecase/analysis"
	brainstormUsecase "github.com/johnquangdev/brainstorm-assistant/internal/usecase/brainstorm"
	"github.com/johnquangdev/brainstorm-assistant/pkg/config"
	pkgvalidator "github.com/johnquangdev/brainstorm-assistant/pkg/validator"
)

type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	return g.text, g.err
}

func (g *stubGenerator) Name() string         { return "stub" }
func (g *stubGenerator) DefaultModel() string { return "stub-model" }

func newTestServer(t *testing.T, gen *stubGenerator, ping PingFunc) *echo.Echo {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   filepath.Join(t.TempDir(), "brainstorm.db"),
		},
	}
	db, err := database.New(cfg, nil)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	if _, err := database.Migrate(db, "sqlite", nil); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	clk := clock.NewMock()
	meetings := repository.NewMeetingRepository(db, clk)
	proposals := repository.NewProposalRepository(db, clk)
	analysisCache := analysis.NewCache(cache.NewMemoryStore(), clk, time.Minute, nil)
	analysisService := analysis.NewService(proposals, analysisCache, gen, analysis.Options{}, nil)
	svc := brainstormUsecase.NewService(meetings, proposals, analysisService, analysisCache, nil)

	if ping == nil {
		ping = func(ctx context.Context) error { return database.Ping(ctx, db) }
	}

	e := echo.New()
	e.Validator = pkgvalidator.New()
	NewRouter(cfg, NewBrainstormHandler(svc, nil), ping).Setup(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestStartMeetingAndTopic(t *testing.T) {
	e := newTestServer(t, &stubGenerator{text: "ok"}, nil)

	rec := doJSON(t, e, http.MethodGet, "/get_current_topic", "")
	topic := decode[brainstorm.TopicResponse](t, rec)
	if rec.Code != http.StatusOK || topic.Active || topic.Topic != brainstormUsecase.NoActiveMeetingTopic {
		t.Fatalf("unexpected idle topic: %d %+v", rec.Code, topic)
	}

	rec = doJSON(t, e, http.MethodPost, "/start_meeting_submit", `{"topic":"  Roadmap 2027  "}`)
	resp := decode[brainstorm.ActionResponse](t, rec)
	if rec.Code != http.StatusOK || !resp.Success || resp.Message != MeetingStartedMessage {
		t.Fatalf("unexpected start response: %d %+v", rec.Code, resp)
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/meetings/current", "")
	topic = decode[brainstorm.TopicResponse](t, rec)
	if !topic.Active || topic.Topic != "Roadmap 2027" {
		t.Fatalf("unexpected active topic: %+v", topic)
	}
}

func TestStartMeetingShortTopic(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, nil)

	rec := doJSON(t, e, http.MethodPost, "/start_meeting_submit", `{"topic":"abc"}`)
	resp := decode[brainstorm.ActionResponse](t, rec)
	if rec.Code != http.StatusBadRequest || resp.Success {
		t.Fatalf("expected 400 failure, got %d %+v", rec.Code, resp)
	}
}

func TestStartMeetingFormBody(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, nil)

	form := url.Values{"topic": {"Team offsite ideas"}}
	req := httptest.NewRequest(http.MethodPost, "/start_meeting_submit", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitProposalFlow(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, nil)

	rec := doJSON(t, e, http.MethodPost, "/submit_proposal", `{"proposal_text":"idea"}`)
	resp := decode[brainstorm.ActionResponse](t, rec)
	if rec.Code != http.StatusBadRequest || resp.Success {
		t.Fatalf("expected 400 without meeting, got %d %+v", rec.Code, resp)
	}

	doJSON(t, e, http.MethodPost, "/start_meeting_submit", `{"topic":"Roadmap 2027"}`)

	rec = doJSON(t, e, http.MethodPost, "/submit_proposal", `{"proposal_text":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank proposal, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/submit_proposal", `{"proposal_text":"first"}`)
	resp = decode[brainstorm.ActionResponse](t, rec)
	if rec.Code != http.StatusOK || resp.Message != ProposalSubmittedMessage {
		t.Fatalf("unexpected submit response: %d %+v", rec.Code, resp)
	}
	doJSON(t, e, http.MethodPost, "/v1/proposals", `{"user_name":"Ana","proposal_text":"second"}`)

	rec = doJSON(t, e, http.MethodGet, "/get_proposals", "")
	list := decode[brainstorm.ProposalListResponse](t, rec)
	if len(list.Proposals) != 2 {
		t.Fatalf("expected 2 proposals, got %d", len(list.Proposals))
	}
	if list.Proposals[0].ProposalText != "second" || list.Proposals[0].UserName != "Ana" {
		t.Fatalf("expected most recent first, got %+v", list.Proposals[0])
	}
	if list.Proposals[1].UserName != "Anonymous" {
		t.Fatalf("expected anonymous author, got %q", list.Proposals[1].UserName)
	}
}

func TestSubmitProposalTooLong(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, nil)
	doJSON(t, e, http.MethodPost, "/start_meeting_submit", `{"topic":"Roadmap 2027"}`)

	body := `{"user_name":"` + strings.Repeat("x", 101) + `","proposal_text":"idea"}`
	rec := doJSON(t, e, http.MethodPost, "/submit_proposal", body)
	resp := decode[brainstorm.ActionResponse](t, rec)
	if rec.Code != http.StatusBadRequest || !strings.Contains(resp.Message, "user_name") {
		t.Fatalf("expected user_name validation error, got %d %+v", rec.Code, resp)
	}
}

func TestGetAnalysis(t *testing.T) {
	gen := &stubGenerator{text: "Looks promising."}
	e := newTestServer(t, gen, nil)

	rec := doJSON(t, e, http.MethodGet, "/get_analysis", "")
	got := decode[brainstorm.AnalysisResponse](t, rec)
	if rec.Code != http.StatusOK || got.Analysis != analysis.NoActiveMeetingMessage {
		t.Fatalf("unexpected idle analysis: %d %+v", rec.Code, got)
	}

	doJSON(t, e, http.MethodPost, "/start_meeting_submit", `{"topic":"Roadmap 2027"}`)
	rec = doJSON(t, e, http.MethodGet, "/get_analysis", "")
	got = decode[brainstorm.AnalysisResponse](t, rec)
	if got.Analysis != analysis.NoProposalsMessage {
		t.Fatalf("unexpected empty analysis: %+v", got)
	}

	doJSON(t, e, http.MethodPost, "/submit_proposal", `{"proposal_text":"idea"}`)
	rec = doJSON(t, e, http.MethodGet, "/v1/analysis", "")
	got = decode[brainstorm.AnalysisResponse](t, rec)
	if rec.Code != http.StatusOK || got.Analysis != "Looks promising." {
		t.Fatalf("unexpected analysis: %d %+v", rec.Code, got)
	}
}

func TestGetAnalysisFailure(t *testing.T) {
	e := newTestServer(t, &stubGenerator{err: errors.New("quota exceeded")}, nil)
	doJSON(t, e, http.MethodPost, "/start_meeting_submit", `{"topic":"Roadmap 2027"}`)
	doJSON(t, e, http.MethodPost, "/submit_proposal", `{"proposal_text":"idea"}`)

	rec := doJSON(t, e, http.MethodGet, "/get_analysis", "")
	got := decode[brainstorm.AnalysisResponse](t, rec)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.HasPrefix(got.Analysis, "Analysis failed: ") || !strings.Contains(got.Analysis, "quota exceeded") {
		t.Fatalf("unexpected failure text %q", got.Analysis)
	}
}

func TestResetSession(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, nil)
	doJSON(t, e, http.MethodPost, "/start_meeting_submit", `{"topic":"Roadmap 2027"}`)
	doJSON(t, e, http.MethodPost, "/submit_proposal", `{"proposal_text":"idea"}`)

	rec := doJSON(t, e, http.MethodPost, "/reset_session", "")
	resp := decode[brainstorm.ActionResponse](t, rec)
	if rec.Code != http.StatusOK || resp.Message != SessionResetMessage {
		t.Fatalf("unexpected reset response: %d %+v", rec.Code, resp)
	}

	topic := decode[brainstorm.TopicResponse](t, doJSON(t, e, http.MethodGet, "/get_current_topic", ""))
	if topic.Active {
		t.Fatalf("expected no active meeting after reset")
	}
	list := decode[brainstorm.ProposalListResponse](t, doJSON(t, e, http.MethodGet, "/v1/proposals", ""))
	if len(list.Proposals) != 0 {
		t.Fatalf("expected empty list after reset, got %d", len(list.Proposals))
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, nil)
	if rec := doJSON(t, e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	down := newTestServer(t, &stubGenerator{}, func(context.Context) error { return errors.New("down") })
	if rec := doJSON(t, down, http.MethodGet, "/health", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
