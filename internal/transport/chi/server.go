package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/session"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/repository/sessionlog"
	healthuc "github.com/Recognifygeneral/Psychometricist-AI/internal/usecase/health"
	interviewuc "github.com/Recognifygeneral/Psychometricist-AI/internal/usecase/interview"
)

// interviewService is the consumer interface over the interview use case (ISP).
type interviewService interface {
	Start(ctx context.Context) (interviewuc.Outcome, error)
	Respond(ctx context.Context, sessionID, reply string) (interviewuc.Outcome, error)
	Stop(ctx context.Context, sessionID string) (interviewuc.Outcome, error)
	Get(ctx context.Context, sessionID string) (*session.Session, error)
	GetLog(ctx context.Context, sessionID string) (*sessionlog.Snapshot, error)
	ListLogs(ctx context.Context) ([]string, error)
}

// selfReporter attaches a questionnaire score to a finished record.
type selfReporter interface {
	SetSelfReport(ctx context.Context, sessionID string, score float64) error
}

// healthService runs aggregated component checks.
type healthService interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the interview API over chi.
type Server struct {
	interview     interviewService
	selfReports   selfReporter
	health        healthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	interview interviewService,
	selfReports selfReporter,
	health healthService,
	logger *zap.Logger,
) *Server {
	s := &Server{
		interview:   interview,
		selfReports: selfReports,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrSessionNotFound, http.StatusNotFound, CodeSessionNotFound),
		sentinelHandler(domain.ErrSessionTerminated, http.StatusConflict, CodeSessionTerminated),
		sentinelHandler(domain.ErrSessionBusy, http.StatusConflict, CodeSessionBusy),
		sentinelHandler(domain.ErrEmptyReply, http.StatusBadRequest, CodeEmptyReply),
		sentinelHandler(domain.ErrReplyTooLong, http.StatusRequestEntityTooLarge, CodeReplyTooLong),
		sentinelHandler(domain.ErrProviderError, http.StatusBadGateway, CodeProviderError),
		sentinelHandler(domain.ErrNotImplemented, http.StatusNotImplemented, CodeNotImplemented),
	}
	return s
}

// Mount registers the API routes on the router.
func (s *Server) Mount(r gochi.Router) {
	r.Route("/api/v1", func(r gochi.Router) {
		r.Post("/sessions", s.StartSession)
		r.Get("/sessions", s.ListSessions)
		r.Get("/sessions/{sessionID}", s.GetSession)
		r.Post("/sessions/{sessionID}/messages", s.PostMessage)
		r.Post("/sessions/{sessionID}/stop", s.StopSession)
		r.Get("/sessions/{sessionID}/report", s.GetReport)
		r.Put("/sessions/{sessionID}/self-report", s.PutSelfReport)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// StartSession handles POST /api/v1/sessions.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	out, err := s.interview.Start(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+out.SessionID)
	writeJSON(w, http.StatusCreated, turnToDTO(out))
}

// PostMessage handles POST /api/v1/sessions/{sessionID}/messages.
func (s *Server) PostMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := gochi.URLParam(r, "sessionID")

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	out, err := s.interview.Respond(r.Context(), sessionID, req.Reply)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, turnToDTO(out))
}

// StopSession handles POST /api/v1/sessions/{sessionID}/stop.
func (s *Server) StopSession(w http.ResponseWriter, r *http.Request) {
	sessionID := gochi.URLParam(r, "sessionID")

	out, err := s.interview.Stop(r.Context(), sessionID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, turnToDTO(out))
}

// GetSession handles GET /api/v1/sessions/{sessionID}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := gochi.URLParam(r, "sessionID")

	sess, err := s.interview.Get(r.Context(), sessionID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionToDTO(sess))
}

// ListSessions handles GET /api/v1/sessions. It lists finished sessions only;
// live sessions are addressed by the id handed out at start.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.interview.ListLogs(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	writeJSON(w, http.StatusOK, SessionListResponse{Items: ids, Total: len(ids)})
}

// GetReport handles GET /api/v1/sessions/{sessionID}/report.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	sessionID := gochi.URLParam(r, "sessionID")

	snap, err := s.interview.GetLog(r.Context(), sessionID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reportToDTO(snap))
}

// PutSelfReport handles PUT /api/v1/sessions/{sessionID}/self-report.
func (s *Server) PutSelfReport(w http.ResponseWriter, r *http.Request) {
	sessionID := gochi.URLParam(r, "sessionID")

	var req SelfReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Score < domain.ScaleMin || req.Score > domain.ScaleMax {
		writeError(w, http.StatusBadRequest, CodeValidationFailed,
			"score must be between 1.0 and 5.0")
		return
	}

	if err := s.selfReports.SetSelfReport(r.Context(), sessionID, req.Score); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthToDTO(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrSessionNotFound,
		domain.ErrSessionTerminated,
		domain.ErrSessionBusy,
		domain.ErrEmptyReply,
		domain.ErrReplyTooLong,
		domain.ErrProviderError,
		domain.ErrNotImplemented,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
