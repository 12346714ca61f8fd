package chi

import (
	"time"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/session"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/repository/sessionlog"
	healthuc "github.com/Recognifygeneral/Psychometricist-AI/internal/usecase/health"
	interviewuc "github.com/Recognifygeneral/Psychometricist-AI/internal/usecase/interview"
)

// ErrorCode enumerates machine-readable API error codes.
type ErrorCode string

const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeValidationFailed  ErrorCode = "validation_failed"
	CodeSessionNotFound   ErrorCode = "session_not_found"
	CodeSessionTerminated ErrorCode = "session_terminated"
	CodeSessionBusy       ErrorCode = "session_busy"
	CodeEmptyReply        ErrorCode = "empty_reply"
	CodeReplyTooLong      ErrorCode = "reply_too_long"
	CodeProviderError     ErrorCode = "provider_error"
	CodeNotImplemented    ErrorCode = "not_implemented"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// MessageRequest carries one human reply.
type MessageRequest struct {
	Reply string `json:"reply"`
}

// SelfReportRequest carries a questionnaire score in [1.0, 5.0].
type SelfReportRequest struct {
	Score float64 `json:"score"`
}

// TurnResponse is the outcome of one session transition: either the
// next question, or the final assessment when the session is done.
type TurnResponse struct {
	SessionID string            `json:"session_id"`
	Question  string            `json:"question,omitempty"`
	Turn      int               `json:"turn"`
	MaxTurns  int               `json:"max_turns"`
	Done      bool              `json:"done"`
	Result    *verdict.Ensemble `json:"result,omitempty"`
	Warning   string            `json:"warning,omitempty"`
}

func turnToDTO(out interviewuc.Outcome) TurnResponse {
	return TurnResponse{
		SessionID: out.SessionID,
		Question:  out.Question,
		Turn:      out.Turn,
		MaxTurns:  out.MaxTurns,
		Done:      out.Done,
		Result:    out.Result,
		Warning:   out.Warning,
	}
}

// SessionResponse is the live status of a session.
type SessionResponse struct {
	SessionID   string            `json:"session_id"`
	State       string            `json:"state"`
	Turn        int               `json:"turn"`
	MaxTurns    int               `json:"max_turns"`
	Question    string            `json:"question,omitempty"`
	Done        bool              `json:"done"`
	Result      *verdict.Ensemble `json:"result,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

func sessionToDTO(s *session.Session) SessionResponse {
	resp := SessionResponse{
		SessionID: s.ID,
		State:     string(s.State),
		Turn:      s.TurnCount,
		MaxTurns:  s.MaxTurns,
		Done:      s.Done,
		Result:    s.Result,
		StartedAt: s.StartedAt,
	}
	if !s.Done {
		resp.Question = s.LastQuestion()
	}
	if !s.CompletedAt.IsZero() {
		t := s.CompletedAt
		resp.CompletedAt = &t
	}
	return resp
}

// TurnRecordResponse is one recorded exchange in a finished interview.
type TurnRecordResponse struct {
	TurnNumber int       `json:"turn_number"`
	Timestamp  time.Time `json:"timestamp"`
	ProbeID    string    `json:"probe_id,omitempty"`
	Question   string    `json:"question"`
	Reply      string    `json:"reply"`
}

// ReportResponse is the durable record of a finished interview.
type ReportResponse struct {
	SessionID         string               `json:"session_id"`
	StartedAt         time.Time            `json:"started_at"`
	CompletedAt       time.Time            `json:"completed_at"`
	TotalTurns        int                  `json:"total_turns"`
	Turns             []TurnRecordResponse `json:"turns"`
	AggregateFeatures map[string]float64   `json:"aggregate_features,omitempty"`
	Scoring           *verdict.Ensemble    `json:"scoring,omitempty"`
	SelfReportScore   *float64             `json:"self_report_score,omitempty"`
}

func reportToDTO(snap *sessionlog.Snapshot) ReportResponse {
	turns := make([]TurnRecordResponse, len(snap.Turns))
	for i, t := range snap.Turns {
		turns[i] = TurnRecordResponse{
			TurnNumber: t.TurnNumber,
			Timestamp:  t.Timestamp,
			ProbeID:    t.ProbeID,
			Question:   t.Question,
			Reply:      t.Reply,
		}
	}
	return ReportResponse{
		SessionID:         snap.SessionID,
		StartedAt:         snap.StartedAt,
		CompletedAt:       snap.CompletedAt,
		TotalTurns:        snap.TotalTurns,
		Turns:             turns,
		AggregateFeatures: snap.AggregateFeatures,
		Scoring:           snap.Scoring,
		SelfReportScore:   snap.SelfReportScore,
	}
}

// SessionListResponse lists finished session ids.
type SessionListResponse struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

// HealthResponse reports aggregated component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func healthToDTO(r healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(r.Status), Checks: checks}
}
