// Package session defines the interview session aggregate and its
// state machine vocabulary. A Session is exclusively owned by the
// request handling it; all mutation happens through the interview
// service transitions.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/features"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
)

// State is the session state machine position.
type State string

const (
	// StateAwaitingQuestion: the next interviewer question must be produced.
	StateAwaitingQuestion State = "awaiting_question"
	// StateAwaitingHumanInput: suspended, waiting for the human reply.
	// This is the sole suspension point of the machine.
	StateAwaitingHumanInput State = "awaiting_human_input"
	// StateProcessing: a human reply is being recorded.
	StateProcessing State = "processing"
	// StateFinalizing: scoring and persistence are in progress.
	StateFinalizing State = "finalizing"
	// StateTerminated: the session is complete and immutable.
	StateTerminated State = "terminated"
)

// TurnRecord captures one completed exchange. Immutable once appended.
type TurnRecord struct {
	TurnNumber int             `json:"turn_number"` // 1-based
	Timestamp  time.Time       `json:"timestamp"`
	ProbeID    string          `json:"probe_id,omitempty"`
	Question   string          `json:"question"`
	Reply      string          `json:"reply"`
	Features   features.Vector `json:"features"`
}

// Session is one interview instance. Serialized as the durable
// checkpoint at every suspension point, so the process may restart
// between turns without losing position.
type Session struct {
	ID           string               `json:"session_id"`
	State        State                `json:"state"`
	MaxTurns     int                  `json:"max_turns"` // fixed at creation
	TurnCount    int                  `json:"turn_count"`
	UsedProbeIDs []string             `json:"used_probe_ids"`
	Transcript   string               `json:"transcript"` // human turns only
	Turns        []TurnRecord         `json:"turns"`
	Messages     []domain.ChatMessage `json:"messages"` // question/reply history
	Done         bool                 `json:"done"`
	Result       *verdict.Ensemble    `json:"result,omitempty"`
	StartedAt    time.Time            `json:"started_at"`
	CompletedAt  time.Time            `json:"completed_at,omitzero"`
}

// New creates a fresh session in AwaitingQuestion with zero turns.
func New(id string, maxTurns int) *Session {
	return &Session{
		ID:        id,
		State:     StateAwaitingQuestion,
		MaxTurns:  maxTurns,
		StartedAt: time.Now().UTC(),
	}
}

// Terminated reports whether the session reached its terminal state.
func (s *Session) Terminated() bool { return s.State == StateTerminated }

// RecentMessages returns the last n messages of the exchange history,
// the bounded context window handed to the question generator.
func (s *Session) RecentMessages(n int) []domain.ChatMessage {
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

// LastQuestion returns the most recent interviewer question, or "".
func (s *Session) LastQuestion() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == "assistant" {
			return s.Messages[i].Content
		}
	}
	return ""
}

// AppendReply records a human reply: transcript accumulation with an
// explicit turn marker, a TurnRecord with per-turn features, and the
// turn counter increment.
func (s *Session) AppendReply(reply string) TurnRecord {
	turn := s.TurnCount + 1

	var b strings.Builder
	b.WriteString(s.Transcript)
	fmt.Fprintf(&b, "\n[Turn %d] %s", turn, reply)
	s.Transcript = b.String()

	record := TurnRecord{
		TurnNumber: turn,
		Timestamp:  time.Now().UTC(),
		ProbeID:    s.lastProbeID(),
		Question:   s.LastQuestion(),
		Reply:      reply,
		Features:   features.Extract(reply),
	}
	s.Turns = append(s.Turns, record)
	s.Messages = append(s.Messages, domain.ChatMessage{Role: "user", Content: reply})
	s.TurnCount = turn

	return record
}

// TurnFeatures returns the per-turn feature vectors in turn order.
func (s *Session) TurnFeatures() []features.Vector {
	out := make([]features.Vector, len(s.Turns))
	for i, t := range s.Turns {
		out[i] = t.Features
	}
	return out
}

func (s *Session) lastProbeID() string {
	if len(s.UsedProbeIDs) == 0 {
		return ""
	}
	return s.UsedProbeIDs[len(s.UsedProbeIDs)-1]
}
