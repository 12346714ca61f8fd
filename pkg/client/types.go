package client

import "time"

// Turn is the outcome of one session transition: either the next
// question, or the final assessment when the session is done.
type Turn struct {
	SessionID string      `json:"session_id"`
	Question  string      `json:"question,omitempty"`
	Turn      int         `json:"turn"`
	MaxTurns  int         `json:"max_turns"`
	Done      bool        `json:"done"`
	Result    *Assessment `json:"result,omitempty"`
	Warning   string      `json:"warning,omitempty"`
}

// MethodResult is one scoring method's contribution to the ensemble.
type MethodResult struct {
	Method         string  `json:"method"`
	Score          float64 `json:"score"`
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Warning        string  `json:"warning,omitempty"`
	Error          string  `json:"error,omitempty"`
	Evidence       string  `json:"evidence,omitempty"`
}

// Assessment is the fused multi-method result.
type Assessment struct {
	Score          float64        `json:"ensemble_score"`
	Classification string         `json:"ensemble_classification"`
	MajorityVote   string         `json:"majority_vote_classification"`
	Confidence     float64        `json:"ensemble_confidence"`
	FusionMethod   string         `json:"fusion_method"`
	MethodsUsed    int            `json:"methods_used"`
	MethodsAgree   bool           `json:"methods_agree"`
	Votes          map[string]int `json:"classification_votes,omitempty"`
	Warning        string         `json:"warning,omitempty"`
	Rule           *MethodResult  `json:"rule,omitempty"`
	Similarity     *MethodResult  `json:"similarity,omitempty"`
	Judgment       *MethodResult  `json:"judgment,omitempty"`
}

// Session is the live status of a session.
type Session struct {
	SessionID   string      `json:"session_id"`
	State       string      `json:"state"`
	Turn        int         `json:"turn"`
	MaxTurns    int         `json:"max_turns"`
	Question    string      `json:"question,omitempty"`
	Done        bool        `json:"done"`
	Result      *Assessment `json:"result,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// TurnRecord is one recorded exchange in a finished interview.
type TurnRecord struct {
	TurnNumber int       `json:"turn_number"`
	Timestamp  time.Time `json:"timestamp"`
	ProbeID    string    `json:"probe_id,omitempty"`
	Question   string    `json:"question"`
	Reply      string    `json:"reply"`
}

// Report is the durable record of a finished interview.
type Report struct {
	SessionID         string             `json:"session_id"`
	StartedAt         time.Time          `json:"started_at"`
	CompletedAt       time.Time          `json:"completed_at"`
	TotalTurns        int                `json:"total_turns"`
	Turns             []TurnRecord       `json:"turns"`
	AggregateFeatures map[string]float64 `json:"aggregate_features,omitempty"`
	Scoring           *Assessment        `json:"scoring,omitempty"`
	SelfReportScore   *float64           `json:"self_report_score,omitempty"`
}

// SessionList holds finished session ids.
type SessionList struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

// Health reports aggregated component health.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
