// Package sessionlog persists finalized interview records for later
// retrieval and offline analysis.
package sessionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/db"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/features"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/session"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/verdict"
)

var logKeyPrefix = domain.KeyPrefix + "log:"

// Snapshot is the durable record of one finished interview.
type Snapshot struct {
	SessionID       string               `json:"session_id"`
	StartedAt       time.Time            `json:"started_at"`
	CompletedAt     time.Time            `json:"completed_at"`
	TotalTurns      int                  `json:"total_turns"`
	Turns           []session.TurnRecord `json:"turns"`
	// AggregateFeatures is the mean scoring vector across turns,
	// kept for offline analysis alongside the per-turn vectors.
	AggregateFeatures map[string]float64 `json:"aggregate_features,omitempty"`
	Scoring           *verdict.Ensemble  `json:"scoring,omitempty"`
	SelfReportScore   *float64           `json:"self_report_score,omitempty"`
}

// FromSession builds the snapshot for a finalized session.
func FromSession(s *session.Session) *Snapshot {
	return &Snapshot{
		SessionID:         s.ID,
		StartedAt:         s.StartedAt,
		CompletedAt:       s.CompletedAt,
		TotalTurns:        s.TurnCount,
		Turns:             s.Turns,
		AggregateFeatures: features.AggregateTurns(s.TurnFeatures()),
		Scoring:           s.Result,
	}
}

// kvStore is the consumer interface for session logs (ISP).
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo stores one JSON record per finished session.
type Repo struct {
	store kvStore
}

// New creates a session log repository.
func New(store kvStore) *Repo {
	return &Repo{store: store}
}

// Save writes the record, overwriting any previous one for the same
// session. Finalize retries therefore converge on one record.
func (r *Repo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal session log %s: %w", snap.SessionID, err)
	}
	if err := r.store.Set(ctx, logKeyPrefix+snap.SessionID, data); err != nil {
		return fmt.Errorf("save session log %s: %w", snap.SessionID, err)
	}
	return nil
}

// Get retrieves one record. Returns domain.ErrSessionNotFound for unknown ids.
func (r *Repo) Get(ctx context.Context, sessionID string) (*Snapshot, error) {
	data, err := r.store.Get(ctx, logKeyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session log %s: %w", sessionID, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal session log %s: %w", sessionID, err)
	}
	return &snap, nil
}

// List returns the ids of all stored records.
func (r *Repo) List(ctx context.Context) ([]string, error) {
	keys, err := r.store.Scan(ctx, logKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("list session logs: %w", err)
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, logKeyPrefix))
	}
	return ids, nil
}

// SetSelfReport attaches a questionnaire score to an existing record.
func (r *Repo) SetSelfReport(ctx context.Context, sessionID string, score float64) error {
	snap, err := r.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	snap.SelfReportScore = &score
	return r.Save(ctx, snap)
}
