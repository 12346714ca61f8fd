// Package checkpoint persists suspended interview sessions so any instance
// can resume them.
package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/db"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain/session"
)

var keyPrefix = domain.KeyPrefix + "session:"

// kvStore is the consumer interface for checkpoints (ISP).
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Repo stores one JSON checkpoint per session.
type Repo struct {
	store kvStore
	ttl   time.Duration // 0 = no expiry
}

// New creates a checkpoint repository. ttl bounds how long an abandoned
// session stays resumable; 0 keeps checkpoints forever.
func New(store kvStore, ttl time.Duration) *Repo {
	return &Repo{store: store, ttl: ttl}
}

// Save writes the session checkpoint, replacing any previous one.
func (r *Repo) Save(ctx context.Context, s *session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", s.ID, err)
	}

	if r.ttl > 0 {
		err = r.store.SetWithTTL(ctx, keyPrefix+s.ID, data, r.ttl)
	} else {
		err = r.store.Set(ctx, keyPrefix+s.ID, data)
	}
	if err != nil {
		return fmt.Errorf("save checkpoint %s: %w", s.ID, err)
	}
	return nil
}

// Load restores a session checkpoint.
// Returns domain.ErrSessionNotFound for unknown or expired sessions.
func (r *Repo) Load(ctx context.Context, id string) (*session.Session, error) {
	data, err := r.store.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load checkpoint %s: %w", id, err)
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal checkpoint %s: %w", id, err)
	}
	return &s, nil
}

// Delete removes a session checkpoint. Deleting a missing checkpoint is not
// an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("delete checkpoint %s: %w", id, err)
	}
	return nil
}
