package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/db"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
)

var poolKey = domain.KeyPrefix + "probes"

// kvStore is the consumer interface for the probe pool (ISP).
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
}

// RedisRepo serves probes from a shared key-value store, so operators can
// manage the pool without redeploying.
type RedisRepo struct {
	store  kvStore
	logger *zap.Logger
}

// NewRedis creates a store-backed probe pool.
func NewRedis(store kvStore, logger *zap.Logger) *RedisRepo {
	return &RedisRepo{store: store, logger: logger}
}

// Seed writes the given probes only if no pool exists yet. Safe to call on
// every startup.
func (r *RedisRepo) Seed(ctx context.Context, probes []domain.Probe) error {
	data, err := json.Marshal(probes)
	if err != nil {
		return fmt.Errorf("marshal probe pool: %w", err)
	}

	created, err := r.store.SetNX(ctx, poolKey, data)
	if err != nil {
		return fmt.Errorf("seed probe pool: %w", err)
	}
	if created {
		r.logger.Info("Seeded probe pool", zap.Int("count", len(probes)))
	}
	return nil
}

// All returns the full probe pool in stored order.
func (r *RedisRepo) All(ctx context.Context) ([]domain.Probe, error) {
	data, err := r.store.Get(ctx, poolKey)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get probe pool: %w", err)
	}

	var probes []domain.Probe
	if err := json.Unmarshal(data, &probes); err != nil {
		return nil, fmt.Errorf("unmarshal probe pool: %w", err)
	}
	return probes, nil
}
