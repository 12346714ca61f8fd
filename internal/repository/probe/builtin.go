// Package probe stores the conversational probe pool.
package probe

import (
	"context"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
)

// BuiltinRepo serves probes from a fixed in-memory pool.
type BuiltinRepo struct {
	probes []domain.Probe
}

// NewBuiltin creates an in-memory pool. With no probes given it serves DefaultProbes.
func NewBuiltin(probes ...domain.Probe) *BuiltinRepo {
	if len(probes) == 0 {
		probes = DefaultProbes
	}
	return &BuiltinRepo{probes: probes}
}

// All returns the full probe pool in stable order.
func (r *BuiltinRepo) All(_ context.Context) ([]domain.Probe, error) {
	out := make([]domain.Probe, len(r.probes))
	copy(out, r.probes)
	return out, nil
}
