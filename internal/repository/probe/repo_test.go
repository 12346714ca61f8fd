package probe

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/db"
	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
)

func TestBuiltin_AllReturnsDefaults(t *testing.T) {
	repo := NewBuiltin()

	probes, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(probes) != len(DefaultProbes) {
		t.Fatalf("expected %d probes, got %d", len(DefaultProbes), len(probes))
	}

	seen := make(map[string]bool)
	for _, p := range probes {
		if p.ID == "" || p.Text == "" || p.TargetBehavior == "" {
			t.Errorf("probe %q has empty fields", p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate probe id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestBuiltin_AllReturnsCopy(t *testing.T) {
	repo := NewBuiltin(domain.Probe{ID: "a", Text: "t", TargetBehavior: "b"})

	probes, _ := repo.All(context.Background())
	probes[0].ID = "mutated"

	again, _ := repo.All(context.Background())
	if again[0].ID != "a" {
		t.Error("caller mutation leaked into the pool")
	}
}

// mockKV implements the probe pool consumer interface.
type mockKV struct {
	data map[string][]byte
}

func newMockKV() *mockKV { return &mockKV{data: make(map[string][]byte)} }

func (m *mockKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKV) SetNX(_ context.Context, key string, value []byte) (bool, error) {
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value
	return true, nil
}

func TestRedis_SeedThenAll(t *testing.T) {
	kv := newMockKV()
	repo := NewRedis(kv, zap.NewNop())
	ctx := context.Background()

	if err := repo.Seed(ctx, DefaultProbes); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	probes, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(probes) != len(DefaultProbes) {
		t.Fatalf("expected %d probes, got %d", len(DefaultProbes), len(probes))
	}
	if probes[0].ID != DefaultProbes[0].ID {
		t.Errorf("expected order preserved, got first id %q", probes[0].ID)
	}
}

func TestRedis_SeedIsIdempotent(t *testing.T) {
	kv := newMockKV()
	repo := NewRedis(kv, zap.NewNop())
	ctx := context.Background()

	if err := repo.Seed(ctx, DefaultProbes); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	// Second seed with a different set must not overwrite the pool.
	if err := repo.Seed(ctx, []domain.Probe{{ID: "other", Text: "x", TargetBehavior: "y"}}); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	probes, _ := repo.All(ctx)
	if len(probes) != len(DefaultProbes) {
		t.Errorf("expected original pool intact, got %d probes", len(probes))
	}
}

func TestRedis_AllEmptyPool(t *testing.T) {
	repo := NewRedis(newMockKV(), zap.NewNop())

	probes, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if probes != nil {
		t.Errorf("expected nil for missing pool, got %v", probes)
	}
}
