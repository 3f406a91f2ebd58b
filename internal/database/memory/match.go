// Package memory keeps match documents in process memory. Documents are
// stored serialised so callers never share state with the store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// MatchRepository implements repository.Match in memory
type MatchRepository struct {
	mu      sync.RWMutex
	matches map[uuid.UUID][]byte
}

// NewMatchRepository creates an empty store
func NewMatchRepository() *MatchRepository {
	return &MatchRepository{matches: make(map[uuid.UUID][]byte)}
}

// Load returns a copy of the stored match
func (r *MatchRepository) Load(_ context.Context, id uuid.UUID) (*domain.Match, error) {
	r.mu.RLock()
	data, ok := r.matches[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, id)
	}
	var m domain.Match
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode match: %w", err)
	}
	return &m, nil
}

// Save stores a copy of m
func (r *MatchRepository) Save(_ context.Context, m *domain.Match) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode match: %w", err)
	}
	r.mu.Lock()
	r.matches[m.ID] = data
	r.mu.Unlock()
	return nil
}

// Delete removes a match
func (r *MatchRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrMatchNotFound, id)
	}
	delete(r.matches, id)
	return nil
}

// List returns the most recently updated matches first
func (r *MatchRepository) List(ctx context.Context, limit int) ([]domain.MatchSummary, error) {
	r.mu.RLock()
	ids := make([]uuid.UUID, 0, len(r.matches))
	for id := range r.matches {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	out := make([]domain.MatchSummary, 0, len(ids))
	for _, id := range ids {
		m, err := r.Load(ctx, id)
		if err != nil {
			// deleted between the snapshot and the load
			continue
		}
		s := domain.MatchSummary{ID: m.ID, Label: m.Label, UpdatedAt: m.UpdatedAt}
		if m.State != nil {
			s.GameTime, s.Money = m.State.GameTime, m.State.Money
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
