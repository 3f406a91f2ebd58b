package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// Match defines the interface for match persistence. A match document is
// saved and loaded as one unit; Load returns domain.ErrMatchNotFound when
// the id is unknown.
type Match interface {
	Load(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	Save(ctx context.Context, m *domain.Match) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit int) ([]domain.MatchSummary, error)
}
