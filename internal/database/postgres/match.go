package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// MatchRepository implements repository.Match on a JSONB column
type MatchRepository struct {
	db *pgxpool.Pool
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{db: db}
}

// Load reads a match document
func (r *MatchRepository) Load(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	query := `
		SELECT match_id, label, state, created_at, updated_at
		FROM matches
		WHERE match_id = $1
	`
	var (
		m     domain.Match
		state []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Label, &state, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMatch, err)
	}
	if err := json.Unmarshal(state, &m.State); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeState, err)
	}
	return &m, nil
}

// Save inserts or replaces a match document
func (r *MatchRepository) Save(ctx context.Context, m *domain.Match) error {
	state, err := json.Marshal(m.State)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}

	var gameTime int
	var money float64
	if m.State != nil {
		gameTime, money = m.State.GameTime, m.State.Money
	}

	query := `
		INSERT INTO matches (match_id, label, state, game_time, money, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (match_id) DO UPDATE
		SET label = EXCLUDED.label,
		    state = EXCLUDED.state,
		    game_time = EXCLUDED.game_time,
		    money = EXCLUDED.money,
		    updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.Exec(ctx, query, m.ID, m.Label, state, gameTime, money, m.CreatedAt, m.UpdatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveMatch, err)
	}
	return nil
}

// Delete removes a match
func (r *MatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM matches WHERE match_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMatch, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMatchNotFound, id)
	}
	return nil
}

// List returns the most recently updated matches first
func (r *MatchRepository) List(ctx context.Context, limit int) ([]domain.MatchSummary, error) {
	query := `
		SELECT match_id, label, game_time, money, updated_at
		FROM matches
		ORDER BY updated_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
	}
	defer rows.Close()

	out := []domain.MatchSummary{}
	for rows.Next() {
		var s domain.MatchSummary
		if err := rows.Scan(&s.ID, &s.Label, &s.GameTime, &s.Money, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
