// Package sqlite stores match documents in a single-file SQLite database
// through the pure Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/osse101/AquaponicsSim_Go/internal/database"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// MatchRepository implements repository.Match on SQLite
type MatchRepository struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies migrations
func Open(ctx context.Context, path string) (*MatchRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateDir, err)
		}
	}
	db, err := sql.Open(driverName, path+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY between them
	db.SetMaxOpenConns(1)

	if err := database.Migrate(ctx, db, goose.DialectSQLite3); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &MatchRepository{db: db}, nil
}

// Close closes the database
func (r *MatchRepository) Close() error {
	return r.db.Close()
}

// Ping checks the database is reachable
func (r *MatchRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Load reads a match document
func (r *MatchRepository) Load(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var (
		m                domain.Match
		rawID, state     string
		created, updated string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT match_id, label, state, created_at, updated_at FROM matches WHERE match_id = ?`,
		id.String(),
	).Scan(&rawID, &m.Label, &state, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMatch, err)
	}

	if m.ID, err = uuid.Parse(rawID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMatch, err)
	}
	if m.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMatch, err)
	}
	if m.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMatch, err)
	}
	if err := json.Unmarshal([]byte(state), &m.State); err != nil {
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

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO matches (match_id, label, state, game_time, money, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (match_id) DO UPDATE
		SET label = excluded.label,
		    state = excluded.state,
		    game_time = excluded.game_time,
		    money = excluded.money,
		    updated_at = excluded.updated_at`,
		m.ID.String(), m.Label, string(state), gameTime, money,
		m.CreatedAt.UTC().Format(timeLayout), m.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveMatch, err)
	}
	return nil
}

// Delete removes a match
func (r *MatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE match_id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMatch, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMatch, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMatchNotFound, id)
	}
	return nil
}

// List returns the most recently updated matches first
func (r *MatchRepository) List(ctx context.Context, limit int) ([]domain.MatchSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT match_id, label, game_time, money, updated_at FROM matches ORDER BY updated_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.MatchSummary{}
	for rows.Next() {
		var (
			s              domain.MatchSummary
			rawID, updated string
		)
		if err := rows.Scan(&rawID, &s.Label, &s.GameTime, &s.Money, &updated); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
		}
		if s.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
		}
		if s.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
