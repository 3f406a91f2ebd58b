// Package match manages stored farms: it loads a match, applies one move
// to a private copy of its state and saves the result as a single unit.
package match

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/AquaponicsSim_Go/internal/concurrency"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/eventbus"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
	"github.com/osse101/AquaponicsSim_Go/internal/repository"
)

// CreateRequest describes a new match. A nil Seed picks one from the clock.
type CreateRequest struct {
	Label string
	Seed  *int64
}

// MoveResult is the outcome of one move and the state it left behind
type MoveResult struct {
	MatchID uuid.UUID            `json:"match_id"`
	Result  *domain.ActionResult `json:"result"`
	State   *domain.GameState    `json:"state"`
}

// Service defines the interface for match operations
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Match, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	List(ctx context.Context, limit int) ([]domain.MatchSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ApplyMove(ctx context.Context, id uuid.UUID, move string, args []any) (*MoveResult, error)
}

// Option configures the service
type Option func(*service)

// WithBus publishes move and event notifications
func WithBus(bus eventbus.Bus) Option {
	return func(s *service) { s.bus = bus }
}

// WithCache sets the read cache size and entry lifetime
func WithCache(size int, ttl time.Duration) Option {
	return func(s *service) { s.cache = newMatchCache(size, ttl) }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	repo   repository.Match
	engine *game.Engine
	bus    eventbus.Bus
	locks  *concurrency.LockManager
	cache  *matchCache
	now    func() time.Time
}

// NewService creates a new match service
func NewService(repo repository.Match, engine *game.Engine, opts ...Option) Service {
	s := &service{
		repo:   repo,
		engine: engine,
		locks:  concurrency.NewLockManager(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = newMatchCache(DefaultCacheSize, DefaultCacheTTL)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Match, error) {
	if len(req.Label) > MaxLabelLength {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgLabelTooLong)
	}

	now := s.now().UTC()
	seed := now.UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	m := &domain.Match{
		ID:        uuid.New(),
		Label:     req.Label,
		State:     s.engine.NewGame(seed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSaveMatch, err)
	}
	s.cache.set(m)

	logger.FromContext(ctx).Info(LogMsgMatchCreated, "match_id", m.ID, "seed", seed)
	return m, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	return s.load(ctx, id)
}

func (s *service) List(ctx context.Context, limit int) ([]domain.MatchSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, min(limit, MaxListLimit))
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := s.locks.Lock(id.String())
	defer unlock()

	s.cache.remove(id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgMatchDeleted, "match_id", id)
	return nil
}

// ApplyMove runs one move under the match lock. Rejected moves are still
// saved because they count towards the move total and set LastAction; the
// rejection is returned alongside the result. An unknown move name leaves
// the stored match untouched.
func (s *service) ApplyMove(ctx context.Context, id uuid.UUID, move string, args []any) (*MoveResult, error) {
	unlock := s.locks.Lock(id.String())
	defer unlock()

	ctx = logger.WithMatchID(ctx, id.String())
	log := logger.FromContext(ctx)

	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.State == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDatabaseError, ErrMsgMatchNoState)
	}

	// work on a copy so a failed save never leaks into the cache
	state, err := m.State.Clone()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCloneState, err)
	}

	res, moveErr := s.engine.Apply(ctx, state, moveRNG(state), move, args)
	if res == nil {
		return nil, moveErr
	}
	if moveErr != nil && !domain.IsRejection(moveErr) {
		return nil, fmt.Errorf(ErrMsgApplyMoveFmt, move, moveErr)
	}

	m.State = state
	m.UpdatedAt = s.now().UTC()
	if err := s.repo.Save(ctx, m); err != nil {
		s.cache.remove(id)
		return nil, fmt.Errorf("%s: %w", ErrMsgSaveMatch, err)
	}
	s.cache.set(m)

	if moveErr != nil {
		log.Info(LogMsgMoveRejected, "move", move, "reason", res.Reason)
	} else {
		log.Info(LogMsgMoveApplied, "move", move, "day", state.GameTime, "money", state.Money)
	}
	s.publish(ctx, id, move, res, state)

	return &MoveResult{MatchID: id, Result: res, State: state}, moveErr
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	if m, ok := s.cache.get(id); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "match_id", id)
		return m, nil
	}
	m, err := s.repo.Load(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadMatch, err)
	}
	s.cache.set(m)
	return m, nil
}

func (s *service) publish(ctx context.Context, id uuid.UUID, move string, res *domain.ActionResult, state *domain.GameState) {
	if s.bus == nil {
		return
	}
	log := logger.FromContext(ctx)

	evt := eventbus.NewMoveAppliedEvent(eventbus.MoveAppliedPayloadV1{
		MatchID: id.String(),
		Move:    move,
		Success: res.Success,
		Reason:  res.Reason,
		Day:     state.GameTime,
		Money:   state.Money,
	})
	if err := s.bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}

	if res.EventTriggered == "" || state.ActiveEvent == nil {
		return
	}
	evt = eventbus.NewEventTriggeredEvent(eventbus.EventTriggeredPayloadV1{
		MatchID:  id.String(),
		EventID:  state.ActiveEvent.ID,
		Severity: state.ActiveEvent.Severity,
		Day:      state.GameTime,
	})
	if err := s.bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// moveRNG derives the random stream for the next move from the match seed
// and move count, so replaying the same moves reproduces the same farm
func moveRNG(g *domain.GameState) *rand.Rand {
	return rand.New(rand.NewSource(g.Seed + int64(g.MoveCount)*rngStride)) //nolint:gosec // game randomness, not security
}
