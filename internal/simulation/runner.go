// Package simulation plays many bot games and aggregates how each strategy
// fared. Games are independent and seeded, so a batch is reproducible.
package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/bot"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/eventbus"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
	"github.com/osse101/AquaponicsSim_Go/internal/worker"
)

// FinalState is the farm when a game ended
type FinalState struct {
	Money          float64        `json:"money"`
	Debt           float64        `json:"debt"`
	GameTime       int            `json:"game_time"`
	FishLots       int            `json:"fish_lots"`
	FishCount      int            `json:"fish_count"`
	PlantCount     int            `json:"plant_count"`
	Equipment      map[string]int `json:"equipment"`
	BillsAccrued   domain.Bills   `json:"bills_accrued"`
	ActiveEvent    string         `json:"active_event,omitempty"`
	TankWaterLevel float64        `json:"tank_water_level"`
	TankFillPct    float64        `json:"tank_fill_pct"`
}

// GameResult is one finished game
type GameResult struct {
	GameID          int         `json:"game_id"`
	Seed            int64       `json:"seed"`
	Strategy        string      `json:"strategy"`
	Outcome         string      `json:"outcome"`
	OutcomeReason   string      `json:"outcome_reason"`
	Duration        int         `json:"duration"`
	Turns           int         `json:"turns"`
	ExecutionTimeMs int64       `json:"execution_time_ms"`
	FinalState      FinalState  `json:"final_state"`
	Analytics       Summary     `json:"analytics"`
	BotStats        bot.Stats   `json:"bot_stats"`
	BotProfile      bot.Profile `json:"bot_profile"`
	Error           string      `json:"error,omitempty"`
}

// Batch is a finished run in its export shape
type Batch struct {
	Config         Config         `json:"config"`
	Timestamp      time.Time      `json:"timestamp"`
	TotalGames     int            `json:"total_games"`
	AggregateStats AggregateStats `json:"aggregate_stats"`
	Results        []GameResult   `json:"results"`
}

// Runner plays games against one engine
type Runner struct {
	engine *game.Engine
	cfg    Config
	bus    eventbus.Bus
}

// Option configures a Runner
type Option func(*Runner)

// WithBus publishes a completion event after every batch
func WithBus(bus eventbus.Bus) Option {
	return func(r *Runner) { r.bus = bus }
}

// NewRunner validates cfg and returns a runner
func NewRunner(engine *game.Engine, cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{engine: engine, cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Config returns the runner's configuration
func (r *Runner) Config() Config {
	return r.cfg
}

// RunGame plays one game to an end condition. Failures are reported in
// the result with outcome "error" rather than returned.
func (r *Runner) RunGame(ctx context.Context, gameID int, strategy bot.Strategy, seed int64) GameResult {
	start := time.Now()
	ctx = logger.WithGameID(ctx, gameID)
	log := logger.FromContext(ctx)

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // simulation rng, reproducibility over secrecy
	g := r.engine.NewGame(seed)
	result := GameResult{GameID: gameID, Seed: seed, Strategy: string(strategy)}

	b, err := bot.New(strategy, r.engine, rng)
	if err != nil {
		return r.fail(ctx, result, g, nil, nil, err, start)
	}
	analytics := NewGameAnalytics(g)

	for {
		if err := ctx.Err(); err != nil {
			return r.fail(ctx, result, g, b, analytics, err, start)
		}
		if err := r.playDay(ctx, g, b, analytics); err != nil {
			return r.fail(ctx, result, g, b, analytics, err, start)
		}
		if g.GameTime%r.cfg.SnapshotInterval == 0 {
			analytics.Snapshot(g)
		}
		if outcome, reason, done := r.checkEnd(g); done {
			result.Outcome = outcome
			result.OutcomeReason = reason
			break
		}
	}

	r.finish(&result, g, b, analytics, start)
	log.Debug(LogMsgGameFinished, "strategy", strategy, "outcome", result.Outcome, "days", result.Duration)
	return result
}

// playDay lets the bot act until it chooses to end the day or runs out of
// actions, then advances the clock.
func (r *Runner) playDay(ctx context.Context, g *domain.GameState, b *bot.Bot, a *GameAnalytics) error {
	for i := 0; i < r.cfg.MaxActionsPerDay; i++ {
		m := b.Decide(g)
		if m.Name == domain.MoveProgressTurn {
			break
		}
		if err := execute(ctx, g, b, a, m); err != nil {
			return err
		}
	}
	return execute(ctx, g, b, a, domain.Move{Name: domain.MoveProgressTurn})
}

// A rejection still yields a result; only a missing result is fatal.
func execute(ctx context.Context, g *domain.GameState, b *bot.Bot, a *GameAnalytics, m domain.Move) error {
	res, err := b.Execute(ctx, g, m)
	if err != nil && res == nil {
		return fmt.Errorf(ErrMsgMoveFailedFmt, m.Name, err)
	}
	a.Record(g, res)
	return nil
}

// checkEnd tests the end conditions in priority order. Bankruptcy looks at
// the net position so unpaid bills count against the farm.
func (r *Runner) checkEnd(g *domain.GameState) (string, string, bool) {
	switch {
	case g.NetWorth() < r.cfg.BankruptcyThreshold:
		return OutcomeBankruptcy, fmt.Sprintf(ReasonBankruptcyFmt, r.cfg.BankruptcyThreshold), true
	case g.Money >= r.cfg.SuccessThreshold:
		return OutcomeSuccess, fmt.Sprintf(ReasonSuccessFmt, r.cfg.SuccessThreshold), true
	case allFishDead(g.Fish):
		return OutcomeFishDeath, ReasonFishDeath, true
	case g.GameTime >= r.cfg.MaxTurns:
		return OutcomeTimeLimit, fmt.Sprintf(ReasonTimeLimitFmt, r.cfg.MaxTurns), true
	}
	return "", "", false
}

// allFishDead needs every flock at zero health. fish.Feed never takes a flock
// below fish.MinHealth, so only a stored or hand-built state can end this way.
func allFishDead(flocks []*domain.Fish) bool {
	if len(flocks) == 0 {
		return false
	}
	for _, f := range flocks {
		if f.Health > 0 {
			return false
		}
	}
	return true
}

func (r *Runner) fail(ctx context.Context, result GameResult, g *domain.GameState, b *bot.Bot, a *GameAnalytics, err error, start time.Time) GameResult {
	logger.FromContext(ctx).Warn(LogMsgGameFailed, "strategy", result.Strategy, "error", err)
	result.Outcome = OutcomeError
	result.OutcomeReason = err.Error()
	result.Error = err.Error()
	r.finish(&result, g, b, a, start)
	return result
}

func (r *Runner) finish(result *GameResult, g *domain.GameState, b *bot.Bot, a *GameAnalytics, start time.Time) {
	result.Duration = g.GameTime
	result.Turns = g.MoveCount
	result.FinalState = finalState(g)
	if a != nil {
		result.Analytics = a.Summary(g)
	}
	if b != nil {
		result.BotStats = b.Stats()
		result.BotProfile = b.Profile()
	}
	result.ExecutionTimeMs = time.Since(start).Milliseconds()
}

func finalState(g *domain.GameState) FinalState {
	fs := FinalState{
		Money:        round2(g.Money),
		Debt:         round2(g.Debt),
		GameTime:     g.GameTime,
		FishLots:     len(g.Fish),
		FishCount:    g.FishCount(),
		PlantCount:   len(g.Plants),
		Equipment:    make(map[string]int, len(g.Equipment)),
		BillsAccrued: g.BillsAccrued,
	}
	for id, n := range g.Equipment {
		fs.Equipment[id] = n
	}
	if g.ActiveEvent != nil {
		fs.ActiveEvent = g.ActiveEvent.Name
	}
	if g.System != nil {
		fs.TankWaterLevel = g.System.Tank.CurrentWaterLevel
		fs.TankFillPct = round2(aquaponics.WaterLevelPercent(g.System.Tank))
	}
	return fs
}

// RunBatch plays n games. Game i uses seed cfg.Seed+i and strategy
// cfg.Strategies[i mod len]. Games run on a worker pool, BatchSize at a
// time, and results are stored by game index.
func (r *Runner) RunBatch(ctx context.Context, n int) (*Batch, error) {
	log := logger.FromContext(ctx)
	started := time.Now()
	strategies := r.cfg.StrategyList()
	results := make([]GameResult, max(0, n))

	log.Info(LogMsgBatchStarted, "games", n, "workers", r.cfg.Workers, "seed", r.cfg.Seed)

	for from := 0; from < n; from += r.cfg.BatchSize {
		to := min(n, from+r.cfg.BatchSize)

		pool := worker.NewPool(r.cfg.Workers, to-from)
		pool.Start(ctx)
		for i := from; i < to; i++ {
			pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
				results[i] = r.RunGame(ctx, i, strategies[i%len(strategies)], r.cfg.Seed+int64(i))
				return nil
			}))
		}
		pool.Stop()

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Info(LogMsgBatchProgress, "completed", to, "total", n)
	}

	batch := &Batch{
		Config:         r.cfg,
		Timestamp:      time.Now().UTC(),
		TotalGames:     len(results),
		AggregateStats: Aggregate(results),
		Results:        results,
	}
	elapsed := time.Since(started)
	log.Info(LogMsgBatchCompleted, "games", n, "duration_ms", elapsed.Milliseconds())

	r.publish(ctx, results, elapsed)
	return batch, nil
}

func (r *Runner) publish(ctx context.Context, results []GameResult, elapsed time.Duration) {
	if r.bus == nil {
		return
	}
	games := make([]eventbus.GameOutcomeV1, 0, len(results))
	for _, res := range results {
		games = append(games, eventbus.GameOutcomeV1{Strategy: res.Strategy, Outcome: res.Outcome, Days: res.Duration})
	}
	evt := eventbus.NewSimulationCompletedEvent(eventbus.SimulationCompletedPayloadV1{
		TotalGames: len(results),
		Games:      games,
		DurationMs: elapsed.Milliseconds(),
	})
	if err := r.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}
