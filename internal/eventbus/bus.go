// Package eventbus is the in-process publish/subscribe channel that
// carries match and simulation notifications to metrics and the live feed.
package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type names a message kind
type Type string

// Message types published by the services
const (
	MatchMoveApplied    Type = "match.move_applied"
	MatchEventTriggered Type = "match.event_triggered"
	SimulationCompleted Type = "simulation.completed"
)

// Event is one published message
type Event struct {
	Version   string `json:"version"`
	Type      Type   `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// MoveAppliedPayloadV1 is published after every move on a stored match
type MoveAppliedPayloadV1 struct {
	MatchID string  `json:"match_id"`
	Move    string  `json:"move"`
	Success bool    `json:"success"`
	Reason  string  `json:"reason,omitempty"`
	Day     int     `json:"day"`
	Money   float64 `json:"money"`
}

// EventTriggeredPayloadV1 is published when a random event starts on a match
type EventTriggeredPayloadV1 struct {
	MatchID  string `json:"match_id"`
	EventID  string `json:"event_id"`
	Severity string `json:"severity"`
	Day      int    `json:"day"`
}

// GameOutcomeV1 is one finished game inside a simulation report
type GameOutcomeV1 struct {
	Strategy string `json:"strategy"`
	Outcome  string `json:"outcome"`
	Days     int    `json:"days"`
}

// SimulationCompletedPayloadV1 is published after a batch simulation finishes
type SimulationCompletedPayloadV1 struct {
	TotalGames int             `json:"total_games"`
	Games      []GameOutcomeV1 `json:"games"`
	DurationMs int64           `json:"duration_ms"`
}

// NewMoveAppliedEvent wraps a move notification
func NewMoveAppliedEvent(p MoveAppliedPayloadV1) Event {
	return newEvent(MatchMoveApplied, p)
}

// NewEventTriggeredEvent wraps a random event notification
func NewEventTriggeredEvent(p EventTriggeredPayloadV1) Event {
	return newEvent(MatchEventTriggered, p)
}

// NewSimulationCompletedEvent wraps a finished batch
func NewSimulationCompletedEvent(p SimulationCompletedPayloadV1) Event {
	return newEvent(SimulationCompleted, p)
}

func newEvent(t Type, payload any) Event {
	return Event{
		Version:   SchemaVersion,
		Type:      t,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}

// Handler reacts to a published message
type Handler func(ctx context.Context, evt Event) error

// Bus defines the publish/subscribe contract
type Bus interface {
	Publish(ctx context.Context, evt Event) error
	Subscribe(t Type, h Handler)
}

// MemoryBus delivers messages synchronously to in-process subscribers
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates an empty bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish calls every subscriber of the message type. All handlers run even
// when some fail; their errors are combined.
func (b *MemoryBus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := b.handlers[evt.Type]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorsFormat, len(errs), evt.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for a message type
func (b *MemoryBus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}
