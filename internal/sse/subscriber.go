package sse

import (
	"context"

	"github.com/osse101/AquaponicsSim_Go/internal/eventbus"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus eventbus.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus eventbus.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(eventbus.MatchMoveApplied, s.handleMoveApplied)
	s.bus.Subscribe(eventbus.MatchEventTriggered, s.handleEventTriggered)
	s.bus.Subscribe(eventbus.SimulationCompleted, s.handleSimulationCompleted)

	logger.Info(LogMsgSubscribed, "types", []string{
		EventTypeMoveApplied,
		EventTypeEventTriggered,
		EventTypeSimulationCompleted,
	})
}

func (s *Subscriber) handleMoveApplied(ctx context.Context, evt eventbus.Event) error {
	p, err := eventbus.DecodePayload[eventbus.MoveAppliedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeMoveApplied, p.MatchID, p)
	return nil
}

func (s *Subscriber) handleEventTriggered(ctx context.Context, evt eventbus.Event) error {
	p, err := eventbus.DecodePayload[eventbus.EventTriggeredPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeEventTriggered, p.MatchID, p)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", EventTypeEventTriggered, "event_id", p.EventID)
	return nil
}

func (s *Subscriber) handleSimulationCompleted(ctx context.Context, evt eventbus.Event) error {
	p, err := eventbus.DecodePayload[eventbus.SimulationCompletedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeSimulationCompleted, "", p)
	return nil
}
