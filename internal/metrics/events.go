package metrics

import (
	"context"
	"time"

	"github.com/osse101/AquaponicsSim_Go/internal/eventbus"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// EventMetricsCollector subscribes to the bus and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every message type the collector understands
func (e *EventMetricsCollector) Register(bus eventbus.Bus) {
	for _, t := range []eventbus.Type{
		eventbus.MatchMoveApplied,
		eventbus.MatchEventTriggered,
		eventbus.SimulationCompleted,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates the counters for one message. Undecodable payloads
// are counted as handler errors but never fail the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt eventbus.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case eventbus.MatchMoveApplied:
		var p eventbus.MoveAppliedPayloadV1
		if p, err = eventbus.DecodePayload[eventbus.MoveAppliedPayloadV1](evt.Payload); err == nil {
			result := ResultRejected
			if p.Success {
				result = ResultSuccess
			}
			MovesApplied.WithLabelValues(p.Move, result).Inc()
		}

	case eventbus.MatchEventTriggered:
		var p eventbus.EventTriggeredPayloadV1
		if p, err = eventbus.DecodePayload[eventbus.EventTriggeredPayloadV1](evt.Payload); err == nil {
			EventsTriggered.WithLabelValues(p.EventID, p.Severity).Inc()
		}

	case eventbus.SimulationCompleted:
		var p eventbus.SimulationCompletedPayloadV1
		if p, err = eventbus.DecodePayload[eventbus.SimulationCompletedPayloadV1](evt.Payload); err == nil {
			SimulationsCompleted.Inc()
			SimulationDuration.Observe((time.Duration(p.DurationMs) * time.Millisecond).Seconds())
			for _, g := range p.Games {
				SimulatedGames.WithLabelValues(g.Strategy, g.Outcome).Inc()
				SimulatedGameDays.WithLabelValues(g.Strategy).Observe(float64(g.Days))
			}
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Warn(LogMsgDecodePayloadFailed, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
