package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []MoveAppliedPayloadV1

	bus.Subscribe(MatchMoveApplied, func(_ context.Context, evt Event) error {
		p, err := DecodePayload[MoveAppliedPayloadV1](evt.Payload)
		require.NoError(t, err)
		got = append(got, p)
		return nil
	})

	err := bus.Publish(context.Background(), NewMoveAppliedEvent(MoveAppliedPayloadV1{MatchID: "m1", Move: "buyFish", Success: true}))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "buyFish", got[0].Move)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewSimulationCompletedEvent(SimulationCompletedPayloadV1{})))
}

func TestMemoryBus_AllHandlersRunDespiteErrors(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(MatchEventTriggered, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(MatchEventTriggered, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewEventTriggeredEvent(EventTriggeredPayloadV1{EventID: "waterLeak"}))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 2, calls)
}

func TestNewEvent_StampsVersion(t *testing.T) {
	evt := NewEventTriggeredEvent(EventTriggeredPayloadV1{EventID: "pumpFailure"})

	assert.Equal(t, SchemaVersion, evt.Version)
	assert.Equal(t, MatchEventTriggered, evt.Type)
	assert.NotZero(t, evt.Timestamp)
}

func TestDecodePayload_FromMap(t *testing.T) {
	p, err := DecodePayload[EventTriggeredPayloadV1](map[string]any{
		"match_id": "m1",
		"event_id": "filterClog",
		"day":      3,
	})

	require.NoError(t, err)
	assert.Equal(t, "filterClog", p.EventID)
	assert.Equal(t, 3, p.Day)
}
