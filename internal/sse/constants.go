package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Query parameters accepted by the stream endpoint
const (
	QueryParamTypes = "types"
	QueryParamMatch = "match"
)

// Event types for SSE
const (
	EventTypeConnected           = "connected"
	EventTypeKeepalive           = "keepalive"
	EventTypeMoveApplied         = "match.move_applied"
	EventTypeEventTriggered      = "match.event_triggered"
	EventTypeSimulationCompleted = "simulation.completed"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
	LogMsgBadPayload         = "Invalid event payload for SSE"
)
