package sse

// Event represents an event sent over SSE
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	MatchID   string `json:"match_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client represents a connected SSE client
type Client struct {
	ID           string
	EventChannel chan Event
	// EventFilter is nil for all events, otherwise only the listed types
	EventFilter map[string]bool
	// MatchFilter limits match events to one match; simulation events always pass
	MatchFilter string
}

func (c *Client) wants(e Event) bool {
	if c.EventFilter != nil && !c.EventFilter[e.Type] {
		return false
	}
	if c.MatchFilter != "" && e.MatchID != "" && e.MatchID != c.MatchFilter {
		return false
	}
	return true
}
