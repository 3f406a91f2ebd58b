package match

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
	// CacheSchemaVersion invalidates cached entries when the state layout changes
	CacheSchemaVersion = "1.0"
)

// List limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxLabelLength   = 100
)

// rngStride spreads per-move seeds so consecutive moves do not share streams
const rngStride = 7919

// Error messages
const (
	ErrMsgLoadMatch     = "failed to load match"
	ErrMsgSaveMatch     = "failed to save match"
	ErrMsgCloneState    = "failed to copy game state"
	ErrMsgLabelTooLong  = "label exceeds maximum length"
	ErrMsgMatchNoState  = "match has no game state"
	ErrMsgApplyMoveFmt  = "move %s failed: %w"
)

// Log messages
const (
	LogMsgMatchCreated  = "Match created"
	LogMsgMatchDeleted  = "Match deleted"
	LogMsgMoveApplied   = "Move applied to match"
	LogMsgMoveRejected  = "Move rejected"
	LogMsgPublishFailed = "Failed to publish match event"
	LogMsgCacheHit      = "Match cache hit"
)
