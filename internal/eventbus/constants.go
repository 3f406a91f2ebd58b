package eventbus

import "time"

// SchemaVersion is stamped on every published message
const SchemaVersion = "1.0"

// Retry configuration
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// DeadLetterFilePermissions is the mode for the dead-letter file
const DeadLetterFilePermissions = 0o644

// Log messages
const (
	LogMsgPublishFailed       = "Failed to publish event, retrying in background"
	LogMsgRetrySucceeded      = "Published event after retry"
	LogMsgRetryFailed         = "Event retry failed"
	LogMsgDeadLettered        = "Event written to dead letter file"
	LogMsgDeadLetterFailed    = "Failed to write dead letter entry"
	LogMsgHandlerErrorsFormat = "encountered %d errors while handling %s: %v"
)
