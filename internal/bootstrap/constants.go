package bootstrap

import "time"

// DirPermission is used for the data and dead-letter directories
const DirPermission = 0o750

// Event system defaults
const (
	EventDefaultMaxRetries = 5
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages
const (
	LogMsgStorageOpened              = "Match storage opened"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Waiting for pending event retries..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgPublisherDrainTimeout      = "Event retries still pending at shutdown"
	LogMsgStoreCloseFailed           = "Closing match storage failed"
)

// Error messages
const (
	ErrMsgUnknownStorageDriver      = "unknown storage driver"
	ErrMsgFailedOpenSQLite          = "failed to open sqlite storage"
	ErrMsgFailedConnectPostgres     = "failed to connect to postgres"
	ErrMsgFailedMigratePostgres     = "failed to migrate postgres"
	ErrMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
)
