package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidMatchID        = "Invalid match ID"
	ErrMsgInvalidLimit          = "Invalid limit parameter"

	ErrMsgCreateMatchFailed  = "Failed to create match"
	ErrMsgGetMatchFailed     = "Failed to retrieve match"
	ErrMsgListMatchesFailed  = "Failed to list matches"
	ErrMsgDeleteMatchFailed  = "Failed to delete match"
	ErrMsgApplyMoveFailed    = "Failed to apply move"
	ErrMsgSimulationFailed   = "Failed to run simulation"
	ErrMsgTooManyGamesFmt    = "At most %d games per request"
	ErrMsgExportFailed       = "Simulation finished but export failed"
	ErrMsgDatabaseConnection = "database connection failed"
)

// Success messages for API responses
const (
	MsgMatchDeleted = "Match deleted"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

const maxPooledBuffer = 64 << 10
