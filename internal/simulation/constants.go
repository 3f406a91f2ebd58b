package simulation

// Game outcomes
const (
	OutcomeBankruptcy = "bankruptcy"
	OutcomeSuccess    = "success"
	OutcomeFishDeath  = "fish_death"
	OutcomeTimeLimit  = "time_limit"
	OutcomeError      = "error"
)

// Defaults applied by DefaultConfig
const (
	DefaultMaxTurns            = 365
	DefaultBankruptcyThreshold = -500.0
	DefaultSuccessThreshold    = 10000.0
	DefaultBatchSize           = 100
	DefaultMaxActionsPerDay    = 10
	DefaultSnapshotInterval    = 10
	DefaultWorkers             = 4
	DefaultSeed                = 1
)

const (
	ReasonBankruptcyFmt = "Money fell below $%.0f"
	ReasonSuccessFmt    = "Reached $%.0f"
	ReasonFishDeath     = "All fish died"
	ReasonTimeLimitFmt  = "Reached %d days"
)

const (
	ErrMsgOpenConfigFmt    = "failed to open simulation config: %w"
	ErrMsgDecodeConfigFmt  = "failed to decode simulation config %s: %w"
	ErrMsgInvalidConfigFmt = "%w: simulation config: %s"
	ErrMsgMoveFailedFmt    = "move %s failed: %w"
)

const (
	LogMsgBatchStarted   = "Simulation batch started"
	LogMsgBatchProgress  = "Simulation batch progress"
	LogMsgBatchCompleted = "Simulation batch completed"
	LogMsgGameFinished   = "Simulation game finished"
	LogMsgGameFailed     = "Simulation game failed"
	LogMsgPublishFailed  = "Failed to publish simulation result"
)
