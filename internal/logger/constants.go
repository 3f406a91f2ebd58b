package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "aquaponics-sim"
	CLIServiceName     = "aquaponics-simulate"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	EnvironmentCLI        = "cli"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyMatchID     = "match_id"
	AttrKeyGameID      = "game_id"
)
