package config

import "time"

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "aquaponics-sim"
	DefaultVersion           = "dev"
	DefaultStorageDriver     = StorageSQLite
	DefaultSQLitePath        = "data/matches.db"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultCacheSize         = 256
	DefaultCacheTTL          = 10 * time.Minute
	DefaultSimWorkers        = 4
	DefaultMaxSimGames       = 1000
	DefaultS3Region          = "us-east-1"
	DefaultS3Prefix          = "simulations/"
	DefaultMaxBodyBytes      = 1 << 20
	DefaultDeadLetterPath    = "logs/dead_letter.jsonl"
	DefaultShutdownTimeout   = 15 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPort    = "invalid PORT value"
	ErrMsgAPIKeyRequired = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig  = "invalid configuration"
)
