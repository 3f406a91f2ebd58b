package database

// DefaultMinConnections is kept warm in the pool
const DefaultMinConnections = 2

// Migration sets embedded per dialect
const (
	migrationsPostgresDir = "migrations/postgres"
	migrationsSQLiteDir   = "migrations/sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
	ErrMsgUnsupportedDialect      = "unsupported migration dialect"
)

// Log Messages
const (
	LogMsgConnected          = "Connected to match database"
	LogMsgMigrationApplied   = "Applied migration"
	LogMsgMigrationsUpToDate = "Database migrations up to date"
)
