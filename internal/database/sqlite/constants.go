package sqlite

const (
	driverName = "sqlite"
	dsnOptions = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	// fixed width keeps text ordering equal to time ordering
	timeLayout = "2006-01-02T15:04:05.000000000Z"

	ErrMsgFailedToOpen        = "failed to open sqlite database"
	ErrMsgFailedToCreateDir   = "failed to create database directory"
	ErrMsgFailedToLoadMatch   = "failed to load match"
	ErrMsgFailedToSaveMatch   = "failed to save match"
	ErrMsgFailedToDeleteMatch = "failed to delete match"
	ErrMsgFailedToListMatches = "failed to list matches"
	ErrMsgFailedToEncodeState = "failed to encode game state"
	ErrMsgFailedToDecodeState = "failed to decode game state"
)
