package postgres

// Error Messages - Match Store
const (
	ErrMsgFailedToLoadMatch   = "failed to load match"
	ErrMsgFailedToSaveMatch   = "failed to save match"
	ErrMsgFailedToDeleteMatch = "failed to delete match"
	ErrMsgFailedToListMatches = "failed to list matches"
	ErrMsgFailedToEncodeState = "failed to encode game state"
	ErrMsgFailedToDecodeState = "failed to decode game state"
)
