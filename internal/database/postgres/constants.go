package postgres

// Error Messages - Seed Repository
const (
	ErrMsgFailedToListSeed = "failed to list reminder seed"
	ErrMsgFailedToAddSeed  = "failed to add reminder seed"
)
