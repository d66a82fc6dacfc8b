package seed

import "errors"

var ErrLoadSeed = errors.New("failed to load reminder seed")

const LogMsgSeedLoaded = "Reminder pool seed loaded"
