package dailies

import "errors"

var (
	ErrPresenceFailed     = errors.New("presence update failed")
	ErrAnnouncementFailed = errors.New("reset announcement failed")
	ErrNilCollaborator    = errors.New("registry, notifier and presence are required")
)
