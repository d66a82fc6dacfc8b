package reminder

// SubscribeResult is the outcome of Subscribe
type SubscribeResult int

const (
	Subscribed SubscribeResult = iota
	AlreadySubscribed
)

// UnsubscribeResult is the outcome of Unsubscribe
type UnsubscribeResult int

const (
	Unsubscribed UnsubscribeResult = iota
	NotSubscribed
)

// DoneResult is the outcome of MarkDone
type DoneResult int

const (
	MarkedDone DoneResult = iota
	AlreadyDone
)

func (r SubscribeResult) String() string {
	if r == AlreadySubscribed {
		return "already_subscribed"
	}
	return "subscribed"
}

func (r UnsubscribeResult) String() string {
	if r == NotSubscribed {
		return "not_subscribed"
	}
	return "unsubscribed"
}

func (r DoneResult) String() string {
	if r == AlreadyDone {
		return "already_done"
	}
	return "marked_done"
}
