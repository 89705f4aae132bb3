package oncecell

// Observer receives cell lifecycle events. Implementations must be safe
// for concurrent use when the cell is shared between goroutines.
type Observer interface {
	On(eventData EventData)
}

// Event represents a cell lifecycle event type.
type Event int

const (
	// EventLaunch is emitted when a Request finds the cell idle and
	// invokes the producer.
	EventLaunch Event = iota
	// EventCoalesce is emitted when a Request joins a round that is
	// already in flight instead of invoking the producer again.
	EventCoalesce
	// EventHit is emitted when a Request is served synchronously from the
	// cached success.
	EventHit
	// EventSettle is emitted when a Report delivers a success and the cell
	// settles for good.
	EventSettle
	// EventReset is emitted when a Report delivers a failure and the cell
	// returns to idle, ready for a retry.
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventLaunch:
		return "launch"
	case EventCoalesce:
		return "coalesce"
	case EventHit:
		return "hit"
	case EventSettle:
		return "settle"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// EventData carries the details of a cell event. Phase is the cell's phase
// after the transition the event describes; Waiters is the number of queued
// completions involved (queue length for a coalesce, completions notified
// for a settle or reset).
type EventData struct {
	Event   Event
	Cell    string
	Phase   Phase
	Waiters int
}
