package core

// DefaultKeyQueueSize is how many movement keys may wait for upcoming ticks.
const DefaultKeyQueueSize = 3

// KeyQueue buffers movement actions between ticks. Keys arrive whenever the
// terminal delivers them; the tick loop takes at most one per tick.
// Neither side ever waits on the other.
type KeyQueue struct {
	pending []Action
	limit   int
}

// NewKeyQueue creates a queue holding at most limit actions.
// A non-positive limit falls back to DefaultKeyQueueSize.
func NewKeyQueue(limit int) *KeyQueue {
	if limit <= 0 {
		limit = DefaultKeyQueueSize
	}
	return &KeyQueue{
		pending: make([]Action, 0, limit),
		limit:   limit,
	}
}

// Push appends an action. It reports false and drops the action when the
// queue is full or the action is ActionNone.
func (q *KeyQueue) Push(a Action) bool {
	if a == ActionNone || len(q.pending) >= q.limit {
		return false
	}
	q.pending = append(q.pending, a)
	return true
}

// Poll returns the oldest pending action, or ActionNone when empty.
// It never blocks.
func (q *KeyQueue) Poll() Action {
	if len(q.pending) == 0 {
		return ActionNone
	}
	a := q.pending[0]
	copy(q.pending, q.pending[1:])
	q.pending = q.pending[:len(q.pending)-1]
	return a
}

// Len returns the number of pending actions.
func (q *KeyQueue) Len() int {
	return len(q.pending)
}

// Clear drops every pending action.
func (q *KeyQueue) Clear() {
	q.pending = q.pending[:0]
}
