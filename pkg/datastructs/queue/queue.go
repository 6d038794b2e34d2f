package queue

// Queue is a generic interface for bounded FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the queue.
	// Returns true if successful, false if the queue is full.
	Enqueue(item T) bool

	// Dequeue removes and returns an item from the queue.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Dequeue() (T, bool)

	// Peek returns the oldest item without removing it.
	// Returns (zero, false) if the queue is empty.
	Peek() (T, bool)

	// Items returns a copy of the queued items from head to tail.
	Items() []T

	IsEmpty() bool
	IsFull() bool
	Size() int

	// Capacity returns the total capacity of the queue.
	Capacity() int
}

// State is the occupancy state of a bounded queue.
type State uint8

const (
	StateEmpty State = iota
	StatePartial
	StateFull
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	default:
		return "unknown"
	}
}

func stateOf(count, capacity int) State {
	switch count {
	case 0:
		return StateEmpty
	case capacity:
		return StateFull
	default:
		return StatePartial
	}
}
