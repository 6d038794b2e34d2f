package queue

import "sync"

var _ Queue[int] = (*Locked[int])(nil)

// Locked is a Circular queue guarded by a mutex so it can be shared
// between goroutines. Operations never block waiting for space or items;
// they only serialize access.
type Locked[T any] struct {
	mu sync.Mutex
	q  *Circular[T]
}

// NewLocked creates a synchronized queue holding at most capacity items.
func NewLocked[T any](capacity int) (*Locked[T], error) {
	q, err := NewCircular[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Locked[T]{q: q}, nil
}

func (l *Locked[T]) Enqueue(item T) bool {
	l.mu.Lock()
	ok := l.q.Enqueue(item)
	l.mu.Unlock()
	return ok
}

func (l *Locked[T]) Dequeue() (T, bool) {
	l.mu.Lock()
	item, ok := l.q.Dequeue()
	l.mu.Unlock()
	return item, ok
}

func (l *Locked[T]) Peek() (T, bool) {
	l.mu.Lock()
	item, ok := l.q.Peek()
	l.mu.Unlock()
	return item, ok
}

func (l *Locked[T]) EnqueueBatch(items []T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.EnqueueBatch(items)
}

func (l *Locked[T]) DequeueBatch(out []T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.DequeueBatch(out)
}

func (l *Locked[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Items()
}

func (l *Locked[T]) Clear() {
	l.mu.Lock()
	l.q.Clear()
	l.mu.Unlock()
}

func (l *Locked[T]) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.IsEmpty()
}

func (l *Locked[T]) IsFull() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.IsFull()
}

func (l *Locked[T]) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Size()
}

// Capacity is immutable and needs no lock.
func (l *Locked[T]) Capacity() int { return l.q.Capacity() }

func (l *Locked[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.State()
}

func (l *Locked[T]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.String()
}

// Snapshot is a consistent view of a queue taken under a single lock.
type Snapshot[T any] struct {
	Items    []T
	Size     int
	Capacity int
	State    State
	Render   string
}

// Snapshot captures items, size, state and rendering atomically.
func (l *Locked[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot[T]{
		Items:    l.q.Items(),
		Size:     l.q.Size(),
		Capacity: l.q.Capacity(),
		State:    l.q.State(),
		Render:   l.q.String(),
	}
}
