package queue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

var _ Queue[int] = (*Circular[int])(nil)

// ErrInvalidCapacity is returned when a queue is constructed with capacity < 1.
var ErrInvalidCapacity = errors.New("queue capacity must be greater than zero")

// Circular is a fixed-capacity FIFO queue over a pre-allocated slice.
// Slots are reused through modulo index arithmetic; elements never move
// after insertion. It is not safe for concurrent use, see Locked.
type Circular[T any] struct {
	slots    []T
	capacity int
	head     int // oldest occupied slot
	tail     int // next free slot
	count    int // disambiguates head == tail
}

// NewCircular creates an empty queue holding at most capacity items.
func NewCircular[T any](capacity int) (*Circular[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &Circular[T]{
		slots:    make([]T, capacity),
		capacity: capacity,
	}, nil
}

// MustCircular is like NewCircular but panics on an invalid capacity.
func MustCircular[T any](capacity int) *Circular[T] {
	q, err := NewCircular[T](capacity)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Circular[T]) next(pos int) int { return (pos + 1) % q.capacity }

// Enqueue adds an item at the tail. Returns false if the queue is full.
func (q *Circular[T]) Enqueue(item T) bool {
	if q.count == q.capacity {
		return false
	}
	q.slots[q.tail] = item
	q.tail = q.next(q.tail)
	q.count++
	return true
}

// Dequeue removes and returns the item at the head. Returns false if the queue is empty.
func (q *Circular[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}

	item := q.slots[q.head]
	q.slots[q.head] = zero // release reference for GC
	q.head = q.next(q.head)
	q.count--
	return item, true
}

// Peek returns the item at the head without removing it.
func (q *Circular[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.slots[q.head], true
}

// EnqueueBatch adds items in order until the queue is full. Returns count of items enqueued.
func (q *Circular[T]) EnqueueBatch(items []T) int {
	count := 0
	for _, item := range items {
		if !q.Enqueue(item) {
			break
		}
		count++
	}
	return count
}

// DequeueBatch removes items into out slice. Returns count dequeued.
func (q *Circular[T]) DequeueBatch(out []T) int {
	count := 0
	for i := range out {
		item, ok := q.Dequeue()
		if !ok {
			break
		}
		out[i] = item
		count++
	}
	return count
}

// All returns an iterator over the queued items from head to tail,
// yielding each item's logical position. The queue must not be mutated
// while iterating.
func (q *Circular[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		pos := q.head
		for i := 0; i < q.count; i++ {
			if !yield(i, q.slots[pos]) {
				return
			}
			pos = q.next(pos)
		}
	}
}

// Items returns a newly allocated slice of the queued items from head to tail.
func (q *Circular[T]) Items() []T {
	out := make([]T, 0, q.count)
	for _, item := range q.All() {
		out = append(out, item)
	}
	return out
}

// Clear drops all items and resets the indices. Capacity is unchanged.
func (q *Circular[T]) Clear() {
	clear(q.slots)
	q.head, q.tail, q.count = 0, 0, 0
}

func (q *Circular[T]) IsEmpty() bool { return q.count == 0 }

func (q *Circular[T]) IsFull() bool { return q.count == q.capacity }

// Size returns the number of queued items.
func (q *Circular[T]) Size() int { return q.count }

// Capacity returns maximum queue size.
func (q *Circular[T]) Capacity() int { return q.capacity }

// State reports whether the queue is empty, partially filled or full.
func (q *Circular[T]) State() State { return stateOf(q.count, q.capacity) }

// String renders the queue from head to tail for debugging.
func (q *Circular[T]) String() string {
	if q.count == 0 {
		return "empty queue"
	}

	var sb strings.Builder
	sb.WriteString("queue: [")
	for i, item := range q.All() {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprint(&sb, item)
	}
	sb.WriteString("] (head -> tail)")
	return sb.String()
}
