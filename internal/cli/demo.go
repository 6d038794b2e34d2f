package cli

import (
	"fmt"
	"io"

	"github.com/huynhanx03/go-circq/pkg/datastructs/queue"
)

// RunDemo runs every scripted scenario, writing the narration to w.
func RunDemo(w io.Writer) {
	p := printer{w: w}
	p.line("CIRCULAR QUEUE")
	p.line("Fixed-capacity FIFO queue over a slice with modular indices")

	demoBasic(p)
	demoFull(p)
	demoEmpty(p)
	demoWraparound(p)
	demoEdgeCases(p)
}

func demoBasic(p printer) {
	p.banner("BASIC OPERATIONS")

	p.line("Creating queue with capacity 5...")
	q := queue.MustCircular[string](5)
	p.result("Is empty", q.IsEmpty())
	p.result("Is full", q.IsFull())
	p.line("Size: %d", q.Size())

	p.line("\nInserting A, B, C...")
	for _, v := range []string{"A", "B", "C"} {
		p.result(fmt.Sprintf("Insert %q", v), q.Enqueue(v))
	}
	p.line("%s", q)

	p.line("\nPeek: %s", item(q.Peek()))
	p.line("Size: %d", q.Size())

	p.line("\nRemoved: %s", item(q.Dequeue()))
	p.line("Peek: %s", item(q.Peek()))
	p.line("%s", q)
}

func demoFull(p printer) {
	p.banner("FULL QUEUE")

	p.line("Creating queue with capacity 3...")
	q := queue.MustCircular[int](3)
	for _, v := range []int{1, 2, 3} {
		p.result(fmt.Sprintf("Insert %d", v), q.Enqueue(v))
	}
	p.line("%s", q)
	p.result("Is full", q.IsFull())

	p.line("\nInserting one more element...")
	p.result("Insert 4", q.Enqueue(4))
	p.line("Queue unchanged: %s", q)
}

func demoEmpty(p printer) {
	p.banner("EMPTY QUEUE")

	q := queue.MustCircular[string](3)
	p.line("Peek on empty: %s", item(q.Peek()))
	p.line("Remove on empty: %s", item(q.Dequeue()))
	p.result("Is empty", q.IsEmpty())

	p.line("\nInserting and removing every element...")
	q.Enqueue("X")
	q.Enqueue("Y")
	p.line("After inserting X and Y: %s", q)
	p.line("Removed: %s", item(q.Dequeue()))
	p.line("Removed: %s", item(q.Dequeue()))
	p.line("Current state: %s", q)
	p.line("Remove on empty: %s", item(q.Dequeue()))
}

func demoWraparound(p printer) {
	p.banner("WRAPAROUND")

	p.line("Creating queue with capacity 4...")
	q := queue.MustCircular[string](4)
	for i := 1; i <= 4; i++ {
		v := fmt.Sprintf("Item%d", i)
		q.Enqueue(v)
		p.line("Inserted %s: %s", v, q)
	}

	p.line("\nRemoving to free slots at the front...")
	p.line("Removed: %s", item(q.Dequeue()))
	p.line("Removed: %s", item(q.Dequeue()))
	p.line("After removals: %s", q)

	p.line("\nInserting into the reused slots...")
	for _, v := range []string{"NewA", "NewB"} {
		q.Enqueue(v)
		p.line("Inserted %s: %s", v, q)
	}

	p.result("\nIs full", q.IsFull())
	p.line("Elements: %v", q.Items())
}

func demoEdgeCases(p printer) {
	p.banner("EDGE CASES")

	p.line("Creating queues with invalid capacity...")
	for _, capacity := range []int{0, -1} {
		if _, err := queue.NewCircular[string](capacity); err != nil {
			p.err(err)
		}
	}

	p.line("\nQueue with capacity 1...")
	q := queue.MustCircular[string](1)
	p.result(`Insert "only"`, q.Enqueue("only"))
	p.result("Is full", q.IsFull())
	p.result(`Insert "other"`, q.Enqueue("other"))
	p.line("Peek: %s", item(q.Peek()))
	p.line("Removed: %s", item(q.Dequeue()))
	p.result("Is empty", q.IsEmpty())
}
