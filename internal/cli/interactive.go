package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-circq/pkg/datastructs/queue"
)

// maxLineSize bounds one line of menu input, element values included.
const maxLineSize = 1 << 20

const menu = `
Options:
1 - Insert element
2 - Remove element
3 - Peek
4 - Is empty
5 - Is full
6 - Size
7 - List elements
0 - Exit`

// Session is one interactive menu run. It owns the queue for its lifetime.
type Session struct {
	in  *bufio.Scanner
	out printer
	log *zap.Logger
	q   *queue.Circular[string]
}

// NewSession creates a session reading commands from r and writing to w.
func NewSession(r io.Reader, w io.Writer, log *zap.Logger) *Session {
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Session{
		in:  in,
		out: printer{w: w},
		log: log,
	}
}

// prompt prints label and reads one trimmed line. ok is false on EOF.
func (s *Session) prompt(label string) (string, bool) {
	s.out.line("%s", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// Run asks for a capacity and loops over the menu until exit or EOF.
// If capacity is positive the capacity prompt is skipped.
func (s *Session) Run(capacity int) error {
	s.out.banner("INTERACTIVE MENU")

	for s.q == nil {
		if capacity <= 0 {
			text, ok := s.prompt("Queue capacity:")
			if !ok {
				return s.in.Err()
			}
			n, err := strconv.Atoi(text)
			if err != nil {
				s.out.err(errors.Wrapf(err, "invalid capacity %q", text))
				continue
			}
			capacity = n
		}

		q, err := queue.NewCircular[string](capacity)
		if err != nil {
			s.out.err(err)
			capacity = 0
			continue
		}
		s.q = q
	}
	s.log.Info("session.start", zap.Int("capacity", s.q.Capacity()))

	for {
		s.out.line("\n%s", s.q)
		s.out.line("%s", menu)

		opt, ok := s.prompt("\nChoose an option:")
		if !ok {
			s.log.Info("session.eof")
			return s.in.Err()
		}
		if opt == "0" {
			s.out.line("Exiting...")
			s.log.Info("session.exit")
			return nil
		}
		if !s.dispatch(opt) {
			return s.in.Err()
		}
	}
}

// dispatch executes one menu option. It returns false if input ended
// while the option was reading its argument.
func (s *Session) dispatch(opt string) bool {
	switch opt {
	case "1":
		v, ok := s.prompt("Element to insert:")
		if !ok {
			return false
		}
		accepted := s.q.Enqueue(v)
		if !accepted {
			s.log.Debug("queue.full", zap.String("value", v))
		}
		s.out.result("Result", accepted)
	case "2":
		s.out.line("Removed element: %s", item(s.q.Dequeue()))
	case "3":
		s.out.line("Head of queue: %s", item(s.q.Peek()))
	case "4":
		s.out.result("Queue is empty", s.q.IsEmpty())
	case "5":
		s.out.result("Queue is full", s.q.IsFull())
	case "6":
		s.out.line("Current size: %d/%d", s.q.Size(), s.q.Capacity())
	case "7":
		s.out.line("Elements: %v", s.q.Items())
	default:
		s.out.line("Invalid option!")
	}
	return true
}

// Confirm asks a yes/no question on the session's input and accepts
// s, sim, y or yes.
func (s *Session) Confirm(question string) bool {
	answer, ok := s.prompt(question)
	if !ok {
		return false
	}
	switch strings.ToLower(answer) {
	case "s", "sim", "y", "yes":
		return true
	default:
		return false
	}
}
