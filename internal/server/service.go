package server

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-circq/pkg/common/apperr"
	"github.com/huynhanx03/go-circq/pkg/common/http/response"
	"github.com/huynhanx03/go-circq/pkg/datastructs/queue"
)

const serviceName = "queue"

var (
	errNoPayload    = errors.New("one of value or values is required")
	errBothPayloads = errors.New("value and values are mutually exclusive")
	errCountOverCap = errors.New("n exceeds queue capacity")
	errEmptyValues  = errors.New("values must be a non-empty array")
)

// EnqueueRequest carries either a single JSON value or a batch of values.
type EnqueueRequest struct {
	Value  Payload   `json:"value"`
	Values []Payload `json:"values"`
}

// EnqueueResult reports how many values were accepted. Accepted is true
// only if every supplied value fit.
type EnqueueResult struct {
	Accepted bool `json:"accepted"`
	Count    int  `json:"count"`
	Size     int  `json:"size"`
}

// DequeueRequest optionally asks for up to N items in one call.
type DequeueRequest struct {
	N *int `form:"n" validate:"omitempty,gte=1"`
}

// ItemResult reports elements read from the head. Found distinguishes a
// stored null from an empty queue; Value is omitted when nothing was found.
type ItemResult struct {
	Found  bool      `json:"found"`
	Value  Payload   `json:"value,omitempty"`
	Values []Payload `json:"values,omitempty"`
}

type StatusResult struct {
	Size     int       `json:"size"`
	Capacity int       `json:"capacity"`
	Empty    bool      `json:"empty"`
	Full     bool      `json:"full"`
	State    string    `json:"state"`
	Items    []Payload `json:"items"`
	Render   string    `json:"render"`
}

// Service exposes queue operations in the handler.HandlerFunc shape.
type Service struct {
	q   *queue.Locked[Payload]
	log *zap.Logger
}

func NewService(q *queue.Locked[Payload], log *zap.Logger) *Service {
	return &Service{q: q, log: log}
}

func badRequest(msg string, cause error) error {
	return apperr.NewError(serviceName, response.CodeParamInvalid, msg, http.StatusBadRequest, cause)
}

func (s *Service) Enqueue(_ context.Context, req *EnqueueRequest) (EnqueueResult, error) {
	switch {
	case req.Value != nil && req.Values != nil:
		return EnqueueResult{}, badRequest(apperr.MsgEnqueueFailed, errBothPayloads)
	case req.Value != nil:
		ok := s.q.Enqueue(req.Value)
		count := 0
		if ok {
			count = 1
			s.log.Debug("queue.enqueue", zap.Stringer("value", req.Value))
		} else {
			s.log.Warn("queue.full", zap.Int("capacity", s.q.Capacity()))
		}
		return EnqueueResult{Accepted: ok, Count: count, Size: s.q.Size()}, nil
	case len(req.Values) > 0:
		count := s.q.EnqueueBatch(req.Values)
		if count < len(req.Values) {
			s.log.Warn("queue.full",
				zap.Int("capacity", s.q.Capacity()),
				zap.Int("rejected", len(req.Values)-count),
			)
		}
		return EnqueueResult{Accepted: count == len(req.Values), Count: count, Size: s.q.Size()}, nil
	case req.Values != nil:
		return EnqueueResult{}, badRequest(apperr.MsgEnqueueFailed, errEmptyValues)
	default:
		return EnqueueResult{}, badRequest(apperr.MsgEnqueueFailed, errNoPayload)
	}
}

func (s *Service) Dequeue(_ context.Context, req *DequeueRequest) (ItemResult, error) {
	if req.N == nil {
		v, ok := s.q.Dequeue()
		if ok {
			s.log.Debug("queue.dequeue", zap.Stringer("value", v))
		} else {
			s.log.Debug("queue.empty")
		}
		return ItemResult{Found: ok, Value: v}, nil
	}

	if *req.N > s.q.Capacity() {
		return ItemResult{}, badRequest(apperr.MsgDequeueFailed, errors.Wrapf(errCountOverCap, "n=%d capacity=%d", *req.N, s.q.Capacity()))
	}
	out := make([]Payload, *req.N)
	n := s.q.DequeueBatch(out)
	s.log.Debug("queue.dequeue_batch", zap.Int("requested", *req.N), zap.Int("count", n))
	return ItemResult{Found: n > 0, Values: out[:n]}, nil
}

func (s *Service) Peek(_ context.Context, _ *struct{}) (ItemResult, error) {
	v, ok := s.q.Peek()
	return ItemResult{Found: ok, Value: v}, nil
}

func (s *Service) Status(_ context.Context, _ *struct{}) (StatusResult, error) {
	snap := s.q.Snapshot()
	return StatusResult{
		Size:     snap.Size,
		Capacity: snap.Capacity,
		Empty:    snap.State == queue.StateEmpty,
		Full:     snap.State == queue.StateFull,
		State:    snap.State.String(),
		Items:    snap.Items,
		Render:   snap.Render,
	}, nil
}

func (s *Service) Clear(ctx context.Context, _ *struct{}) (StatusResult, error) {
	s.q.Clear()
	s.log.Info("queue.clear")
	return s.Status(ctx, nil)
}
