package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"bilingual-todo/internal/model"
)

// Gateway persists the task list. Save is best-effort: the store logs
// and continues on failure, keeping the in-memory state authoritative
// for the session.
type Gateway interface {
	Save(ctx context.Context, tasks []model.Task) error
}

// Store owns the task list. All mutation flows through Dispatch, which
// serializes reduce-then-persist under a single lock so concurrent
// dispatches never interleave between reading state and writing the
// durable copy.
type Store struct {
	mu      sync.Mutex
	tasks   []model.Task
	gateway Gateway
	log     *zap.SugaredLogger

	subMu sync.Mutex
	subs  []chan struct{}
}

func New(gateway Gateway, log *zap.SugaredLogger) *Store {
	return &Store{gateway: gateway, log: log}
}

// Dispatch applies an action. When the action changes the list it is
// persisted synchronously before Dispatch returns, then subscribers are
// notified. ReplaceAll is the hydration path and skips the write-back.
func (s *Store) Dispatch(ctx context.Context, action Action) bool {
	s.mu.Lock()
	next, changed := Reduce(s.tasks, action)
	if changed {
		if _, hydrating := action.(ReplaceAll); !hydrating {
			if err := s.gateway.Save(ctx, next); err != nil {
				s.log.Warnw("persist tasks", "error", err)
			}
		}
		s.tasks = next
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
	return changed
}

// Tasks returns a copy of the current task list.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]model.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Find looks up a task by id.
func (s *Store) Find(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Subscribe returns a channel that receives a signal after every change
// to the task list. Signals coalesce: a subscriber that has not drained
// its channel sees at most one pending notification.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()
	return ch
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
