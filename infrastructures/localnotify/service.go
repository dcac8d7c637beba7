package localnotify

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/radio47ke/companion/domain/model/reminder"
)

// Service is an in-process notification delivery service: scheduled
// reminders are tracked in a pending table and handed to the deliver
// callback when their timer fires. It mirrors the platform notification
// service's enumerate/cancel/schedule contract.
type Service struct {
	mu      sync.Mutex
	pending map[string]reminder.Pending
	timers  map[string]*time.Timer
	deliver func(reminder.Pending)
}

func New(deliver func(reminder.Pending)) *Service {
	return &Service{
		pending: make(map[string]reminder.Pending),
		timers:  make(map[string]*time.Timer),
		deliver: deliver,
	}
}

func (s *Service) ListPending(ctx context.Context) ([]reminder.Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]reminder.Pending, 0, len(s.pending))
	for _, p := range s.pending {
		pending = append(pending, p)
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].FireAt.Before(pending[j].FireAt) })
	return pending, nil
}

func (s *Service) Cancel(ctx context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[handle]; ok {
		timer.Stop()
	}
	delete(s.timers, handle)
	delete(s.pending, handle)
	return nil
}

func (s *Service) Schedule(ctx context.Context, fireAt time.Time, rem reminder.Reminder, category reminder.Category) (string, error) {
	handle := uuid.NewString()
	p := reminder.Pending{
		Handle:   handle,
		Category: category,
		FireAt:   fireAt,
		Reminder: rem,
	}

	wait := time.Until(fireAt)
	if wait < 0 {
		wait = 0
	}

	s.mu.Lock()
	s.pending[handle] = p
	s.timers[handle] = time.AfterFunc(wait, func() { s.fire(handle) })
	s.mu.Unlock()

	return handle, nil
}

func (s *Service) fire(handle string) {
	s.mu.Lock()
	p, ok := s.pending[handle]
	delete(s.pending, handle)
	delete(s.timers, handle)
	deliver := s.deliver
	s.mu.Unlock()

	if !ok || deliver == nil {
		return
	}
	deliver(p)
}

// Stop cancels every outstanding timer. Pending entries are kept so a later
// process can recompute from them.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for handle, timer := range s.timers {
		timer.Stop()
		delete(s.timers, handle)
	}
}
