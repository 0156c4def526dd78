package clock

// Ticket identifies a scheduled callback so it can be cancelled.
type Ticket uint64

// Scheduler queues a callback for the next tick. Cancelling a ticket that is
// unknown or has already fired must be a no-op.
type Scheduler interface {
	Schedule(fn func()) Ticket
	Cancel(t Ticket)
}

type scheduled struct {
	ticket Ticket
	fn     func()
}

// FrameScheduler runs callbacks once per frame, the way a display refresh
// callback does. The owner calls Fire once per frame. It is not safe for
// concurrent use; every call must come from the frame loop.
type FrameScheduler struct {
	last    Ticket
	pending []scheduled
	firing  []scheduled
	frames  uint64
}

// NewFrameScheduler returns an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule queues fn for the next Fire.
func (s *FrameScheduler) Schedule(fn func()) Ticket {
	s.last++
	s.pending = append(s.pending, scheduled{ticket: s.last, fn: fn})
	return s.last
}

// Cancel drops a queued callback, including one in the batch currently firing
// that has not run yet.
func (s *FrameScheduler) Cancel(t Ticket) {
	for i, p := range s.pending {
		if p.ticket == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	for i := range s.firing {
		if s.firing[i].ticket == t {
			s.firing[i].fn = nil
			return
		}
	}
}

// Fire runs every callback queued before the call. Callbacks scheduled while
// firing wait for the next frame. It returns the number of callbacks run.
func (s *FrameScheduler) Fire() int {
	s.frames++
	if len(s.pending) == 0 {
		return 0
	}
	s.firing, s.pending = s.pending, nil
	ran := 0
	for i := range s.firing {
		fn := s.firing[i].fn
		if fn == nil {
			continue
		}
		s.firing[i].fn = nil
		fn()
		ran++
	}
	s.firing = nil
	return ran
}

// Pending returns the number of queued callbacks.
func (s *FrameScheduler) Pending() int { return len(s.pending) }

// Frames returns how many times Fire has been called.
func (s *FrameScheduler) Frames() uint64 { return s.frames }
