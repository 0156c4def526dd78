package clock

import "testing"

func TestFrameSchedulerRunsOncePerFire(t *testing.T) {
	s := NewFrameScheduler()
	runs := 0
	s.Schedule(func() { runs++ })
	s.Schedule(func() { runs++ })
	if got := s.Fire(); got != 2 || runs != 2 {
		t.Fatalf("Fire() = %d, runs = %d, want 2", got, runs)
	}
	if got := s.Fire(); got != 0 {
		t.Fatalf("second Fire() = %d, want 0", got)
	}
	if s.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", s.Frames())
	}
}

func TestFrameSchedulerDefersRescheduled(t *testing.T) {
	s := NewFrameScheduler()
	runs := 0
	var loop func()
	loop = func() {
		runs++
		s.Schedule(loop)
	}
	s.Schedule(loop)
	for i := 0; i < 5; i++ {
		s.Fire()
	}
	if runs != 5 {
		t.Fatalf("runs = %d, want 5", runs)
	}
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := NewFrameScheduler()
	ran := false
	tk := s.Schedule(func() { ran = true })
	s.Cancel(tk)
	s.Cancel(tk)
	s.Cancel(Ticket(999))
	s.Fire()
	if ran {
		t.Fatal("cancelled callback ran")
	}
}

func TestFrameSchedulerCancelWithinBatch(t *testing.T) {
	s := NewFrameScheduler()
	var second Ticket
	ran := false
	s.Schedule(func() { s.Cancel(second) })
	second = s.Schedule(func() { ran = true })
	if got := s.Fire(); got != 1 {
		t.Fatalf("Fire() = %d, want 1", got)
	}
	if ran {
		t.Fatal("callback cancelled mid-batch still ran")
	}
}

func TestFrameSchedulerCancelAfterFire(t *testing.T) {
	s := NewFrameScheduler()
	tk := s.Schedule(func() {})
	s.Fire()
	s.Cancel(tk)
	if s.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", s.Pending())
	}
}
