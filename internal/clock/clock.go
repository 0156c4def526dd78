// Package clock owns the simulation time and the play, pause and step
// controls that advance it.
package clock

import "math"

const (
	// PlayIncrement is added to the simulation time on every tick while playing.
	PlayIncrement = 0.1
	// SlowMotionIncrement replaces PlayIncrement while slow motion is on.
	SlowMotionIncrement = 0.01
	// DefaultStepSize is the initial manual step size.
	DefaultStepSize = 0.1
)

// State is the playback mode of a Clock.
type State int

const (
	Stopped State = iota
	Playing
	// SteppingOnce advances on the next tick and then returns to Stopped.
	SteppingOnce
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case SteppingOnce:
		return "SteppingOnce"
	default:
		return "Unknown"
	}
}

// Clock advances the simulation time by a fixed increment per scheduler tick,
// independent of wall-clock time between ticks. It is not safe for concurrent
// use.
type Clock struct {
	sched Scheduler

	now        float64
	state      State
	slowMotion bool
	stepMode   bool
	stepSize   float64

	ticket  Ticket
	pending bool

	onChange func()
}

// New returns a stopped clock at time zero that schedules its ticks on s.
func New(s Scheduler) *Clock {
	return &Clock{sched: s, stepSize: DefaultStepSize}
}

// OnChange registers fn to run after every change to time or playback state.
func (c *Clock) OnChange(fn func()) { c.onChange = fn }

func (c *Clock) Time() float64     { return c.now }
func (c *Clock) State() State      { return c.state }
func (c *Clock) SlowMotion() bool  { return c.slowMotion }
func (c *Clock) StepMode() bool    { return c.stepMode }
func (c *Clock) StepSize() float64 { return c.stepSize }

// Increment is the amount the next tick will add.
func (c *Clock) Increment() float64 {
	if c.slowMotion {
		return SlowMotionIncrement
	}
	return PlayIncrement
}

// TogglePlay starts or stops continuous playback. With step mode on, starting
// enters SteppingOnce instead. Toggling during SteppingOnce cancels the
// pending advance.
func (c *Clock) TogglePlay() {
	switch c.state {
	case Playing, SteppingOnce:
		c.cancel()
		c.state = Stopped
	case Stopped:
		if c.stepMode {
			c.state = SteppingOnce
		} else {
			c.state = Playing
		}
		c.schedule()
	}
	c.changed()
}

// Step advances the time once by size. It only acts while Stopped and ignores
// sizes that are not positive and finite. It reports whether time moved.
func (c *Clock) Step(size float64) bool {
	if c.state != Stopped || !(size > 0) || math.IsInf(size, 1) {
		return false
	}
	c.now += size
	c.changed()
	return true
}

// Reset returns to time zero and stops playback from any state.
func (c *Clock) Reset() {
	c.cancel()
	c.now = 0
	c.state = Stopped
	c.changed()
}

// SetSlowMotion switches the tick increment. A running clock picks it up on
// its next tick.
func (c *Clock) SetSlowMotion(on bool) {
	if c.slowMotion == on {
		return
	}
	c.slowMotion = on
	c.changed()
}

// SetStepMode turns step mode on or off. Turning it on stops playback.
func (c *Clock) SetStepMode(on bool) {
	if c.stepMode == on {
		return
	}
	c.stepMode = on
	if on && c.state == Playing {
		c.cancel()
		c.state = Stopped
	}
	c.changed()
}

// SetStepSize changes the manual step size; non-positive values are ignored.
func (c *Clock) SetStepSize(size float64) {
	if !(size > 0) || math.IsInf(size, 1) || size == c.stepSize {
		return
	}
	c.stepSize = size
	c.changed()
}

func (c *Clock) schedule() {
	if c.pending {
		return
	}
	c.ticket = c.sched.Schedule(c.tick)
	c.pending = true
}

func (c *Clock) cancel() {
	if !c.pending {
		return
	}
	c.sched.Cancel(c.ticket)
	c.pending = false
}

func (c *Clock) tick() {
	c.pending = false
	switch c.state {
	case Playing:
		c.now += c.Increment()
		c.schedule()
	case SteppingOnce:
		c.now += c.Increment()
		c.state = Stopped
	default:
		return
	}
	c.changed()
}

func (c *Clock) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
