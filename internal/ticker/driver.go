package ticker

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// State identifies the phase the ticker is in. Exactly one state is active
// at a time and the transitions are cyclic.
type State uint8

const (
	// StatePretick pauses on a freshly shown item before any motion.
	StatePretick State = iota

	// StateTick scrolls the current item horizontally, one step per frame.
	StateTick

	// StatePreswitch pauses after scrolling ends, before the next item is
	// brought in.
	StatePreswitch

	// StateSwitch slides vertically to the next item; both the outgoing
	// and the incoming item are visible.
	StateSwitch
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePretick:
		return "pretick"
	case StateTick:
		return "tick"
	case StatePreswitch:
		return "preswitch"
	case StateSwitch:
		return "switch"
	}
	return "unknown"
}

const (
	// PretickDelay is the pause before a shown item starts scrolling.
	PretickDelay = 3000 * time.Millisecond

	// PreswitchDelay is the pause after an item finished scrolling and
	// before the switch to the next one begins.
	PreswitchDelay = 3000 * time.Millisecond

	// StepDuration is the frame interval of the two animated states.
	StepDuration = 16 * time.Millisecond

	// TickStepSize is the nominal horizontal distance per frame, in cells,
	// before the density scale is applied.
	TickStepSize = 1.0

	// SwitchStepSize is the nominal vertical distance per frame, in cells,
	// before the density scale is applied.
	SwitchStepSize = 1.0
)

// Motion advances an offset toward its ceiling by one animation frame and
// returns the new offset and velocity.
type Motion interface {
	Advance(offset, velocity, ceiling float64) (float64, float64)
}

// LinearMotion moves a fixed distance per frame. Scroll velocity is
// constant, so the duration of an animation grows with the distance it has
// to cover.
type LinearMotion struct {
	Step float64
}

// Advance adds the fixed step. Velocity and ceiling are unused.
func (m LinearMotion) Advance(offset, velocity, _ float64) (float64, float64) {
	return offset + m.Step, velocity
}

// SpringMotion eases the offset toward its ceiling with a damped spring.
// The ceiling is the one observed by the most recent placement pass.
type SpringMotion struct {
	Spring harmonica.Spring
}

// Advance runs one spring update. The target sits one cell past the
// ceiling: a damped spring only converges asymptotically, and the clamp
// needs the offset to actually reach the ceiling to report completion.
func (m SpringMotion) Advance(offset, velocity, ceiling float64) (float64, float64) {
	return m.Spring.Update(offset, velocity, ceiling+1)
}

func newSpringMotion(frequency, damping float64) SpringMotion {
	return SpringMotion{Spring: harmonica.NewSpring(StepDuration.Seconds(), frequency, damping)}
}

// host is the widget surface a driver animates. materialize renders the
// item at the given position (reduced modulo the item count) and appends it
// to the visible items; discardFirst drops the outgoing item; relayout
// re-runs the placement pass, which clamps offsets and reports finished
// flags back into the driver.
type host interface {
	materialize(position int)
	discardFirst()
	relayout()
}

// driver is the state machine that sequences a ticker. Each reset cycle
// gets a brand-new driver, so offsets and flags never leak between
// configurations and a cancelled driver can simply be abandoned.
type driver struct {
	host host

	state     State
	cancelled bool
	current   int

	tickMotion   Motion
	switchMotion Motion

	pretickDelay   time.Duration
	preswitchDelay time.Duration

	tickOffset  float64
	tickVel     float64
	tickCeiling float64
	tickDone    bool

	switchOffset  float64
	switchVel     float64
	switchCeiling float64
	switchDone    bool
}

func newDriver(h host, tick, sw Motion, pretick, preswitch time.Duration) *driver {
	return &driver{
		host:           h,
		state:          StatePretick,
		tickMotion:     tick,
		switchMotion:   sw,
		pretickDelay:   pretick,
		preswitchDelay: preswitch,
	}
}

// start performs the first step and returns the delay before the next one.
func (d *driver) start() time.Duration {
	return d.step()
}

// cancel marks the driver inert. Cancellation is cooperative: a timer
// callback already in flight will observe the flag and do nothing.
func (d *driver) cancel() {
	d.cancelled = true
}

// step performs one state transition and returns the delay before the next
// invocation. Transitions whose delay is zero recurse immediately, so a
// finished animation is acted on in the same turn; the returned delay is
// therefore always positive unless the driver has been cancelled.
func (d *driver) step() time.Duration {
	if d.cancelled {
		return 0
	}

	next := d.state
	var delay time.Duration

	switch d.state {
	case StatePretick:
		d.reset()
		d.host.relayout()
		next = StateTick
		delay = d.pretickDelay

	case StateTick:
		if d.tickDone {
			next = StatePreswitch
		} else {
			d.tickOffset, d.tickVel = d.tickMotion.Advance(d.tickOffset, d.tickVel, d.tickCeiling)
			d.host.relayout()
			delay = StepDuration
		}

	case StatePreswitch:
		d.host.materialize(d.current + 1)
		next = StateSwitch
		delay = d.preswitchDelay

	case StateSwitch:
		if d.switchDone {
			d.current++
			d.host.discardFirst()
			next = StatePretick
		} else {
			d.switchOffset, d.switchVel = d.switchMotion.Advance(d.switchOffset, d.switchVel, d.switchCeiling)
			d.host.relayout()
			delay = StepDuration
		}
	}

	d.state = next
	if delay == 0 {
		return d.step()
	}
	return delay
}

// reset zeroes both animations. The relayout that follows re-derives the
// finished flags, so a degenerate ceiling of zero is reported finished
// before the first animate step runs.
func (d *driver) reset() {
	d.tickOffset = 0
	d.tickVel = 0
	d.tickDone = false
	d.switchOffset = 0
	d.switchVel = 0
	d.switchDone = false
}
