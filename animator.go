package strip

import (
	"time"

	"github.com/korok/strip/window"
)

// frameInterval is the time between two animation ticks.
const frameInterval = 16 * time.Millisecond

// animator runs at most one scroll animation. Starting a new one discards
// whatever distance the previous one had left.
type animator struct {
	current *window.Animation
	started time.Time

	// clock returns the current time; tests replace it.
	clock func() time.Time
}

func (a *animator) now() time.Time {
	if a.clock != nil {
		return a.clock()
	}
	return time.Now()
}

func (a *animator) start(delta int, duration time.Duration, interpolator window.Interpolator) {
	if delta == 0 {
		a.current = nil
		return
	}
	a.current = window.NewAnimation(delta, duration, interpolator)
	a.started = a.now()
}

func (a *animator) stop() {
	a.current = nil
}

func (a *animator) running() bool {
	return a.current != nil
}

// step returns the delta due at now. ok is false if nothing is running.
func (a *animator) step(now time.Time) (delta int, done bool, ok bool) {
	if a.current == nil {
		return 0, false, false
	}
	delta, done = a.current.Step(now.Sub(a.started))
	return delta, done, true
}

// tick advances the running animation by applying its due delta through
// apply. afterStep runs once the delta is applied and may start a new
// animation. The animation is dropped when it finished or apply refused to
// move at all.
func (a *animator) tick(now time.Time, apply func(delta int) int, afterStep func()) bool {
	current := a.current
	delta, done, ok := a.step(now)
	if !ok {
		return false
	}
	applied := 0
	if delta != 0 {
		applied = apply(delta)
	}
	if afterStep != nil {
		afterStep()
	}
	if a.current == current && (done || (delta != 0 && applied == 0)) {
		a.current = nil
	}
	return true
}
