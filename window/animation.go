package window

import (
	"math"
	"time"
)

// Interpolator maps the elapsed fraction of an animation to the fraction of
// its distance covered. Both values are in [0, 1].
type Interpolator func(t float64) float64

// Linear covers the distance at constant speed.
func Linear(t float64) float64 {
	return t
}

// Decelerate starts fast and slows down toward the end.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

const (
	// MillisecondsPerInch is the time a smooth scroll spends on one inch of
	// distance.
	MillisecondsPerInch = 80.0

	// DefaultDensity is the dots per inch assumed when none is configured.
	DefaultDensity = 160.0

	// decelerationRatio relates the duration of a decelerating scroll to a
	// linear one over the same distance.
	decelerationRatio = 0.3356
)

// Velocity converts scroll distances into animation durations.
type Velocity struct {
	// Density is the output density in dots per inch.
	Density float64
}

// PerPixel returns the time spent on a single pixel.
func (v Velocity) PerPixel() float64 {
	density := v.Density
	if density <= 0 {
		density = DefaultDensity
	}
	return MillisecondsPerInch / density
}

// ScrollTime returns the duration of a linear scroll over distance pixels.
func (v Velocity) ScrollTime(distance int) time.Duration {
	return time.Duration(v.scrollMillis(distance)) * time.Millisecond
}

// DecelerationTime returns the duration of a decelerating scroll over
// distance pixels.
func (v Velocity) DecelerationTime(distance int) time.Duration {
	millis := math.Ceil(float64(v.scrollMillis(distance)) / decelerationRatio)
	return time.Duration(millis) * time.Millisecond
}

func (v Velocity) scrollMillis(distance int) int {
	return int(math.Ceil(math.Abs(float64(distance)) * v.PerPixel()))
}

// Animation spreads Delta over Duration. Each Step returns the integer part of
// the distance due since the previous step, so the steps of a finished
// animation always add up to Delta.
type Animation struct {
	Delta        int
	Duration     time.Duration
	Interpolator Interpolator

	applied int
}

// NewAnimation returns an animation covering delta over duration.
func NewAnimation(delta int, duration time.Duration, interpolator Interpolator) *Animation {
	return &Animation{
		Delta:        delta,
		Duration:     duration,
		Interpolator: interpolator,
	}
}

// Step returns the delta due at elapsed and whether the animation finished.
func (a *Animation) Step(elapsed time.Duration) (int, bool) {
	if a.Duration <= 0 || elapsed >= a.Duration {
		delta := a.Delta - a.applied
		a.applied = a.Delta
		return delta, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	interpolator := a.Interpolator
	if interpolator == nil {
		interpolator = Linear
	}
	t := float64(elapsed) / float64(a.Duration)
	target := int(math.Round(float64(a.Delta) * interpolator(t)))
	delta := target - a.applied
	a.applied = target
	return delta, false
}

// Remaining returns the distance not yet handed out.
func (a *Animation) Remaining() int {
	return a.Delta - a.applied
}

func scaleDuration(d time.Duration, factor float64) time.Duration {
	return time.Duration(float64(d) * factor)
}
