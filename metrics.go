package reel

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive synchronous callbacks on slideshow
// and reloader events.
type MetricsProvider interface {
	// OnPhaseChange is called when a slideshow transitions between phases.
	OnPhaseChange(from, to Phase)

	// OnSlideShown is called when a slide is swapped into the target.
	OnSlideShown(index int)

	// OnSelection is called after every random selection with the number
	// of draws it took.
	OnSelection(draws int, exhausted bool)

	// OnReloadSuccess is called when a reloaded deck starts playing.
	OnReloadSuccess(duration time.Duration)

	// OnReloadFailure is called when a reload fails.
	// Stage indicates where the failure occurred: "decode", "validate", or "apply".
	OnReloadFailure(stage string, duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnPhaseChange(_, _ Phase)                  {}
func (NoOpMetricsProvider) OnSlideShown(_ int)                        {}
func (NoOpMetricsProvider) OnSelection(_ int, _ bool)                 {}
func (NoOpMetricsProvider) OnReloadSuccess(_ time.Duration)           {}
func (NoOpMetricsProvider) OnReloadFailure(_ string, _ time.Duration) {}
