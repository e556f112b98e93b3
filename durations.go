package reel

import (
	"fmt"
	"time"
)

// Default phase durations.
const (
	DefaultShowDuration    = 3 * time.Second
	DefaultPauseDuration   = 100 * time.Millisecond
	DefaultFadeInDuration  = time.Second
	DefaultFadeOutDuration = time.Second
)

// Durations configures how long each phase of the cycle lasts.
// A zero field is treated as unspecified and takes its default.
type Durations struct {
	// Show is how long a slide stays fully visible.
	Show time.Duration

	// Pause is the gap between the swap and the start of the fade-in.
	Pause time.Duration

	// FadeIn is the length of the fade-in ramp.
	FadeIn time.Duration

	// FadeOut is the length of the fade-out ramp.
	FadeOut time.Duration
}

// WithDefaults returns a copy with every unspecified field set to its default.
func (d Durations) WithDefaults() Durations {
	if d.Show == 0 {
		d.Show = DefaultShowDuration
	}
	if d.Pause == 0 {
		d.Pause = DefaultPauseDuration
	}
	if d.FadeIn == 0 {
		d.FadeIn = DefaultFadeInDuration
	}
	if d.FadeOut == 0 {
		d.FadeOut = DefaultFadeOutDuration
	}
	return d
}

// Validate rejects negative durations.
func (d Durations) Validate() error {
	for _, f := range []struct {
		name string
		v    time.Duration
	}{
		{"show", d.Show},
		{"pause", d.Pause},
		{"fade in", d.FadeIn},
		{"fade out", d.FadeOut},
	} {
		if f.v < 0 {
			return fmt.Errorf("%s duration must not be negative, got %v", f.name, f.v)
		}
	}
	return nil
}

// Cycle returns the length of one full cycle, from the start of one
// fade-out to the start of the next.
func (d Durations) Cycle() time.Duration {
	return d.FadeOut + d.Pause + d.FadeIn + d.Show
}
