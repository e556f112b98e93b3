package reel

// Phase is one stage of the slideshow cycle.
type Phase int32

const (
	// PhaseIdle indicates the slideshow is not running.
	PhaseIdle Phase = iota

	// PhaseFadingOut indicates the current slide is fading out.
	PhaseFadingOut

	// PhaseSwapping indicates the next slide is being chosen and rendered.
	// It lasts no virtual time; the controller moves on to PhasePaused
	// in the same callback.
	PhaseSwapping

	// PhasePaused indicates the new slide is rendered but still invisible.
	PhasePaused

	// PhaseFadingIn indicates the new slide is fading in. The phase covers
	// both the fade and the time the slide stays on screen afterwards.
	PhaseFadingIn
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFadingOut:
		return "fading-out"
	case PhaseSwapping:
		return "swapping"
	case PhasePaused:
		return "paused"
	case PhaseFadingIn:
		return "fading-in"
	default:
		return "unknown"
	}
}
