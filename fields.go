package reel

import "github.com/zoobzio/capitan"

// Field keys for slideshow events.
var (
	// KeyPhase is the phase a slideshow was in when the event fired.
	KeyPhase = capitan.NewStringKey("phase")

	// KeyOldPhase is the phase before a transition.
	KeyOldPhase = capitan.NewStringKey("old_phase")

	// KeyNewPhase is the phase after a transition.
	KeyNewPhase = capitan.NewStringKey("new_phase")

	// KeyStrategy is the configured selection strategy.
	KeyStrategy = capitan.NewStringKey("strategy")

	// KeySlideIndex is the position of the slide swapped in.
	KeySlideIndex = capitan.NewIntKey("slide_index")

	// KeySlideCount is the number of configured slides.
	KeySlideCount = capitan.NewIntKey("slide_count")

	// KeyDraws is the number of random draws made for one selection.
	KeyDraws = capitan.NewIntKey("draws")

	// KeyCycle is the length of one full slideshow cycle.
	KeyCycle = capitan.NewDurationKey("cycle")
)

// Field keys for reloader events.
var (
	// KeyState is the current state of the Reloader.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDebounce is the configured debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")
)
