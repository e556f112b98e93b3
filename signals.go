package reel

import "github.com/zoobzio/capitan"

// Slideshow lifecycle signals.
var (
	// SlideshowStarted is emitted when a Slideshow begins or restarts its cycle.
	SlideshowStarted = capitan.NewSignal(
		"reel.slideshow.started",
		"Slideshow cycle started",
	)

	// SlideshowStopped is emitted when a running Slideshow is stopped.
	SlideshowStopped = capitan.NewSignal(
		"reel.slideshow.stopped",
		"Slideshow cycle stopped",
	)

	// SlideshowPhaseChanged is emitted on every phase transition.
	SlideshowPhaseChanged = capitan.NewSignal(
		"reel.slideshow.phase.changed",
		"Slideshow phase transition",
	)

	// SlideshowSlideShown is emitted when new content is swapped into the target.
	SlideshowSlideShown = capitan.NewSignal(
		"reel.slideshow.slide.shown",
		"Slide content swapped in",
	)
)

// Selection signals.
var (
	// SelectorRedraw is emitted when a random draw repeated the rendered
	// slide and had to be drawn again.
	SelectorRedraw = capitan.NewSignal(
		"reel.selector.redraw",
		"Random selection redrawn",
	)

	// SelectorExhausted is emitted when the random draw limit is reached.
	SelectorExhausted = capitan.NewSignal(
		"reel.selector.exhausted",
		"Random selection draw limit reached",
	)
)

// Deck reload signals.
var (
	// ReloaderStarted is emitted when a Reloader begins watching.
	ReloaderStarted = capitan.NewSignal(
		"reel.reloader.started",
		"Deck watching started",
	)

	// ReloaderStopped is emitted when a Reloader stops watching.
	ReloaderStopped = capitan.NewSignal(
		"reel.reloader.stopped",
		"Deck watching stopped",
	)

	// ReloaderStateChanged is emitted when a Reloader transitions between states.
	ReloaderStateChanged = capitan.NewSignal(
		"reel.reloader.state.changed",
		"Reloader state transition",
	)

	// ReloaderChangeReceived is emitted when raw deck data arrives from the watcher.
	ReloaderChangeReceived = capitan.NewSignal(
		"reel.reloader.change.received",
		"Raw deck change received",
	)

	// ReloaderDecodeFailed is emitted when deck data cannot be decoded.
	ReloaderDecodeFailed = capitan.NewSignal(
		"reel.reloader.decode.failed",
		"Deck decode failed",
	)

	// ReloaderValidationFailed is emitted when a decoded deck is invalid.
	ReloaderValidationFailed = capitan.NewSignal(
		"reel.reloader.validation.failed",
		"Deck validation failed",
	)

	// ReloaderApplyFailed is emitted when a valid deck cannot be started.
	ReloaderApplyFailed = capitan.NewSignal(
		"reel.reloader.apply.failed",
		"Deck apply failed",
	)

	// ReloaderApplySucceeded is emitted when a deck is playing.
	ReloaderApplySucceeded = capitan.NewSignal(
		"reel.reloader.apply.succeeded",
		"Deck applied successfully",
	)
)
