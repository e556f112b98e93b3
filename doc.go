/*
Package reel cycles content through a single render target with timed
cross-fades.

A Slideshow drives one Target through a fixed cycle:

	FadingOut → Swapping → Paused → FadingIn → FadingOut → ...

The fade phases ramp the target's opacity in ten steps. The swap chooses
the next slide, in order or at random without an immediate repeat, and
replaces the target's content while it is invisible.

# Basic Usage

	loop := reel.NewLoop()
	go loop.Run(ctx)

	show := reel.NewSlideshow(loop)
	err := show.Start(ctx, target, []string{"<b>1</b>", "<b>2</b>"},
	    reel.Durations{Show: 5 * time.Second}, reel.StrategySequential)

Zero durations take their defaults: 3s show, 100ms pause, 1s fades.

The first successful Start binds the target, slides, durations and
strategy. Later calls restart the cycle but keep that configuration.
Call Stop then Reset to bind a different one.

# Scheduling

Every timer goes through a Scheduler. Loop runs callbacks on a single
goroutine against a clockz.Clock. ManualScheduler runs them synchronously
as virtual time is advanced, which makes whole cycles testable without
sleeping:

	sched := reel.NewManualScheduler()
	show := reel.NewSlideshow(sched)
	_ = show.Start(ctx, target, slides, reel.Durations{}, reel.StrategyRandom)
	sched.Advance(5 * time.Second)

# Decks

A Deck is the file form of a slideshow, readable as YAML, JSON or TOML.
A Reloader watches a deck source, validates every change and rebinds the
slideshow, leaving the previous deck playing when a change is rejected:

	reloader := reel.NewReloader(reel.NewFileWatcher("deck.yaml"), show, target).
	    Codec(reel.CodecFor("deck.yaml"))
	err := reloader.Start(ctx)

# Observability

Lifecycle events are emitted as capitan signals (SlideshowPhaseChanged,
SlideshowSlideShown, ReloaderStateChanged and others). A MetricsProvider
receives synchronous callbacks for the same events.
*/
package reel
