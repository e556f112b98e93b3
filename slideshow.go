package reel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
)

var (
	// ErrNilTarget is returned when a slideshow is started without a render target.
	ErrNilTarget = errors.New("nil render target")

	// ErrRunning is returned when an operation requires a stopped slideshow.
	ErrRunning = errors.New("slideshow is running")
)

// Config is the configuration a Slideshow is bound to.
type Config struct {
	Target    Target
	Slides    []string
	Durations Durations
	Strategy  Strategy
}

// Slideshow cycles content through a render target:
//
//	FadingOut → Swapping → Paused → FadingIn → FadingOut → ...
//
// Every transition is driven by a single one-shot timer on the
// Scheduler, so at most one phase timer is ever outstanding. The fade
// ramps it starts are owned by the slideshow too and are cancelled when
// a newer ramp begins or the slideshow stops.
//
// The first successful Start binds the configuration. Later calls to
// Start restart the cycle with the bound configuration and ignore their
// arguments; use Stop followed by Reset to rebind.
type Slideshow struct {
	sched    Scheduler
	selector *Selector
	metrics  MetricsProvider

	mu      sync.Mutex
	ctx     context.Context
	bound   bool
	config  Config
	index   int
	phase   Phase
	running bool
	gen     uint64
	timer   Handle
	ramp    *Ramp
}

// NewSlideshow creates an unbound Slideshow that schedules its phases on sched.
func NewSlideshow(sched Scheduler) *Slideshow {
	return &Slideshow{
		sched:    sched,
		selector: NewSelector(nil),
		index:    -1,
	}
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Selector sets the selector used for random slide choice.
// Must be called before Start().
func (s *Slideshow) Selector(sel *Selector) *Slideshow {
	s.selector = sel
	return s
}

// Metrics sets a metrics provider for observability integration.
// Callbacks run while the slideshow holds its lock and must not call
// back into it. Must be called before Start().
func (s *Slideshow) Metrics(provider MetricsProvider) *Slideshow {
	s.metrics = provider
	return s
}

// -----------------------------------------------------------------------------
// Introspection
// -----------------------------------------------------------------------------

// Phase returns the current phase.
func (s *Slideshow) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Running reports whether the cycle is active.
func (s *Slideshow) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Index returns the sequential position of the last swap, or -1 if
// nothing has been swapped in since binding.
func (s *Slideshow) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Config returns the bound configuration and true, or the zero Config and
// false if the slideshow is unbound.
func (s *Slideshow) Config() (Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.bound {
		return Config{}, false
	}
	cfg := s.config
	cfg.Slides = append([]string(nil), s.config.Slides...)
	return cfg, true
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Start binds the configuration on first use and begins the cycle with a
// fade-out of whatever the target currently shows.
//
// Zero durations take their defaults. Binding fails with ErrNilTarget,
// ErrNoSlides or a validation error, leaving the slideshow unbound. Once
// bound, Start ignores its arguments and restarts the cycle from
// FadingOut, cancelling any timer or ramp still pending.
//
// ctx is carried into emitted events; the cycle halts at the next phase
// boundary after ctx is cancelled.
func (s *Slideshow) Start(ctx context.Context, target Target, slides []string, d Durations, strategy Strategy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.bound {
		if err := s.bind(target, slides, d, strategy); err != nil {
			return err
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	s.halt()
	s.ctx = ctx
	s.running = true

	capitan.Emit(ctx, SlideshowStarted,
		KeyStrategy.Field(s.config.Strategy.String()),
		KeySlideCount.Field(len(s.config.Slides)),
		KeyCycle.Field(s.config.Durations.Cycle()),
	)

	s.fadeOut()
	return nil
}

// Stop halts the cycle. The pending phase timer and any in-flight ramp
// are cancelled; the target keeps whatever opacity and content it had.
// The configuration and index are retained. Stop on a stopped slideshow
// is a no-op.
func (s *Slideshow) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop()
}

// Reset unbinds a stopped slideshow so the next Start binds fresh
// arguments. It returns ErrRunning if the slideshow is running.
func (s *Slideshow) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunning
	}
	s.bound = false
	s.config = Config{}
	s.index = -1
	return nil
}

func (s *Slideshow) bind(target Target, slides []string, d Durations, strategy Strategy) error {
	if target == nil {
		return ErrNilTarget
	}
	if len(slides) == 0 {
		return ErrNoSlides
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid durations: %w", err)
	}
	if strategy != StrategyRandom && strategy != StrategySequential {
		return fmt.Errorf("invalid strategy %d", strategy)
	}

	s.config = Config{
		Target:    target,
		Slides:    append([]string(nil), slides...),
		Durations: d.WithDefaults(),
		Strategy:  strategy,
	}
	s.bound = true

	// A target that already renders one of the slides counts as showing it,
	// so a sequential show moves on to the slide after it.
	s.index = -1
	rendered := target.Content()
	for i, slide := range s.config.Slides {
		if slide == rendered {
			s.index = i
			break
		}
	}
	return nil
}

func (s *Slideshow) stop() {
	if !s.running {
		return
	}
	last := s.phase
	s.halt()
	s.running = false
	s.setPhase(PhaseIdle)

	capitan.Emit(s.ctx, SlideshowStopped,
		KeyPhase.Field(last.String()),
		KeySlideIndex.Field(s.index),
	)
}

// halt invalidates every callback scheduled so far and cancels the
// pending phase timer and ramp.
func (s *Slideshow) halt() {
	s.gen++
	if s.timer != nil {
		s.timer.Cancel()
		s.timer = nil
	}
	if s.ramp != nil {
		s.ramp.Cancel()
		s.ramp = nil
	}
}

// -----------------------------------------------------------------------------
// Phase machine
// -----------------------------------------------------------------------------

// fire handles expiry of the phase timer scheduled under generation gen.
func (s *Slideshow) fire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || gen != s.gen {
		return
	}
	s.timer = nil

	if s.ctx.Err() != nil {
		s.stop()
		return
	}

	switch s.phase {
	case PhaseFadingOut:
		s.swap()
	case PhasePaused:
		s.fadeIn()
	case PhaseFadingIn:
		s.fadeOut()
	}
}

func (s *Slideshow) fadeOut() {
	s.setPhase(PhaseFadingOut)
	s.startRamp(FadeOut(s.owned(), s.config.Target, s.config.Durations.FadeOut))
	s.schedule(s.config.Durations.FadeOut)
}

func (s *Slideshow) swap() {
	s.setPhase(PhaseSwapping)

	cfg := s.config
	s.index = Advance(s.index, len(cfg.Slides))
	sel, err := s.selector.Next(s.ctx, cfg.Strategy, cfg.Slides, s.index, cfg.Target.Content())
	if err != nil {
		s.stop()
		return
	}
	cfg.Target.SetContent(sel.Content)

	capitan.Emit(s.ctx, SlideshowSlideShown,
		KeySlideIndex.Field(sel.Index),
		KeyStrategy.Field(cfg.Strategy.String()),
	)
	if s.metrics != nil {
		s.metrics.OnSlideShown(sel.Index)
		if cfg.Strategy == StrategyRandom {
			s.metrics.OnSelection(sel.Draws, sel.Exhausted)
		}
	}

	s.setPhase(PhasePaused)
	s.schedule(cfg.Durations.Pause)
}

func (s *Slideshow) fadeIn() {
	s.setPhase(PhaseFadingIn)
	s.startRamp(FadeIn(s.owned(), s.config.Target, s.config.Durations.FadeIn))
	s.schedule(s.config.Durations.FadeIn + s.config.Durations.Show)
}

// schedule arms the phase timer, replacing any pending one.
func (s *Slideshow) schedule(delay time.Duration) {
	if s.timer != nil {
		s.timer.Cancel()
	}
	gen := s.gen
	s.timer = s.sched.ScheduleOnce(delay, func() {
		s.fire(gen)
	})
}

func (s *Slideshow) startRamp(r *Ramp) {
	if s.ramp != nil {
		s.ramp.Cancel()
	}
	s.ramp = r
}

func (s *Slideshow) setPhase(to Phase) {
	from := s.phase
	if from == to {
		return
	}
	s.phase = to
	capitan.Emit(s.ctx, SlideshowPhaseChanged,
		KeyOldPhase.Field(from.String()),
		KeyNewPhase.Field(to.String()),
	)
	if s.metrics != nil {
		s.metrics.OnPhaseChange(from, to)
	}
}

// current reports whether callbacks scheduled under gen are still live.
func (s *Slideshow) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running && s.gen == gen
}

// owned returns a scheduler whose callbacks become no-ops once the
// current generation is halted.
func (s *Slideshow) owned() Scheduler {
	return ownedScheduler{show: s, gen: s.gen}
}

type ownedScheduler struct {
	show *Slideshow
	gen  uint64
}

func (o ownedScheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	return o.show.sched.ScheduleOnce(delay, o.guard(fn))
}

func (o ownedScheduler) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	return o.show.sched.ScheduleRepeating(interval, o.guard(fn))
}

func (o ownedScheduler) guard(fn func()) func() {
	return func() {
		if o.show.current(o.gen) {
			fn()
		}
	}
}
