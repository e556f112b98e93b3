package reel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for deck changes.
const DefaultDebounce = 100 * time.Millisecond

// Reloader plays the deck emitted by a Watcher on a Slideshow and swaps
// in every later deck that decodes and validates:
//
//	Source → Decode → Validate → Stop/Reset/Start
//
// A rejected deck leaves the previous one playing and moves the Reloader
// to DeckStale.
type Reloader struct {
	watcher  Watcher
	show     *Slideshow
	target   Target
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock
	codec    Codec
	metrics  MetricsProvider
	onStop   func(DeckState)

	state        atomic.Int32
	current      atomic.Pointer[Deck]
	lastError    atomic.Pointer[error]
	errorHistory *errorRing

	mu      sync.Mutex
	started bool

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// NewReloader creates a Reloader that plays decks from watcher on show,
// rendering into target.
func NewReloader(watcher Watcher, show *Slideshow, target Target) *Reloader {
	r := &Reloader{
		watcher:  watcher,
		show:     show,
		target:   target,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		codec:    YAMLCodec{},
	}
	r.state.Store(int32(DeckAwaiting))
	return r
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Debounce sets the debounce duration for deck changes.
// Changes arriving within this duration are coalesced into a single reload.
// Default: 100ms. Must be called before Start().
func (r *Reloader) Debounce(d time.Duration) *Reloader {
	r.debounce = d
	return r
}

// SyncMode enables synchronous processing for testing.
// In sync mode, Start only processes the initial deck and Process() must
// be called for each later one. Must be called before Start().
func (r *Reloader) SyncMode() *Reloader {
	r.syncMode = true
	return r
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic debounce testing.
// Must be called before Start().
func (r *Reloader) Clock(clock clockz.Clock) *Reloader {
	r.clock = clock
	return r
}

// Codec sets the codec for decoding decks.
// Default: YAMLCodec. Must be called before Start().
func (r *Reloader) Codec(codec Codec) *Reloader {
	r.codec = codec
	return r
}

// Metrics sets a metrics provider for reload outcomes.
// Must be called before Start().
func (r *Reloader) Metrics(provider MetricsProvider) *Reloader {
	r.metrics = provider
	return r
}

// OnStop sets a callback invoked with the final state when watching ends.
// Must be called before Start().
func (r *Reloader) OnStop(fn func(DeckState)) *Reloader {
	r.onStop = fn
	return r
}

// ErrorHistorySize sets the number of recent reload failures to retain.
// Use 0 (default) to only retain the most recent error via LastError().
// Must be called before Start().
func (r *Reloader) ErrorHistorySize(n int) *Reloader {
	r.errorHistory = newErrorRing(n)
	return r
}

// State returns the current state of the Reloader.
func (r *Reloader) State() DeckState {
	return DeckState(r.state.Load())
}

// Current returns the deck playing and true, or the zero Deck and false if
// no deck has been applied.
func (r *Reloader) Current() (Deck, bool) {
	ptr := r.current.Load()
	if ptr == nil {
		return Deck{}, false
	}
	return *ptr, true
}

// LastError returns the last error encountered, or nil after a success.
func (r *Reloader) LastError() error {
	ptr := r.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns recent reload failures, oldest first.
// Returns nil if error history is not enabled (see ErrorHistorySize).
func (r *Reloader) ErrorHistory() []ReloadError {
	return r.errorHistory.all()
}

// Start waits for the first deck, plays it, then keeps watching in the
// background until ctx is cancelled. The slideshow is stopped when
// watching ends.
//
// If the first deck is rejected, Start returns the error but keeps
// watching for a valid one. Start can only be called once.
func (r *Reloader) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return errors.New("reloader already started")
	}
	r.started = true
	r.mu.Unlock()

	capitan.Emit(ctx, ReloaderStarted,
		KeyDebounce.Field(r.debounce),
	)

	changes, err := r.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	var initialErr error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return errors.New("watcher closed before emitting initial deck")
		}
		capitan.Emit(ctx, ReloaderChangeReceived)
		initialErr = r.process(ctx, raw)
	}

	if r.syncMode {
		r.changes = changes
		return initialErr
	}

	go r.watch(ctx, changes)

	return initialErr
}

// Process reads and applies the next deck from the watcher.
// This is only available in sync mode and is used for deterministic testing.
// Returns false if no deck is available or the channel is closed.
func (r *Reloader) Process(ctx context.Context) bool {
	if !r.syncMode {
		return false
	}

	select {
	case raw, ok := <-r.changes:
		if !ok {
			return false
		}
		capitan.Emit(ctx, ReloaderChangeReceived)
		_ = r.process(ctx, raw) //nolint:errcheck // Errors stored via setError
		return true
	default:
		return false
	}
}

// process decodes, validates and plays a single deck.
func (r *Reloader) process(ctx context.Context, raw []byte) error {
	start := r.clock.Now()
	oldState := r.State()

	var deck Deck
	if err := r.codec.Unmarshal(raw, &deck); err != nil {
		r.fail(ctx, oldState, "decode", start, err)
		capitan.Emit(ctx, ReloaderDecodeFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("decode failed: %w", err)
	}

	if err := deck.Validate(); err != nil {
		r.fail(ctx, oldState, "validate", start, err)
		capitan.Emit(ctx, ReloaderValidationFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := r.apply(ctx, deck); err != nil {
		r.fail(ctx, oldState, "apply", start, err)
		capitan.Emit(ctx, ReloaderApplyFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("apply failed: %w", err)
	}

	r.current.Store(&deck)
	r.lastError.Store(nil)
	r.errorHistory.clear()
	r.transitionState(ctx, oldState, DeckPlaying)
	capitan.Emit(ctx, ReloaderApplySucceeded,
		KeySlideCount.Field(len(deck.Slides)),
	)
	if r.metrics != nil {
		r.metrics.OnReloadSuccess(r.clock.Since(start))
	}
	return nil
}

// apply rebinds the slideshow to deck. The strategy is resolved before the
// running show is touched, so a deck that cannot start leaves the old one
// playing.
func (r *Reloader) apply(ctx context.Context, deck Deck) error {
	strategy, err := deck.Mode()
	if err != nil {
		return err
	}
	durations := deck.Durations()
	if err := durations.Validate(); err != nil {
		return err
	}

	r.show.Stop()
	if err := r.show.Reset(); err != nil {
		return err
	}
	return r.show.Start(ctx, r.target, deck.Slides, durations, strategy)
}

// fail records a failed reload at stage.
func (r *Reloader) fail(ctx context.Context, oldState DeckState, stage string, start time.Time, err error) {
	r.setError(ReloadError{At: r.clock.Now(), Stage: stage, Err: err})
	r.transitionState(ctx, oldState, r.failureState())
	if r.metrics != nil {
		r.metrics.OnReloadFailure(stage, r.clock.Since(start))
	}
}

// failureState returns the appropriate failure state based on whether
// a deck has ever been applied.
func (r *Reloader) failureState() DeckState {
	if r.current.Load() == nil {
		return DeckRejected
	}
	return DeckStale
}

// transitionState updates the state and emits a state change event if changed.
func (r *Reloader) transitionState(ctx context.Context, oldState, newState DeckState) {
	if oldState == newState {
		return
	}
	r.state.Store(int32(newState))
	capitan.Emit(ctx, ReloaderStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
}

// setError stores an error atomically and adds it to the error history.
func (r *Reloader) setError(e ReloadError) {
	var err error = e
	r.lastError.Store(&err)
	r.errorHistory.push(e)
}

// watch applies decks from the watcher channel with debouncing.
func (r *Reloader) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		r.show.Stop()
		finalState := r.State()
		capitan.Emit(ctx, ReloaderStopped,
			KeyState.Field(finalState.String()),
		)
		if r.onStop != nil {
			r.onStop(finalState)
		}
	}()

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				if hasPending {
					_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				}
				return
			}

			capitan.Emit(ctx, ReloaderChangeReceived)
			pending = raw
			hasPending = true

			if timer == nil {
				timer = r.clock.NewTimer(r.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(r.debounce)
			}

		case <-timerC:
			if hasPending {
				_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				hasPending = false
			}
		}
	}
}
