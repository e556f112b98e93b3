package reel

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/zoobzio/capitan"
)

// DefaultMaxDraws bounds how many random draws the selector makes while
// looking for a slide that differs from the rendered one.
const DefaultMaxDraws = 16

// ErrNoSlides is returned when a slideshow or selection is given no slides.
var ErrNoSlides = errors.New("no slides")

// Strategy governs which slide is shown next.
type Strategy int

const (
	// StrategyRandom draws a random slide, never repeating the content
	// currently rendered when another slide is available. This is the default.
	StrategyRandom Strategy = iota

	// StrategySequential shows slides in order, wrapping to the first
	// after the last.
	StrategySequential
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategySequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to a Strategy. An empty name selects
// the default, StrategyRandom.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "random":
		return StrategyRandom, nil
	case "sequential":
		return StrategySequential, nil
	default:
		return StrategyRandom, fmt.Errorf("unknown strategy %q", name)
	}
}

// Selection is the outcome of choosing the next slide.
type Selection struct {
	// Index is the position in the slide list of the chosen content.
	Index int

	// Content is the chosen slide.
	Content string

	// Draws is the number of random draws made. Zero for sequential.
	Draws int

	// Exhausted is set when the draw limit was hit and the selector fell
	// back to scanning for a differing slide.
	Exhausted bool
}

// Selector chooses slide content. The zero value is not usable; create
// one with NewSelector.
type Selector struct {
	mu       sync.Mutex
	rng      *rand.Rand
	maxDraws int
}

// NewSelector creates a Selector drawing from src. A nil src uses a
// randomly seeded PCG source.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Selector{
		rng:      rand.New(src), //nolint:gosec // slide order is not security sensitive
		maxDraws: DefaultMaxDraws,
	}
}

// MaxDraws sets the random draw limit. Values below 1 are raised to 1.
func (s *Selector) MaxDraws(n int) *Selector {
	if n < 1 {
		n = 1
	}
	s.maxDraws = n
	return s
}

// Advance moves a sequential index one step forward, wrapping to 0 after
// the last slide. An index of -1 means nothing has been shown yet.
func Advance(index, count int) int {
	if count <= 0 || index >= count-1 {
		return 0
	}
	return index + 1
}

// Next chooses the slide to display.
//
// Under StrategySequential it returns slides[index]; the caller advances
// index beforehand with Advance. Under StrategyRandom index is ignored and
// a slide is drawn whose content differs from rendered, the content the
// target shows right now. Draws are capped at the configured limit; past
// it the selector scans from a random offset for any differing slide. A
// single slide, or slides that all equal rendered, are returned as-is.
func (s *Selector) Next(ctx context.Context, strategy Strategy, slides []string, index int, rendered string) (Selection, error) {
	if len(slides) == 0 {
		return Selection{}, ErrNoSlides
	}

	if strategy == StrategySequential {
		if index < 0 || index >= len(slides) {
			return Selection{}, fmt.Errorf("index %d out of range for %d slides", index, len(slides))
		}
		return Selection{Index: index, Content: slides[index]}, nil
	}

	if len(slides) == 1 {
		return Selection{Index: 0, Content: slides[0], Draws: 1}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for draw := 1; draw <= s.maxDraws; draw++ {
		i := s.rng.IntN(len(slides))
		if slides[i] != rendered {
			if draw > 1 {
				capitan.Emit(ctx, SelectorRedraw,
					KeyDraws.Field(draw),
				)
			}
			return Selection{Index: i, Content: slides[i], Draws: draw}, nil
		}
	}

	capitan.Emit(ctx, SelectorExhausted,
		KeyDraws.Field(s.maxDraws),
		KeySlideCount.Field(len(slides)),
	)

	offset := s.rng.IntN(len(slides))
	for n := 0; n < len(slides); n++ {
		i := (offset + n) % len(slides)
		if slides[i] != rendered {
			return Selection{Index: i, Content: slides[i], Draws: s.maxDraws, Exhausted: true}, nil
		}
	}
	return Selection{Index: offset, Content: slides[offset], Draws: s.maxDraws, Exhausted: true}, nil
}
