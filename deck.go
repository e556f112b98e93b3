package reel

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// Deck is the file form of a slideshow: its slides, selection strategy
// and phase timings in milliseconds.
//
//	strategy: sequential
//	durations:
//	  show: 3000
//	  fade_in: 500
//	slides:
//	  - "<b>1</b>"
//	  - "<b>2</b>"
type Deck struct {
	Slides   []string   `json:"slides" yaml:"slides" toml:"slides" validate:"required,min=1"`
	Strategy string     `json:"strategy" yaml:"strategy" toml:"strategy" validate:"omitempty,oneof=random sequential"`
	Timing   DeckTiming `json:"durations" yaml:"durations" toml:"durations"`
}

// DeckTiming holds phase durations in milliseconds. Zero means default;
// no phase may exceed a day.
type DeckTiming struct {
	Show    int64 `json:"show" yaml:"show" toml:"show" validate:"gte=0,lte=86400000"`
	Pause   int64 `json:"pause" yaml:"pause" toml:"pause" validate:"gte=0,lte=86400000"`
	FadeIn  int64 `json:"fade_in" yaml:"fade_in" toml:"fade_in" validate:"gte=0,lte=86400000"`
	FadeOut int64 `json:"fade_out" yaml:"fade_out" toml:"fade_out" validate:"gte=0,lte=86400000"`
}

// Validate checks the deck's struct constraints. Strategy names are
// matched without regard to case or surrounding space, as in ParseStrategy.
func (d Deck) Validate() error {
	d.Strategy = strings.ToLower(strings.TrimSpace(d.Strategy))
	return validate.Struct(d)
}

// Durations converts the deck timing to Durations. Unset fields stay zero
// and take their defaults when bound to a Slideshow.
func (d Deck) Durations() Durations {
	return Durations{
		Show:    time.Duration(d.Timing.Show) * time.Millisecond,
		Pause:   time.Duration(d.Timing.Pause) * time.Millisecond,
		FadeIn:  time.Duration(d.Timing.FadeIn) * time.Millisecond,
		FadeOut: time.Duration(d.Timing.FadeOut) * time.Millisecond,
	}
}

// Mode returns the deck's strategy.
func (d Deck) Mode() (Strategy, error) {
	return ParseStrategy(d.Strategy)
}

// DecodeDeck unmarshals and validates a deck.
func DecodeDeck(data []byte, codec Codec) (Deck, error) {
	var deck Deck
	if err := codec.Unmarshal(data, &deck); err != nil {
		return Deck{}, fmt.Errorf("decode %s deck: %w", codec.ContentType(), err)
	}
	if err := deck.Validate(); err != nil {
		return Deck{}, fmt.Errorf("invalid deck: %w", err)
	}
	return deck, nil
}

// LoadDeck reads and decodes the deck at path, choosing the codec from
// the file extension.
func LoadDeck(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	return DecodeDeck(data, CodecFor(path))
}
