package reel

// DeckState is where a Reloader stands with the deck it watches.
type DeckState int32

const (
	// DeckAwaiting indicates the Reloader has not yet processed a deck.
	DeckAwaiting DeckState = iota

	// DeckPlaying indicates the latest deck is playing.
	DeckPlaying

	// DeckStale indicates the last deck change was rejected. The
	// previous deck keeps playing.
	DeckStale

	// DeckRejected indicates the initial deck was rejected and nothing is
	// playing. The Reloader keeps watching for a valid deck.
	DeckRejected
)

// String returns the string representation of the state.
func (s DeckState) String() string {
	switch s {
	case DeckAwaiting:
		return "awaiting"
	case DeckPlaying:
		return "playing"
	case DeckStale:
		return "stale"
	case DeckRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
