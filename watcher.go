package reel

import "context"

// Watcher observes a deck source and emits its raw bytes on a channel.
// Implementations must emit the current deck immediately upon Watch() so
// the first deck can start playing.
type Watcher interface {
	// Watch begins observing the source. The returned channel is closed
	// when ctx is cancelled or the source becomes unreadable for good.
	Watch(ctx context.Context) (<-chan []byte, error)
}
