package reel

import "context"

// ChannelWatcher hands out an existing byte channel as a Watcher.
// Useful for testing and for hosts that already produce deck bytes.
type ChannelWatcher struct {
	ch <-chan []byte
}

// NewChannelWatcher wraps ch. Watch returns ch itself, so values sent on
// it reach the Reloader without an intermediate goroutine.
func NewChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch}
}

// Watch returns the wrapped channel.
func (w *ChannelWatcher) Watch(_ context.Context) (<-chan []byte, error) {
	return w.ch, nil
}

// Ensure ChannelWatcher implements Watcher.
var _ Watcher = (*ChannelWatcher)(nil)
