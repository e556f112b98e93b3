package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// opacityMsg carries a new opacity to the model.
type opacityMsg float64

// contentMsg carries new slide content to the model.
type contentMsg string

// sender is the part of *tea.Program a Target needs.
type sender interface {
	Send(msg tea.Msg)
}

// Target is a reel.Target backed by a Bubble Tea program. It keeps its own
// copy of the rendered content so Content never waits on the program.
type Target struct {
	mu      sync.RWMutex
	content string
	opacity float64
	program sender
}

// NewTarget creates a fully opaque, empty Target.
func NewTarget() *Target {
	return &Target{opacity: 1}
}

// Attach routes later changes to p. State set before Attach reaches the
// program through NewModel.
func (t *Target) Attach(p sender) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.program = p
}

// SetOpacity applies opacity.
func (t *Target) SetOpacity(opacity float64) {
	t.mu.Lock()
	t.opacity = opacity
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(opacityMsg(opacity))
	}
}

// SetContent replaces the rendered content.
func (t *Target) SetContent(content string) {
	t.mu.Lock()
	t.content = content
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(contentMsg(content))
	}
}

// Content returns the rendered content.
func (t *Target) Content() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.content
}

// snapshot returns the current content and opacity.
func (t *Target) snapshot() (string, float64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.content, t.opacity
}
