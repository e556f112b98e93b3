package reel

import "sync"

// Target is the render target a slideshow mutates: a single element whose
// opacity and content are owned by the embedding application.
type Target interface {
	// SetOpacity applies an opacity between 0.0 and 1.0.
	SetOpacity(opacity float64)

	// SetContent replaces the entire rendered content.
	SetContent(content string)

	// Content returns the content currently rendered.
	Content() string
}

// MemoryTarget is an in-memory Target that records what was applied to it.
// Useful for testing and for headless hosts.
type MemoryTarget struct {
	mu        sync.RWMutex
	opacity   float64
	content   string
	contents  []string
	opacities []float64
}

// NewMemoryTarget creates a fully opaque MemoryTarget showing content.
func NewMemoryTarget(content string) *MemoryTarget {
	return &MemoryTarget{opacity: 1, content: content}
}

// SetOpacity records and applies opacity.
func (m *MemoryTarget) SetOpacity(opacity float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opacity = opacity
	m.opacities = append(m.opacities, opacity)
}

// SetContent records and applies content.
func (m *MemoryTarget) SetContent(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = content
	m.contents = append(m.contents, content)
}

// Content returns the current content.
func (m *MemoryTarget) Content() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.content
}

// Opacity returns the current opacity.
func (m *MemoryTarget) Opacity() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.opacity
}

// Contents returns every content swap applied so far, oldest first.
func (m *MemoryTarget) Contents() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.contents))
	copy(out, m.contents)
	return out
}

// Opacities returns every opacity applied so far, oldest first.
func (m *MemoryTarget) Opacities() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]float64, len(m.opacities))
	copy(out, m.opacities)
	return out
}

// Ensure MemoryTarget implements Target.
var _ Target = (*MemoryTarget)(nil)
