package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the Bubble Tea model of the player.
type Model struct {
	title   string
	target  *Target
	keys    keyMap
	styles  styles
	content string
	opacity float64
	width   int
	height  int
}

// NewModel creates a model showing target under title.
func NewModel(title string, target *Target) Model {
	content, opacity := target.snapshot()
	return Model{
		title:   title,
		target:  target,
		keys:    defaultKeyMap(),
		styles:  newStyles(),
		content: content,
		opacity: opacity,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case opacityMsg:
		m.opacity = float64(msg)
		return m, nil

	case contentMsg:
		m.content = string(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	slide := m.styles.Slide.
		Foreground(shade(m.opacity)).
		BorderForeground(shade(m.opacity)).
		Render(m.content)
	footer := m.styles.Footer.Render(m.title + "  ·  " + m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc)

	if m.width == 0 || m.height == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, slide, footer)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, slide)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// Run starts the program and routes target changes into it. It blocks
// until the user quits or ctx is cancelled; cancellation is not an error.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.target.Attach(p)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
