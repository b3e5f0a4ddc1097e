// Package toast shows short auto-dismissing notices, such as a column file
// being reloaded or failing to parse.
package toast

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/miosa/osa-wheel/style"
)

// Level classifies toast severity.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

const (
	maxToasts = 3
	// DefaultTTL is how long a toast stays on screen.
	DefaultTTL = 4 * time.Second
)

// ExpireMsg asks the toasts to drop everything that expired by Time.
type ExpireMsg struct{ Time time.Time }

type toast struct {
	message string
	level   Level
	expiry  time.Time
}

// Model is a short queue of toasts, newest last.
type Model struct {
	queue []toast
	ttl   time.Duration
	now   func() time.Time
}

// New returns an empty queue.
func New() Model {
	return Model{ttl: DefaultTTL, now: time.Now}
}

// SetClock replaces the time source.
func (m *Model) SetClock(now func() time.Time) { m.now = now }

// Add enqueues a toast and returns the command that expires it. The oldest
// toasts are dropped beyond maxToasts.
func (m *Model) Add(message string, level Level) tea.Cmd {
	m.queue = append(m.queue, toast{
		message: message,
		level:   level,
		expiry:  m.now().Add(m.ttl),
	})
	if len(m.queue) > maxToasts {
		m.queue = m.queue[len(m.queue)-maxToasts:]
	}
	return tea.Tick(m.ttl, func(t time.Time) tea.Msg { return ExpireMsg{Time: t} })
}

// Update prunes expired toasts.
func (m Model) Update(msg tea.Msg) Model {
	e, ok := msg.(ExpireMsg)
	if !ok {
		return m
	}
	alive := m.queue[:0]
	for _, t := range m.queue {
		if e.Time.Before(t.expiry) {
			alive = append(alive, t)
		}
	}
	m.queue = alive
	return m
}

// Len is the number of visible toasts.
func (m Model) Len() int { return len(m.queue) }

// View renders the toasts right-aligned in width, one per line.
func (m Model) View(width int) string {
	if len(m.queue) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.queue))
	for _, t := range m.queue {
		icon, col := iconColor(t.level)
		text := fmt.Sprintf(" %s %s ", icon, t.message)
		rendered := lipgloss.NewStyle().Foreground(col).Render(text)
		pad := max(width-lipgloss.Width(rendered), 0)
		lines = append(lines, strings.Repeat(" ", pad)+rendered)
	}
	return strings.Join(lines, "\n")
}

func iconColor(level Level) (string, color.Color) {
	switch level {
	case Warning:
		return "\u26A0", style.Warning // ⚠
	case Error:
		return "\u2718", style.Error // ✘
	default:
		return "\u2713", style.Success // ✓
	}
}
