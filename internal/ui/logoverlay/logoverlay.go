// Package logoverlay is an in-app viewer for the debug log. It tails the log
// broker and keeps the most recent entries in memory.
package logoverlay

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/ui/overlay"
)

const (
	// DefaultCapacity is the number of entries kept when New is given zero.
	DefaultCapacity = 500

	viewportMaxHeight = 20
	viewportMinHeight = 3
	boxMaxWidth       = 140
	boxMinWidth       = 30

	defaultWidth  = 80
	defaultHeight = 24
)

var (
	borderColor = lipgloss.Color("#696969")
	titleColor  = lipgloss.Color("#7D56F4")
	mutedColor  = lipgloss.Color("#8A8A8A")
	textColor   = lipgloss.Color("#DDDDDD")
	errorColor  = lipgloss.Color("#FF5F87")
	warnColor   = lipgloss.Color("#FFB000")
	infoColor   = lipgloss.Color("#368BD6")
)

// Model is the log viewer state.
type Model struct {
	entries  []string
	capacity int
	visible  bool
	minLevel log.Level
	width    int
	height   int
	viewport viewport.Model
	listener *log.LogListener
}

// New creates a hidden overlay keeping at most capacity entries.
func New(capacity int) Model {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return Model{capacity: capacity, minLevel: log.LevelDebug}
}

// Listen starts tailing the log for the lifetime of ctx. The returned command
// delivers the first entry; it is nil when logging is off.
func (m Model) Listen(ctx context.Context) (Model, tea.Cmd) {
	m.listener = log.NewListener(ctx)
	return m, m.Next()
}

// Listening reports whether the overlay is attached to the log.
func (m Model) Listening() bool { return m.listener != nil }

// Next waits for the next log entry.
func (m Model) Next() tea.Cmd {
	if m.listener == nil {
		return nil
	}
	return m.listener.Listen()
}

// Entries returns the buffered entries, oldest first.
func (m Model) Entries() []string { return m.entries }

// Append adds an entry, dropping the oldest past capacity.
func (m Model) Append(entry string) Model {
	entry = strings.TrimSuffix(entry, "\n")
	if len(m.entries) >= m.capacity {
		m.entries = append(m.entries[:0:0], m.entries[len(m.entries)-m.capacity+1:]...)
	}
	m.entries = append(m.entries, entry)
	if m.visible {
		atBottom := m.viewport.AtBottom()
		m = m.refresh()
		if atBottom {
			m.viewport.GotoBottom()
		}
	}
	return m
}

// Update handles log events, resizes and, while visible, keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case log.LogEvent:
		return m.Append(msg.Payload), m.Next()

	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		switch msg.String() {
		case "c":
			m.entries = nil
			return m.refresh(), nil
		case "d":
			return m.filter(log.LevelDebug), nil
		case "i":
			return m.filter(log.LevelInfo), nil
		case "w":
			return m.filter(log.LevelWarn), nil
		case "e":
			return m.filter(log.LevelError), nil
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "esc":
			return m.Hide(), nil
		}
	}
	return m, nil
}

// Visible reports whether the overlay is showing.
func (m Model) Visible() bool { return m.visible }

// Toggle shows or hides the overlay.
func (m Model) Toggle() Model {
	if m.visible {
		return m.Hide()
	}
	return m.Show()
}

// Show makes the overlay visible, scrolled to the newest entry.
func (m Model) Show() Model {
	m.visible = true
	m = m.refresh()
	m.viewport.GotoBottom()
	return m
}

// Hide hides the overlay.
func (m Model) Hide() Model {
	m.visible = false
	return m
}

// SetSize records the screen size.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	if m.visible {
		m = m.refresh()
	}
	return m
}

// MinLevel returns the active filter.
func (m Model) MinLevel() log.Level { return m.minLevel }

// View renders the overlay box, or nothing when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	width := m.boxWidth()
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(strings.Repeat("─", width))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(titleColor).PaddingLeft(1).Render("Logs"))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.hints())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Render(b.String())
}

// Overlay draws the overlay centered over bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{Width: width, Height: height, Position: overlay.Center}, m.View(), bg)
}

func (m Model) filter(level log.Level) Model {
	m.minLevel = level
	m = m.refresh()
	m.viewport.GotoBottom()
	return m
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m Model) boxWidth() int {
	w, _ := m.size()
	return max(min(w-4, boxMaxWidth), boxMinWidth)
}

// refresh rebuilds the viewport for the current size and filter.
func (m Model) refresh() Model {
	_, h := m.size()
	// title, two dividers, hints and the border take six lines
	height := max(min(viewportMaxHeight, h-6), viewportMinHeight)
	contentWidth := m.boxWidth() - 2

	offset := m.viewport.YOffset
	m.viewport = viewport.New(contentWidth, height)
	m.viewport.SetContent(m.content(contentWidth))
	m.viewport.SetYOffset(offset)
	return m
}

func (m Model) content(width int) string {
	var lines []string
	for _, entry := range m.entries {
		level, ok := levelOf(entry)
		if ok && level < m.minLevel {
			continue
		}
		if ansi.StringWidth(entry) > width {
			entry = ansi.Truncate(entry, width, "…")
		}
		lines = append(lines, entryStyle(level, ok).Render(entry))
	}
	if len(lines) == 0 {
		return lipgloss.NewStyle().Foreground(mutedColor).Italic(true).Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

func (m Model) hints() string {
	muted := lipgloss.NewStyle().Foreground(mutedColor)
	active := lipgloss.NewStyle().Foreground(textColor).Bold(true)

	hints := []string{muted.Render("[c] Clear")}
	for _, f := range []struct {
		level log.Level
		label string
	}{
		{log.LevelDebug, "[d] Debug"},
		{log.LevelInfo, "[i] Info"},
		{log.LevelWarn, "[w] Warn"},
		{log.LevelError, "[e] Error"},
	} {
		if f.level == m.minLevel {
			hints = append(hints, active.Render(f.label))
		} else {
			hints = append(hints, muted.Render(f.label))
		}
	}
	hints = append(hints, muted.Render("[esc] Close"))
	return strings.Join(hints, "  ")
}

// levelOf reads the level tag written by log.Format.
func levelOf(entry string) (log.Level, bool) {
	for _, level := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug} {
		if strings.Contains(entry, "["+level.String()+"]") {
			return level, true
		}
	}
	return log.LevelDebug, false
}

func entryStyle(level log.Level, known bool) lipgloss.Style {
	if !known {
		return lipgloss.NewStyle().Foreground(textColor)
	}
	switch level {
	case log.LevelError:
		return lipgloss.NewStyle().Foreground(errorColor)
	case log.LevelWarn:
		return lipgloss.NewStyle().Foreground(warnColor)
	case log.LevelInfo:
		return lipgloss.NewStyle().Foreground(infoColor)
	default:
		return lipgloss.NewStyle().Foreground(mutedColor)
	}
}
