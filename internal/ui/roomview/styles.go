package roomview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/parlor/internal/config"
)

// avatarColors is indexed by RoomViewModel.AvatarColorNumber()-1.
var avatarColors = [8]lipgloss.Color{
	"#368BD6", "#AC3BA8", "#03B381", "#E64F7A",
	"#FF812D", "#2DC2C5", "#5C56F5", "#74D12C",
}

// Styles holds the rendered look of the room view.
type Styles struct {
	Header    lipgloss.Style
	Sender    lipgloss.Style
	Timestamp lipgloss.Style
	Emote     lipgloss.Style
	Reply     lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Archived  lipgloss.Style
	Call      lipgloss.Style
	Details   lipgloss.Style
}

// NewStyles builds styles from the configured theme.
func NewStyles(theme config.ThemeConfig) Styles {
	accent := lipgloss.Color(theme.Accent)
	subtle := lipgloss.Color(theme.Subtle)
	errColor := lipgloss.Color(theme.Error)

	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Sender:    lipgloss.NewStyle().Bold(true),
		Timestamp: lipgloss.NewStyle().Foreground(subtle),
		Emote:     lipgloss.NewStyle().Italic(true),
		Reply:     lipgloss.NewStyle().Foreground(subtle),
		Error:     lipgloss.NewStyle().Foreground(errColor),
		Status:    lipgloss.NewStyle().Foreground(subtle).Italic(true),
		Help:      lipgloss.NewStyle().Foreground(subtle),
		Archived:  lipgloss.NewStyle().Foreground(subtle).Italic(true),
		Call:      lipgloss.NewStyle().Foreground(lipgloss.Color("#03B381")).Bold(true),
		Details: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}

func avatarStyle(colorNumber int) lipgloss.Style {
	idx := colorNumber - 1
	if idx < 0 || idx >= len(avatarColors) {
		idx = 0
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(avatarColors[idx]).
		Padding(0, 1)
}
