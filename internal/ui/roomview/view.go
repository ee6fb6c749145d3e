package roomview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/parlor/internal/viewmodel"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// chrome is the number of lines outside the timeline: header, blank,
	// error, composer and help.
	chrome = 6
)

// View renders the room.
func (m Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	keys := m.keys
	keys.SetArchived(m.room.IsArchived())
	helpView := m.help.View(keys)
	timelineHeight := max(1, height-chrome-strings.Count(helpView, "\n"))

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n\n")

	if m.showDetails {
		b.WriteString(m.renderDetails(width))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTimeline(width, timelineHeight))
		b.WriteString("\n")
	}

	if msg := m.room.Error(); msg != "" {
		b.WriteString(m.styles.Error.Render(truncate(msg, width)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Status.Render(truncate(m.status, width)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderComposer(width))
	b.WriteString("\n")
	b.WriteString(helpView)

	out := m.toast.Overlay(b.String(), width, height)
	return m.logs.Overlay(out, width, height)
}

func (m Model) renderHeader(width int) string {
	avatar := avatarStyle(m.room.AvatarColorNumber()).Render(m.room.AvatarLetter())
	name := m.room.Name()
	if m.room.IsEncrypted() {
		name += " 🔒"
	}
	header := avatar + " " + m.styles.Header.Render(name)

	if call, ok := m.room.CallViewModel(); ok {
		header += "  " + m.styles.Call.Render("● "+call.Name())
	}
	if m.room.IsArchived() {
		header += "  " + m.styles.Archived.Render("(archived)")
	}
	if lipgloss.Width(header) > width {
		return ansi.Truncate(header, width, "…")
	}
	return header
}

// renderTimeline shows the newest tiles that fit in height lines.
func (m Model) renderTimeline(width, height int) string {
	tl, ok := m.room.TimelineViewModel()
	if !ok {
		return m.styles.Status.Render("Loading…")
	}
	tiles := tl.Tiles()
	if limit := m.ui.MaxTiles; limit > 0 && len(tiles) > limit {
		tiles = tiles[len(tiles)-limit:]
	}
	if len(tiles) == 0 {
		return m.styles.Status.Render("No messages yet.")
	}

	byID := make(map[string]viewmodel.Tile, len(tiles))
	for _, t := range tiles {
		byID[t.ID] = t
	}

	var lines []string
	for _, t := range tiles {
		lines = append(lines, m.renderTile(t, byID, width)...)
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTile(t viewmodel.Tile, byID map[string]viewmodel.Tile, width int) []string {
	var lines []string
	if t.ReplyTo != "" {
		quoted := "↳ in reply to a message"
		if parent, ok := byID[t.ReplyTo]; ok {
			quoted = fmt.Sprintf("↳ %s: %s", parent.Sender, parent.Body)
		}
		lines = append(lines, m.styles.Reply.Render(truncate(quoted, width)))
	}

	prefix := ""
	if m.ui.ShowTimestamps && !t.Timestamp.IsZero() {
		prefix = m.styles.Timestamp.Render(t.Timestamp.Format("15:04")) + " "
	}

	if t.IsEmote() {
		body := m.styles.Emote.Render(fmt.Sprintf("* %s %s", t.Sender, t.Body))
		return append(lines, strings.Split(wordwrap.String(prefix+body, max(10, width)), "\n")...)
	}

	sender := prefix + m.styles.Sender.Render(t.Sender+":")
	if m.md != nil {
		if rendered, err := m.md.Render(t.Body); err == nil && len(rendered) > 0 {
			lines = append(lines, sender)
			return append(lines, rendered...)
		}
	}
	wrapped := wordwrap.String(sender+" "+t.Body, max(10, width))
	return append(lines, strings.Split(wrapped, "\n")...)
}

func (m Model) renderComposer(width int) string {
	switch c := m.room.Composer().(type) {
	case *viewmodel.ArchivedViewModel:
		return m.styles.Archived.Render(truncate(c.Description()+" (ctrl+r to rejoin)", width))
	case *viewmodel.ComposerViewModel:
		if m.room.IsArchived() {
			return m.styles.Archived.Render(truncate("You left this room (ctrl+r to rejoin)", width))
		}
		view := m.input.View()
		if reply, ok := c.ReplyingTo(); ok {
			view = m.styles.Reply.Render(truncate("replying to "+reply.Sender+": "+reply.Body(), width)) + "\n" + view
		}
		return view
	}
	return ""
}

func (m Model) renderDetails(width int) string {
	rows := []string{
		m.styles.Header.Render(m.room.Name()),
		"ID:        " + m.room.ID(),
		"Encrypted: " + yesNo(m.room.IsEncrypted()),
		"Archived:  " + yesNo(m.room.IsArchived()),
		"Calls:     " + yesNo(m.room.Features().Calls),
	}
	if call, ok := m.room.CallViewModel(); ok {
		rows = append(rows, "Call:      "+call.Name()+" ("+call.ID()+")")
	}
	if url := m.room.AvatarURL(32); url != "" {
		rows = append(rows, "Avatar:    "+url)
	}
	for i, r := range rows {
		rows[i] = truncate(r, max(10, width-4))
	}
	return m.styles.Details.Render(strings.Join(rows, "\n"))
}

// truncate shortens s to width terminal cells.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
