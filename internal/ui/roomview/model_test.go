package roomview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parlor/internal/config"
	"github.com/zjrosen/parlor/internal/errorreport"
	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/memroom"
	"github.com/zjrosen/parlor/internal/platform"
	"github.com/zjrosen/parlor/internal/pubsub"
	"github.com/zjrosen/parlor/internal/viewmodel"
)

type harness struct {
	room *memroom.Room
	errs *errorreport.Queue
	nav  *Navigator
	vm   *viewmodel.RoomViewModel
}

func newHarness(t *testing.T, opts memroom.Options, withNavigator bool) *harness {
	t.Helper()
	h := &harness{
		room: memroom.NewRoom(opts),
		errs: errorreport.NewQueue(),
	}
	cfg := viewmodel.RoomConfig{
		Room:             h.room,
		Errors:           h.errs,
		Platform:         platform.New(platform.Config{Picker: platform.NewPicker()}),
		ClearUnreadDelay: time.Hour,
	}
	if withNavigator {
		h.nav = NewNavigator()
		cfg.Navigator = h.nav
	}
	vm, err := viewmodel.NewRoomViewModel(cfg)
	require.NoError(t, err)
	h.vm = vm
	t.Cleanup(func() {
		vm.Dispose()
		h.errs.Close()
	})
	return h
}

func (h *harness) model(t *testing.T) Model {
	t.Helper()
	opts := Options{
		Room:   h.vm,
		Errors: h.errs,
		UI:     config.UIConfig{MaxTiles: 200, Theme: config.ThemeConfig{Accent: "#7D56F4", Subtle: "#696969", Error: "#FF5F87"}},
	}
	if h.nav != nil {
		opts.Navigator = h.nav
	}
	m := New(opts)
	t.Cleanup(m.Close)
	return m
}

// loaded returns a model whose room has been loaded, without starting the
// blocking listeners from Init.
func (h *harness) loaded(t *testing.T) Model {
	t.Helper()
	m := h.model(t)
	msg := m.command("load", h.vm.Load)()
	require.Equal(t, commandDoneMsg{name: "load", ok: true}, msg)
	return update(t, m, msg)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_LoadSubscribesToTimeline(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "General"}, false)
	m := h.loaded(t)

	require.NotNil(t, m.timelineChanges)
	require.Nil(t, m.callChanges)
	require.Contains(t, m.View(), "No messages yet.")
}

func TestModel_ViewBeforeLoad(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "General", Encrypted: true}, false)
	m := h.model(t)

	view := m.View()
	require.Contains(t, view, "General")
	require.Contains(t, view, "🔒")
	require.Contains(t, view, "G")
	require.Contains(t, view, "Loading…")
}

func TestModel_TypeAndSend(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "General"}, false)
	m := h.loaded(t)

	m = update(t, m, typed("hello there"))
	require.Equal(t, "hello there", m.input.Value())
	composer, ok := h.vm.Composer().(*viewmodel.ComposerViewModel)
	require.True(t, ok)
	require.True(t, composer.CanSend())

	_, cmd := m.Update(press(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, commandDoneMsg{name: "send", ok: true}, msg)

	m = update(t, m, msg)
	require.Empty(t, m.input.Value())
	require.Contains(t, m.View(), "hello there")
}

func TestModel_FocusArmsUnreadClear(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "General"}, false)
	m := h.model(t)
	require.False(t, h.vm.ClearUnreadPending())

	next, cmd := m.Update(tea.FocusMsg{})
	require.Nil(t, cmd)
	_, ok := next.(Model)
	require.True(t, ok)
	require.True(t, h.vm.ClearUnreadPending())
}

func TestModel_FocusIgnoredForArchivedRoom(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Archived: true}, false)
	m := h.model(t)

	update(t, m, tea.FocusMsg{})
	require.False(t, h.vm.ClearUnreadPending())
}

func TestModel_EnterWithEmptyInputDoesNothing(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)

	_, cmd := m.Update(press(tea.KeyEnter))
	require.Nil(t, cmd)
}

func TestModel_RendersEmoteAndReply(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)
	ctx := context.Background()

	parent := h.room.Receive("@bob:x", "question?")
	require.True(t, h.vm.SendMessage(ctx, "answer", parent.ID))
	require.True(t, h.vm.SendMessage(ctx, "/me nods", ""))

	view := m.View()
	require.Contains(t, view, "@bob:x: question?")
	require.Contains(t, view, "↳ @bob:x: question?")
	require.Contains(t, view, "nods")
	require.Contains(t, view, "* ")
}

func TestModel_ReplyToLatest(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)
	entry := h.room.Receive("@bob:x", "ping")

	m = update(t, m, press(tea.KeyCtrlP))

	composer := h.vm.Composer().(*viewmodel.ComposerViewModel)
	reply, ok := composer.ReplyingTo()
	require.True(t, ok)
	require.Equal(t, entry.ID, reply.ID)
	require.Contains(t, m.View(), "replying to @bob:x: ping")

	m = update(t, m, press(tea.KeyEsc))
	_, ok = composer.ReplyingTo()
	require.False(t, ok)
	require.NotContains(t, m.View(), "replying to")
}

func TestModel_ReplyToLatest_EmptyTimeline(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)

	update(t, m, press(tea.KeyCtrlP))

	_, ok := h.vm.Composer().(*viewmodel.ComposerViewModel).ReplyingTo()
	require.False(t, ok)
}

func TestModel_TimelineKeepsNewestLines(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)
	for i := range 10 {
		h.room.Receive("@bob:x", fmt.Sprintf("msg %d", i))
	}

	out := m.renderTimeline(80, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[2], "msg 9")
	require.Contains(t, lines[0], "msg 7")
}

func TestModel_MaxTilesLimitsTimeline(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)
	m.ui.MaxTiles = 2
	for i := range 5 {
		h.room.Receive("@bob:x", fmt.Sprintf("msg %d", i))
	}

	out := m.renderTimeline(80, 50)
	require.NotContains(t, out, "msg 2")
	require.Contains(t, out, "msg 3")
	require.Contains(t, out, "msg 4")
}

func TestModel_LeaveClosesRoom(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "General"}, true)
	m := h.loaded(t)

	_, cmd := m.Update(press(tea.KeyCtrlL))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, commandDoneMsg{name: "leave", ok: true}, msg)
	m = update(t, m, msg)

	var nav NavigateMsg
	select {
	case nav = <-h.nav.Requests():
	default:
		t.Fatal("expected a navigation request")
	}
	require.Equal(t, NavigateMsg{Kind: NavCloseRoom, RoomID: "!room:x"}, nav)

	m = update(t, m, nav)
	require.True(t, m.closed)
	view := m.View()
	require.Contains(t, view, "Room closed.")
	require.Contains(t, view, "You left this room")
	require.Contains(t, view, "(archived)")
}

func TestModel_RejoinReopens(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Archived: true}, true)
	m := h.loaded(t)
	require.Contains(t, m.View(), "You left this room")

	_, cmd := m.Update(press(tea.KeyCtrlR))
	msg := cmd()
	require.Equal(t, commandDoneMsg{name: "rejoin", ok: true}, msg)
	m = update(t, m, msg)
	require.False(t, m.closed)
	require.True(t, m.input.Focused())

	nav := <-h.nav.Requests()
	require.Equal(t, NavOpenRoom, nav.Kind)
}

func TestModel_DetailsToggleWithoutNavigator(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "General"}, false)
	m := h.loaded(t)

	m = update(t, m, press(tea.KeyCtrlO))
	require.True(t, m.showDetails)
	view := m.View()
	require.Contains(t, view, "ID:        !room:x")
	require.Contains(t, view, "Archived:  no")

	m = update(t, m, press(tea.KeyEsc))
	require.False(t, m.showDetails)
}

func TestModel_DetailsThroughNavigator(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, true)
	m := h.loaded(t)

	m = update(t, m, press(tea.KeyCtrlO))
	require.False(t, m.showDetails)

	nav := <-h.nav.Requests()
	require.Equal(t, NavOpenDetails, nav.Kind)
	m = update(t, m, nav)
	require.True(t, m.showDetails)
}

func TestModel_ErrorReportShowsToast(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)

	h.errs.ReportError(errors.New("network unreachable"))
	report, ok := h.errs.Latest()
	require.True(t, ok)

	m = update(t, m, pubsub.Event[errorreport.Report]{Type: pubsub.CreatedEvent, Payload: report})
	require.True(t, m.toast.Visible())
	require.Equal(t, "network unreachable", m.toast.Message())
	require.Contains(t, m.View(), "network unreachable")

	m = update(t, m, press(tea.KeyEsc))
	require.False(t, m.toast.Visible())
	require.NotContains(t, m.View(), "network unreachable")
}

func TestModel_HelpToggle(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)
	require.NotContains(t, m.View(), "forget room")

	m = update(t, m, press(tea.KeyCtrlG))
	require.True(t, m.help.ShowAll)
	view := m.View()
	require.Contains(t, view, "leave room")
	// Forget only applies to archived rooms.
	require.NotContains(t, view, "forget room")
}

func TestModel_LogOverlay(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "General"}, false)
	m := h.loaded(t)
	require.True(t, m.keys.Logs.Enabled())

	log.Warn(log.CatUI, "overlay entry")
	for i := 0; i < 64; i++ {
		cmd := m.logs.Next()
		require.NotNil(t, cmd)
		m = update(t, m, cmd())
		if n := len(m.logs.Entries()); n > 0 && strings.Contains(m.logs.Entries()[n-1], "overlay entry") {
			break
		}
	}
	entries := m.logs.Entries()
	require.NotEmpty(t, entries)
	require.Contains(t, entries[len(entries)-1], "[WARN] [ui] overlay entry")

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, press(tea.KeyCtrlX))
	require.True(t, m.logs.Visible())
	view := m.View()
	require.Contains(t, view, "Logs")
	require.Contains(t, view, "overlay entry")

	// Keys go to the overlay while it is open.
	m = update(t, m, typed("e"))
	require.Empty(t, m.input.Value())

	m = update(t, m, press(tea.KeyEsc))
	require.False(t, m.logs.Visible())
	require.NotContains(t, m.View(), "[WARN] [ui] overlay entry")
}

func TestModel_ArchivedRoomIgnoresLeave(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Archived: true}, false)
	m := h.loaded(t)

	m = update(t, m, press(tea.KeyCtrlL))
	require.False(t, m.keys.Leave.Enabled())
	require.True(t, m.keys.Rejoin.Enabled())
	require.True(t, h.room.IsArchived())
}

func TestModel_WindowSize(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "A rather long room name for a narrow terminal"}, false)
	m := h.model(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	require.Equal(t, 20, m.width)
	require.Equal(t, 16, m.input.Width)
	for _, line := range strings.Split(m.renderHeader(20), "\n") {
		require.LessOrEqual(t, len([]rune(line)), 20)
	}
}

func TestModel_CtrlCQuits(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.model(t)

	_, cmd := m.Update(press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestModel_RoomChangeRelistens(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	m := h.loaded(t)
	before := m.timelineChanges

	m = update(t, m, changeMsg{source: sourceRoom, field: "timelineViewModel"})
	require.NotNil(t, m.timelineChanges)
	require.NotSame(t, before, m.timelineChanges)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abcd…", truncate("abcdefghij", 5))
}

func TestProgram_LoadsAndQuits(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x", Name: "General"}, true)
	h.room.Receive("@bob:x", "hello from bob")

	tm := teatest.NewTestModel(t, h.model(t), teatest.WithInitialTermSize(80, 24))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("hello from bob"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(press(tea.KeyCtrlC))
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	_, loaded := final.room.TimelineViewModel()
	require.True(t, loaded)
}

func TestModel_MarkdownBodies(t *testing.T) {
	h := newHarness(t, memroom.Options{ID: "!room:x"}, false)
	opts := Options{
		Room: h.vm,
		UI:   config.UIConfig{MaxTiles: 200, Markdown: true},
	}
	m := New(opts)
	t.Cleanup(m.Close)
	require.NotNil(t, m.md)
	m = update(t, m, m.command("load", h.vm.Load)())

	h.room.Receive("@bob:x", "# Agenda\n\n- first item\n- second item")

	out := m.renderTimeline(80, 50)
	lines := strings.Split(out, "\n")
	require.Equal(t, "@bob:x:", lines[0])
	require.Contains(t, out, "Agenda")
	require.Contains(t, out, "second item")

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	require.Equal(t, 40, m.md.Width())
}
