// Package roomview is the terminal view of a single room, rendered from a
// viewmodel.RoomViewModel.
package roomview

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/config"
	"github.com/zjrosen/parlor/internal/errorreport"
	"github.com/zjrosen/parlor/internal/keys"
	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/platform"
	"github.com/zjrosen/parlor/internal/pubsub"
	"github.com/zjrosen/parlor/internal/ui/logoverlay"
	"github.com/zjrosen/parlor/internal/ui/markdown"
	"github.com/zjrosen/parlor/internal/ui/toaster"
	"github.com/zjrosen/parlor/internal/viewmodel"
)

// toastDuration is how long an error toast stays up.
const toastDuration = 5 * time.Second

// Sources of changeMsg.
const (
	sourceRoom     = "room"
	sourceTimeline = "timeline"
	sourceCall     = "call"
)

// changeMsg reports that a view-model emitted a change.
type changeMsg struct {
	source string
	field  string
}

// commandDoneMsg is returned when a view-model command finishes.
type commandDoneMsg struct {
	name string
	ok   bool
}

// fileDroppedMsg carries a path from the drop folder.
type fileDroppedMsg struct {
	path string
}

// Options configures a Model.
type Options struct {
	Room      *viewmodel.RoomViewModel
	Errors    *errorreport.Queue
	Navigator *Navigator
	// Picker receives dropped files before the matching send command runs.
	Picker *platform.Picker
	// Files delivers dropped file paths; nil disables dropping.
	Files <-chan string
	UI    config.UIConfig
}

// Model is the Bubble Tea model of the room view.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	room      *viewmodel.RoomViewModel
	errors    *errorreport.Queue
	navigator *Navigator
	picker    *platform.Picker
	files     <-chan string
	ui        config.UIConfig
	styles    Styles

	input textinput.Model
	keys  keys.RoomKeyMap
	help  help.Model
	toast toaster.Model
	logs  logoverlay.Model
	// md is nil unless markdown rendering is enabled.
	md *markdown.Renderer

	roomChanges *pubsub.ContinuousListener[string]
	reports     *pubsub.ContinuousListener[errorreport.Report]

	timelineChanges *pubsub.ContinuousListener[string]
	timelineCancel  context.CancelFunc
	callChanges     *pubsub.ContinuousListener[string]
	callCancel      context.CancelFunc

	width       int
	height      int
	status      string
	closed      bool
	showDetails bool
}

// changes adapts a view-model's Changes method to pubsub.Subscriber.
type changes func(ctx context.Context) <-chan pubsub.Event[string]

func (c changes) Subscribe(ctx context.Context) <-chan pubsub.Event[string] { return c(ctx) }

// New creates the room view. Call Close when the program exits.
func New(opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	input := textinput.New()
	input.Placeholder = "Send a message…"
	input.Prompt = "> "
	input.CharLimit = 4000
	input.Focus()
	styles := NewStyles(opts.UI.Theme)

	m := Model{
		ctx:       ctx,
		cancel:    cancel,
		room:      opts.Room,
		errors:    opts.Errors,
		navigator: opts.Navigator,
		picker:    opts.Picker,
		files:     opts.Files,
		ui:        opts.UI,
		styles:    styles,
		input:     input,
		keys:      keys.Room,
		help:      newHelp(styles),
		toast:     toaster.New(),
	}
	if opts.UI.Markdown {
		m.md = newMarkdown(defaultWidth)
	}
	m.logs, _ = logoverlay.New(logoverlay.DefaultCapacity).Listen(ctx)
	m.keys.SetLogs(m.logs.Listening())
	m.roomChanges = pubsub.NewContinuousListener[string](ctx, changes(opts.Room.Changes))
	if opts.Errors != nil {
		m.reports = pubsub.NewContinuousListener[errorreport.Report](ctx, opts.Errors)
	}
	return m
}

func newHelp(styles Styles) help.Model {
	h := help.New()
	h.Styles.ShortDesc = styles.Help
	h.Styles.FullDesc = styles.Help
	h.Styles.ShortSeparator = styles.Help
	h.Styles.FullSeparator = styles.Help
	return h
}

// newMarkdown returns nil when glamour cannot be set up, falling back to
// plain bodies.
func newMarkdown(width int) *markdown.Renderer {
	r, err := markdown.New(max(10, width))
	if err != nil {
		log.ErrorErr(log.CatUI, "Markdown renderer unavailable", err)
		return nil
	}
	return r
}

// Close stops every listener. The room view-model is owned by the caller.
func (m Model) Close() {
	if m.timelineCancel != nil {
		m.timelineCancel()
	}
	if m.callCancel != nil {
		m.callCancel()
	}
	m.cancel()
}

// Init loads the room and starts listening.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.command("load", m.room.Load),
		listen(m.roomChanges, sourceRoom),
	}
	if m.reports != nil {
		cmds = append(cmds, m.reports.Listen())
	}
	if m.navigator != nil {
		cmds = append(cmds, waitNavigation(m.ctx, m.navigator))
	}
	if m.files != nil {
		cmds = append(cmds, waitFile(m.ctx, m.files))
	}
	if cmd := m.logs.Next(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-4)
		m.help.Width = msg.Width
		m.logs = m.logs.SetSize(msg.Width, msg.Height)
		if m.md != nil && m.md.Width() != msg.Width {
			m.md = newMarkdown(msg.Width)
		}
		return m, nil

	case tea.FocusMsg:
		m.room.Focus()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case commandDoneMsg:
		return m.handleDone(msg)

	case changeMsg:
		return m.handleChange(msg)

	case pubsub.Event[errorreport.Report]:
		log.Debug(log.CatUI, "Error reported", "id", msg.Payload.ID)
		m.toast = m.toast.Show(msg.Payload.Message(), toaster.StyleError)
		return m, tea.Batch(m.reports.Listen(), m.toast.ScheduleDismiss(toastDuration))

	case log.LogEvent:
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd

	case toaster.DismissMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case NavigateMsg:
		m = m.handleNavigate(msg)
		return m, waitNavigation(m.ctx, m.navigator)

	case fileDroppedMsg:
		return m, tea.Batch(m.sendDropped(msg.path), waitFile(m.ctx, m.files))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keys.SetArchived(m.room.IsArchived())

	if key.Matches(msg, m.keys.Logs) {
		m.logs = m.logs.Toggle()
		return m, nil
	}
	if m.logs.Visible() {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Send):
		composer, ok := m.room.Composer().(*viewmodel.ComposerViewModel)
		if !ok || m.input.Value() == "" {
			return m, nil
		}
		composer.SetInput(m.input.Value())
		return m, m.command("send", composer.Send)
	case key.Matches(msg, m.keys.Dismiss):
		if m.showDetails {
			m.showDetails = false
			return m, nil
		}
		m.toast = m.toast.Hide()
		if composer, ok := m.room.Composer().(*viewmodel.ComposerViewModel); ok {
			composer.ClearReplyingTo()
		}
		m.room.DismissError()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.StartCall):
		return m, m.command("startCall", m.room.StartCall)
	case key.Matches(msg, m.keys.Hangup):
		return m, m.command("hangup", m.room.Hangup)
	case key.Matches(msg, m.keys.Leave):
		return m, m.command("leave", m.room.LeaveRoom)
	case key.Matches(msg, m.keys.Rejoin):
		return m, m.command("rejoin", m.room.RejoinRoom)
	case key.Matches(msg, m.keys.Forget):
		return m, m.command("forget", m.room.ForgetRoom)
	case key.Matches(msg, m.keys.Details):
		m.room.OpenDetailsPanel()
		if m.navigator == nil {
			m.showDetails = !m.showDetails
		}
		return m, nil
	case key.Matches(msg, m.keys.Reply):
		m.replyToLatest()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if composer, ok := m.room.Composer().(*viewmodel.ComposerViewModel); ok {
		composer.SetInput(m.input.Value())
	}
	return m, cmd
}

func (m Model) handleDone(msg commandDoneMsg) (tea.Model, tea.Cmd) {
	switch msg.name {
	case "send":
		if msg.ok {
			m.input.SetValue("")
		}
	case "load":
		cmd := tea.Batch(m.listenTimeline(), m.listenCall())
		return m, cmd
	case "leave", "forget":
		if msg.ok {
			m.input.Blur()
		}
	case "rejoin":
		if msg.ok {
			m.closed = false
			m.input.Focus()
			m.status = ""
		}
	}
	return m, nil
}

func (m Model) handleChange(msg changeMsg) (tea.Model, tea.Cmd) {
	switch msg.source {
	case sourceRoom:
		cmds := []tea.Cmd{listen(m.roomChanges, sourceRoom)}
		switch msg.field {
		case "timelineViewModel":
			cmds = append(cmds, m.listenTimeline())
		case "callViewModel":
			cmds = append(cmds, m.listenCall())
		}
		return m, tea.Batch(cmds...)
	case sourceTimeline:
		if m.timelineChanges != nil {
			return m, listen(m.timelineChanges, sourceTimeline)
		}
	case sourceCall:
		if m.callChanges != nil {
			return m, listen(m.callChanges, sourceCall)
		}
	}
	return m, nil
}

func (m Model) handleNavigate(msg NavigateMsg) Model {
	switch msg.Kind {
	case NavCloseRoom:
		m.closed = true
		m.status = "Room closed. ctrl+r rejoins, ctrl+c quits."
	case NavOpenDetails:
		m.showDetails = !m.showDetails
	case NavOpenRoom:
		if msg.RoomID != m.room.ID() {
			m.status = "Joined " + msg.RoomID
		}
	}
	return m
}

// replyToLatest makes the next message a reply to the newest tile.
func (m Model) replyToLatest() {
	composer, ok := m.room.Composer().(*viewmodel.ComposerViewModel)
	if !ok {
		return
	}
	tl, ok := m.room.TimelineViewModel()
	if !ok {
		return
	}
	tiles := tl.Tiles()
	if len(tiles) == 0 {
		return
	}
	last := tiles[len(tiles)-1]
	composer.SetReplyingTo(chat.Entry{
		ID:        last.ID,
		Sender:    last.Sender,
		Type:      chat.EventTypeMessage,
		Content:   chat.Content{"body": last.Body, "msgtype": last.MsgType},
		Timestamp: last.Timestamp,
	})
}

// command runs a blocking view-model command off the update loop.
func (m Model) command(name string, fn func(context.Context) bool) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return commandDoneMsg{name: name, ok: fn(ctx)}
	}
}

func (m Model) sendDropped(path string) tea.Cmd {
	ctx := m.ctx
	room := m.room
	picker := m.picker
	return func() tea.Msg {
		f, err := platform.ReadFile(path)
		if err != nil {
			if m.errors != nil {
				m.errors.ReportError(err)
			}
			return commandDoneMsg{name: "drop"}
		}
		if picker == nil {
			return commandDoneMsg{name: "drop"}
		}
		picker.Offer(f)
		switch {
		case platform.IsImage(f.Blob):
			return commandDoneMsg{name: "drop", ok: room.SendImage(ctx)}
		case platform.IsVideo(f.Blob):
			return commandDoneMsg{name: "drop", ok: room.SendVideo(ctx)}
		default:
			return commandDoneMsg{name: "drop", ok: room.SendFile(ctx)}
		}
	}
}

// listenTimeline re-subscribes to the current timeline view-model.
func (m *Model) listenTimeline() tea.Cmd {
	if m.timelineCancel != nil {
		m.timelineCancel()
		m.timelineCancel, m.timelineChanges = nil, nil
	}
	tl, ok := m.room.TimelineViewModel()
	if !ok {
		return nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.timelineCancel = cancel
	m.timelineChanges = pubsub.NewContinuousListener[string](ctx, changes(tl.Changes))
	return listen(m.timelineChanges, sourceTimeline)
}

// listenCall re-subscribes to the current call view-model.
func (m *Model) listenCall() tea.Cmd {
	if m.callCancel != nil {
		m.callCancel()
		m.callCancel, m.callChanges = nil, nil
	}
	call, ok := m.room.CallViewModel()
	if !ok {
		return nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.callCancel = cancel
	m.callChanges = pubsub.NewContinuousListener[string](ctx, changes(call.Changes))
	return listen(m.callChanges, sourceCall)
}

func listen(l *pubsub.ContinuousListener[string], source string) tea.Cmd {
	next := l.Listen()
	return func() tea.Msg {
		ev, ok := next().(pubsub.Event[string])
		if !ok {
			return nil
		}
		return changeMsg{source: source, field: ev.Payload}
	}
}

func waitNavigation(ctx context.Context, n *Navigator) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-n.Requests():
			return msg
		}
	}
}

func waitFile(ctx context.Context, files <-chan string) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-files:
			if !ok {
				return nil
			}
			return fileDroppedMsg{path: path}
		}
	}
}
