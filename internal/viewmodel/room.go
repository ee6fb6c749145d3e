package viewmodel

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/parlor/internal/arbiter"
	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/delay"
	"github.com/zjrosen/parlor/internal/lifecycle"
	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/observable"
	"github.com/zjrosen/parlor/internal/tracing"
)

// DefaultClearUnreadDelay is how long a room must stay open before it is marked read.
const DefaultClearUnreadDelay = 2 * time.Second

// emptyRoomName is shown for rooms without a name.
const emptyRoomName = "Empty Room"

// Configuration errors returned by NewRoomViewModel.
var (
	ErrNoRoom          = errors.New("room is required")
	ErrNoErrorReporter = errors.New("error reporter is required")
	ErrNoPlatform      = errors.New("platform is required")
)

// Features toggles optional functionality.
type Features struct {
	// Calls enables call arbitration and StartCall.
	Calls bool
}

// RoomConfig holds the collaborators of a RoomViewModel.
type RoomConfig struct {
	Room     chat.Room
	Errors   chat.ErrorReporter
	Platform chat.Platform

	// Optional collaborators.
	CallHandler chat.CallHandler
	Navigator   chat.Navigator
	Session     chat.Session

	Features Features

	// Clock drives the clear-unread delay; nil means the wall clock.
	Clock delay.Clock
	// ClearUnreadDelay defaults to DefaultClearUnreadDelay.
	ClearUnreadDelay time.Duration
	// Tracer defaults to a no-op tracer.
	Tracer trace.Tracer
	// OnBackgroundError receives failures of work no caller is waiting for,
	// such as clearing the unread count. Defaults to logging them.
	OnBackgroundError func(error)
}

// RoomViewModel is the view-model of one open room.
type RoomViewModel struct {
	base

	room      chat.Room
	errors    chat.ErrorReporter
	platform  chat.Platform
	calls     chat.CallHandler
	navigator chat.Navigator
	session   chat.Session
	features  Features
	tracer    trace.Tracer
	timeouts  *delay.Timeouts

	clearDelay        time.Duration
	onBackgroundError func(error)

	// ctx lives until Dispose and bounds background work.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	composer Composer
	timeline *lifecycle.Slot[*TimelineViewModel]
	call     *lifecycle.Slot[*CallViewModel]
	picker   *arbiter.Picker[string, chat.Call]

	subscribeOnce sync.Once

	// callMu serializes call transitions.
	callMu     sync.Mutex
	activeCall chat.Call

	mu           sync.Mutex
	disposed     bool
	timelineErr  error
	sendErr      error
	pendingClear *delay.Timeout
}

// NewRoomViewModel creates the view-model for cfg.Room. Call Load to open the
// timeline and Dispose when the room is closed.
func NewRoomViewModel(cfg RoomConfig) (*RoomViewModel, error) {
	switch {
	case cfg.Room == nil:
		return nil, ErrNoRoom
	case cfg.Errors == nil:
		return nil, ErrNoErrorReporter
	case cfg.Platform == nil:
		return nil, ErrNoPlatform
	}

	vm := &RoomViewModel{
		room:              cfg.Room,
		errors:            cfg.Errors,
		platform:          cfg.Platform,
		calls:             cfg.CallHandler,
		navigator:         cfg.Navigator,
		session:           cfg.Session,
		features:          cfg.Features,
		tracer:            cfg.Tracer,
		timeouts:          delay.NewTimeouts(cfg.Clock),
		clearDelay:        cfg.ClearUnreadDelay,
		onBackgroundError: cfg.OnBackgroundError,
	}
	if vm.tracer == nil {
		vm.tracer = noop.NewTracerProvider().Tracer("parlor")
	}
	if vm.clearDelay <= 0 {
		vm.clearDelay = DefaultClearUnreadDelay
	}
	if vm.onBackgroundError == nil {
		vm.onBackgroundError = func(err error) {
			log.ErrorErr(log.CatRoom, "Background task failed", err, "room", cfg.Room.ID())
		}
	}
	vm.ctx, vm.cancel = context.WithCancel(context.Background())

	vm.init(nil)
	vm.timeline = lifecycle.NewSlot[*TimelineViewModel](&vm.tracker)
	vm.call = lifecycle.NewSlot[*CallViewModel](&vm.tracker)

	if vm.room.IsArchived() {
		vm.composer = newArchivedViewModel(vm.room, vm.RejoinRoom, nil)
	} else {
		vm.composer = newComposerViewModel(vm, nil)
	}
	vm.tracker.Track(vm.composer)

	if vm.features.Calls && vm.calls != nil {
		vm.setupCallArbitration()
	}

	log.Debug(log.CatRoom, "Room view-model created", "room", vm.room.ID(), "archived", vm.room.IsArchived())
	return vm, nil
}

// setupCallArbitration keeps a call view-model for the lowest-id call of this
// room that the user has joined.
func (vm *RoomViewModel) setupCallArbitration() {
	roomID := vm.room.ID()
	joined := observable.FilterValues(vm.calls.Calls(), func(c chat.Call) bool {
		return c.RoomID() == roomID && c.HasJoined()
	})
	vm.picker = arbiter.PickLowest[string, chat.Call](joined)
	vm.tracker.Track(vm.picker)
	vm.tracker.TrackFunc(vm.picker.Subscribe(vm.onCallPicked))
	vm.onCallPicked(vm.picker.Get())
}

// onCallPicked swaps the call view-model when the picked call changes identity.
// Call implementations must be comparable (pointer types).
func (vm *RoomViewModel) onCallPicked(call chat.Call) {
	vm.callMu.Lock()
	if call == vm.activeCall {
		vm.callMu.Unlock()
		return
	}
	vm.activeCall = call
	if call == nil {
		vm.call.Clear()
	} else {
		vm.call.Replace(func() *CallViewModel {
			return newCallViewModel(call, vm.errors, nil)
		})
	}
	vm.callMu.Unlock()

	if call != nil {
		log.Info(log.CatCall, "Active call changed", "room", vm.room.ID(), "call", call.ID())
	} else {
		log.Info(log.CatCall, "No active call", "room", vm.room.ID())
	}
	vm.EmitChange("callViewModel")
}

// Load opens the timeline. On failure the error is reported and surfaced
// through Error. Either way the unread count is cleared after a delay.
func (vm *RoomViewModel) Load(ctx context.Context) bool {
	vm.subscribeOnce.Do(func() {
		vm.tracker.TrackFunc(vm.room.OnChange(vm.onRoomChange))
	})

	ok := vm.run(ctx, "load", func(ctx context.Context) (bool, error) {
		timeline, err := vm.room.OpenTimeline(ctx)
		if err != nil {
			vm.mu.Lock()
			vm.timelineErr = err
			vm.mu.Unlock()
			vm.EmitChange("error")
			return false, err
		}
		vm.timeline.Replace(func() *TimelineViewModel {
			return newTimelineViewModel(timeline, nil)
		})
		vm.mu.Lock()
		vm.timelineErr = nil
		vm.mu.Unlock()
		vm.EmitChange("timelineViewModel")
		return true, nil
	})
	vm.scheduleClearUnread()
	return ok
}

// Focus re-arms the clear-unread delay. Repeated calls while a delay is
// pending do nothing.
func (vm *RoomViewModel) Focus() {
	vm.scheduleClearUnread()
}

func (vm *RoomViewModel) scheduleClearUnread() {
	if vm.room.IsArchived() {
		return
	}
	vm.mu.Lock()
	if vm.disposed || vm.pendingClear != nil {
		vm.mu.Unlock()
		return
	}
	timeout := vm.timeouts.CreateTimeout(vm.clearDelay)
	vm.pendingClear = timeout
	vm.wg.Add(1)
	vm.mu.Unlock()

	go vm.clearUnreadAfterDelay(timeout)
}

func (vm *RoomViewModel) clearUnreadAfterDelay(timeout *delay.Timeout) {
	defer vm.wg.Done()

	outcome, err := timeout.Elapsed(vm.ctx)

	vm.mu.Lock()
	if vm.pendingClear == timeout {
		vm.pendingClear = nil
	}
	vm.mu.Unlock()

	if err != nil || outcome == delay.Aborted {
		log.Debug(log.CatRoom, "Clear unread skipped", "room", vm.room.ID(), "outcome", outcome)
		return
	}
	if err := vm.room.ClearUnread(vm.ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug(log.CatRoom, "Clear unread cancelled", "room", vm.room.ID())
			return
		}
		vm.onBackgroundError(err)
		return
	}
	log.Debug(log.CatRoom, "Cleared unread", "room", vm.room.ID())
}

// ClearUnreadPending reports whether a clear-unread delay is outstanding.
func (vm *RoomViewModel) ClearUnreadPending() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pendingClear != nil
}

// onRoomChange re-emits everything: the room does not say what changed.
func (vm *RoomViewModel) onRoomChange() {
	vm.composer.EmitChange("")
	vm.EmitChange("")
}

// run is the boundary every command goes through. It opens a span, and on
// failure logs the error, records it on the span and reports it. fn returns
// false without an error for precondition failures, which are not reported.
func (vm *RoomViewModel) run(ctx context.Context, name string, fn func(ctx context.Context) (bool, error)) bool {
	ctx, span := tracing.StartCommand(ctx, vm.tracer, name, attribute.String(tracing.AttrRoomID, vm.room.ID()))
	defer span.End()

	ok, err := fn(ctx)
	tracing.Fail(span, err)
	if err != nil {
		log.ErrorErr(log.CatRoom, "Command failed", err, "command", name, "room", vm.room.ID())
		vm.errors.ReportError(err)
		return false
	}
	return ok
}

// LeaveRoom leaves a joined room and closes it.
func (vm *RoomViewModel) LeaveRoom(ctx context.Context) bool {
	if !vm.CanLeave() {
		return false
	}
	return vm.run(ctx, "leaveRoom", func(ctx context.Context) (bool, error) {
		if err := vm.room.Leave(ctx); err != nil {
			return false, err
		}
		vm.Close()
		return true, nil
	})
}

// ForgetRoom forgets an archived room and closes it.
func (vm *RoomViewModel) ForgetRoom(ctx context.Context) bool {
	if !vm.CanForget() {
		return false
	}
	return vm.run(ctx, "forgetRoom", func(ctx context.Context) (bool, error) {
		if err := vm.room.Forget(ctx); err != nil {
			return false, err
		}
		vm.Close()
		return true, nil
	})
}

// RejoinRoom joins an archived room again and navigates to it.
func (vm *RoomViewModel) RejoinRoom(ctx context.Context) bool {
	if !vm.CanRejoin() {
		return false
	}
	return vm.run(ctx, "rejoinRoom", func(ctx context.Context) (bool, error) {
		if err := vm.room.Join(ctx); err != nil {
			return false, err
		}
		if vm.navigator != nil {
			vm.navigator.OpenRoom(vm.room.ID())
		}
		return true, nil
	})
}

// Close asks the navigator to close the room.
func (vm *RoomViewModel) Close() {
	if vm.navigator != nil {
		vm.navigator.CloseRoom(vm.room.ID())
	}
}

// OpenDetailsPanel asks the navigator to show the room details.
func (vm *RoomViewModel) OpenDetailsPanel() {
	if vm.navigator != nil {
		vm.navigator.OpenDetails(vm.room.ID())
	}
}

// Error describes the last timeline or send failure, or "" when there is none.
func (vm *RoomViewModel) Error() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	switch {
	case vm.timelineErr != nil:
		return "Something went wrong loading the timeline: " + vm.timelineErr.Error()
	case vm.sendErr != nil:
		return "Something went wrong sending your message: " + vm.sendErr.Error()
	default:
		return ""
	}
}

// DismissError clears the send error.
func (vm *RoomViewModel) DismissError() {
	vm.mu.Lock()
	had := vm.sendErr != nil
	vm.sendErr = nil
	vm.mu.Unlock()
	if had {
		vm.EmitChange("error")
	}
}

func (vm *RoomViewModel) setSendError(err error) {
	vm.mu.Lock()
	vm.sendErr = err
	vm.timelineErr = nil
	vm.mu.Unlock()
	vm.EmitChange("error")
}

// ID returns the room id.
func (vm *RoomViewModel) ID() string { return vm.room.ID() }

// Name returns the room name.
func (vm *RoomViewModel) Name() string {
	if name := vm.room.Name(); name != "" {
		return name
	}
	return emptyRoomName
}

// AvatarLetter returns the letter shown when there is no avatar image.
func (vm *RoomViewModel) AvatarLetter() string { return avatarLetter(vm.Name()) }

// AvatarColorNumber returns the avatar colour (1..8).
func (vm *RoomViewModel) AvatarColorNumber() int { return avatarColorNumber(vm.room.AvatarColorID()) }

// AvatarURL returns the avatar image URL at size, or "".
func (vm *RoomViewModel) AvatarURL(size int) string { return vm.room.AvatarURL(size) }

// AvatarTitle returns the avatar tooltip.
func (vm *RoomViewModel) AvatarTitle() string { return vm.Name() }

// IsEncrypted reports whether the room is end-to-end encrypted.
func (vm *RoomViewModel) IsEncrypted() bool { return vm.room.IsEncrypted() }

// IsArchived reports whether the user has left the room.
func (vm *RoomViewModel) IsArchived() bool { return vm.room.IsArchived() }

// CanLeave reports whether LeaveRoom applies.
func (vm *RoomViewModel) CanLeave() bool { return vm.room.IsJoined() }

// CanForget reports whether ForgetRoom applies.
func (vm *RoomViewModel) CanForget() bool { return vm.room.IsArchived() }

// CanRejoin reports whether RejoinRoom applies.
func (vm *RoomViewModel) CanRejoin() bool { return vm.room.IsArchived() }

// Features returns the enabled features.
func (vm *RoomViewModel) Features() Features { return vm.features }

// Composer returns the composer or archived view-model.
func (vm *RoomViewModel) Composer() Composer { return vm.composer }

// TimelineViewModel returns the timeline view-model once loaded.
func (vm *RoomViewModel) TimelineViewModel() (*TimelineViewModel, bool) { return vm.timeline.Get() }

// CallViewModel returns the view-model of the active call.
func (vm *RoomViewModel) CallViewModel() (*CallViewModel, bool) { return vm.call.Get() }

// Dispose aborts the pending clear-unread, releases every child and, for an
// archived room, the room handle. It is idempotent.
func (vm *RoomViewModel) Dispose() {
	vm.mu.Lock()
	if vm.disposed {
		vm.mu.Unlock()
		return
	}
	vm.disposed = true
	pending := vm.pendingClear
	vm.pendingClear = nil
	vm.mu.Unlock()

	if pending != nil {
		pending.Abort()
	}
	vm.cancel()
	vm.tracker.Dispose()
	vm.wg.Wait()

	if vm.room.IsArchived() {
		vm.room.Release()
	}
	log.Debug(log.CatRoom, "Room view-model disposed", "room", vm.room.ID())
}
