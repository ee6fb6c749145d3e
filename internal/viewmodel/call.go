package viewmodel

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/lifecycle"
	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/tracing"
)

// CallViewModel presents the active call of a room.
type CallViewModel struct {
	base
	call   chat.Call
	errors chat.ErrorReporter
}

func newCallViewModel(call chat.Call, errs chat.ErrorReporter, forward func(string)) *CallViewModel {
	vm := &CallViewModel{call: call, errors: errs}
	vm.init(forward)
	vm.tracker.TrackFunc(call.OnChange(func() { vm.EmitChange("call") }))
	return vm
}

// ID returns the call id.
func (vm *CallViewModel) ID() string { return vm.call.ID() }

// Name returns the call label.
func (vm *CallViewModel) Name() string { return vm.call.Name() }

// HasJoined reports whether the local user is in the call.
func (vm *CallViewModel) HasJoined() bool { return vm.call.HasJoined() }

// Hangup leaves the call. Failures are reported.
func (vm *CallViewModel) Hangup(ctx context.Context) bool {
	if !vm.call.HasJoined() {
		return false
	}
	if err := vm.call.Leave(ctx); err != nil {
		err = fmt.Errorf("could not leave call: %w", err)
		log.ErrorErr(log.CatCall, "Hangup failed", err, "call", vm.call.ID())
		vm.errors.ReportError(err)
		return false
	}
	return true
}

// Dispose unsubscribes from the call. The call itself is not owned.
func (vm *CallViewModel) Dispose() { vm.tracker.Dispose() }

var _ lifecycle.Disposable = (*CallViewModel)(nil)

// StartCall acquires local video, creates a call in the room and joins it.
// Each step fails with its own message and stops the remaining steps.
// It does nothing when calls are disabled.
func (vm *RoomViewModel) StartCall(ctx context.Context) bool {
	if vm.room.IsArchived() || !vm.features.Calls || vm.calls == nil {
		return false
	}
	return vm.run(ctx, "startCall", func(ctx context.Context) (bool, error) {
		media, err := vm.platform.GetLocalMedia(ctx, chat.MediaRequest{Audio: false, Video: true})
		if err != nil {
			return false, fmt.Errorf("could not get local audio and/or video stream: %w", err)
		}
		label := fmt.Sprintf("A call %d", int(math.Round(vm.platform.Random()*100)))
		call, err := vm.calls.CreateCall(ctx, vm.room.ID(), chat.CallTypeVideo, label)
		if err != nil {
			media.Dispose()
			return false, fmt.Errorf("could not create call: %w", err)
		}
		trace.SpanFromContext(ctx).SetAttributes(attribute.String(tracing.AttrCallID, call.ID()))
		if err := call.Join(ctx, media); err != nil {
			media.Dispose()
			return false, fmt.Errorf("could not join call: %w", err)
		}
		log.Info(log.CatCall, "Joined call", "room", vm.room.ID(), "call", call.ID(), "label", label)
		return true, nil
	})
}

// Hangup leaves the active call, if any.
func (vm *RoomViewModel) Hangup(ctx context.Context) bool {
	call, ok := vm.CallViewModel()
	if !ok {
		return false
	}
	return call.Hangup(ctx)
}
