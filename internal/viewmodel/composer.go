package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/zjrosen/parlor/internal/chat"
)

// Composer kinds.
const (
	ComposerKindComposer = "composer"
	ComposerKindDisabled = "disabled"
)

// Composer is the input area below the timeline. It is a *ComposerViewModel
// for joined rooms and an *ArchivedViewModel for archived ones.
type Composer interface {
	Kind() string
	EmitChange(field string)
	Dispose()
}

// sender is the part of the room view-model a composer drives.
type sender interface {
	SendMessage(ctx context.Context, message, replyingTo string) bool
	SendFile(ctx context.Context) bool
	SendImage(ctx context.Context) bool
	SendVideo(ctx context.Context) bool
}

// ComposerViewModel holds the message being typed and the reply target.
type ComposerViewModel struct {
	base
	room sender

	mu         sync.Mutex
	input      string
	replyingTo *chat.Entry
}

func newComposerViewModel(room sender, forward func(string)) *ComposerViewModel {
	vm := &ComposerViewModel{room: room}
	vm.init(forward)
	return vm
}

// Kind implements Composer.
func (vm *ComposerViewModel) Kind() string { return ComposerKindComposer }

// SetInput records the current text. "canSend" is emitted when the input
// switches between empty and non-empty.
func (vm *ComposerViewModel) SetInput(text string) {
	vm.mu.Lock()
	wasEmpty := vm.input == ""
	vm.input = text
	isEmpty := vm.input == ""
	vm.mu.Unlock()

	if wasEmpty != isEmpty {
		vm.EmitChange("canSend")
	}
}

// Input returns the current text.
func (vm *ComposerViewModel) Input() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.input
}

// IsEmpty reports whether there is nothing to send.
func (vm *ComposerViewModel) IsEmpty() bool { return vm.Input() == "" }

// CanSend reports whether Send would attempt to send.
func (vm *ComposerViewModel) CanSend() bool { return !vm.IsEmpty() }

// SetReplyingTo makes the next message a reply to entry.
func (vm *ComposerViewModel) SetReplyingTo(entry chat.Entry) {
	vm.mu.Lock()
	vm.replyingTo = &entry
	vm.mu.Unlock()
	vm.EmitChange("replyingTo")
}

// ClearReplyingTo drops the reply target.
func (vm *ComposerViewModel) ClearReplyingTo() {
	vm.mu.Lock()
	had := vm.replyingTo != nil
	vm.replyingTo = nil
	vm.mu.Unlock()
	if had {
		vm.EmitChange("replyingTo")
	}
}

// ReplyingTo returns the entry being replied to.
func (vm *ComposerViewModel) ReplyingTo() (chat.Entry, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.replyingTo == nil {
		return chat.Entry{}, false
	}
	return *vm.replyingTo, true
}

// Send sends the current input. On success the input and reply target are cleared.
func (vm *ComposerViewModel) Send(ctx context.Context) bool {
	vm.mu.Lock()
	message := vm.input
	replyID := ""
	if vm.replyingTo != nil {
		replyID = vm.replyingTo.ID
	}
	vm.mu.Unlock()

	if !vm.room.SendMessage(ctx, message, replyID) {
		return false
	}
	vm.SetInput("")
	vm.ClearReplyingTo()
	return true
}

// SendFile picks and sends a file.
func (vm *ComposerViewModel) SendFile(ctx context.Context) bool { return vm.room.SendFile(ctx) }

// SendImage picks and sends an image.
func (vm *ComposerViewModel) SendImage(ctx context.Context) bool { return vm.room.SendImage(ctx) }

// SendVideo picks and sends a video.
func (vm *ComposerViewModel) SendVideo(ctx context.Context) bool { return vm.room.SendVideo(ctx) }

// Dispose releases the composer.
func (vm *ComposerViewModel) Dispose() { vm.tracker.Dispose() }

// ArchivedViewModel replaces the composer of a room the user has left.
type ArchivedViewModel struct {
	base
	room   chat.Room
	rejoin func(ctx context.Context) bool
}

func newArchivedViewModel(room chat.Room, rejoin func(context.Context) bool, forward func(string)) *ArchivedViewModel {
	vm := &ArchivedViewModel{room: room, rejoin: rejoin}
	vm.init(forward)
	return vm
}

// Kind implements Composer.
func (vm *ArchivedViewModel) Kind() string { return ComposerKindDisabled }

// Description explains how the user came to leave the room.
func (vm *ArchivedViewModel) Description() string {
	m := vm.room.Membership()
	var verb string
	switch {
	case vm.room.IsKicked():
		verb = "kicked"
	case vm.room.IsBanned():
		verb = "banned"
	default:
		return "You left this room"
	}
	if m.Reason != "" {
		return fmt.Sprintf("You were %s from the room by %s because: %s", verb, m.Sender, m.Reason)
	}
	return fmt.Sprintf("You were %s from the room by %s.", verb, m.Sender)
}

// Rejoin joins the room again.
func (vm *ArchivedViewModel) Rejoin(ctx context.Context) bool { return vm.rejoin(ctx) }

// Dispose releases the view-model.
func (vm *ArchivedViewModel) Dispose() { vm.tracker.Dispose() }
