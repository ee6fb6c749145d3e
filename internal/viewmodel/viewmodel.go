// Package viewmodel holds the presentation state of an open room.
//
// A RoomViewModel owns a composer, an optional timeline and an optional call
// view-model. Children are tracked with a lifecycle.Tracker and released
// exactly once, in reverse order, when the room view-model is disposed.
// Renderers learn about changes through Changes, which carries the name of
// the field that changed ("" when everything may have changed).
package viewmodel

import (
	"context"

	"github.com/zjrosen/parlor/internal/lifecycle"
	"github.com/zjrosen/parlor/internal/pubsub"
)

// base is embedded by every view-model.
type base struct {
	tracker lifecycle.Tracker
	changes *pubsub.Broker[string]
	forward func(field string)
}

func (b *base) init(forward func(field string)) {
	b.changes = pubsub.NewBroker[string]()
	b.forward = forward
	b.tracker.Track(b.changes)
}

// EmitChange tells renderers that field changed.
func (b *base) EmitChange(field string) {
	if b.tracker.IsDisposed() {
		return
	}
	b.changes.Publish(pubsub.UpdatedEvent, field)
	if b.forward != nil {
		b.forward(field)
	}
}

// Changes streams change notifications until ctx is done or the view-model is disposed.
func (b *base) Changes(ctx context.Context) <-chan pubsub.Event[string] {
	return b.changes.Subscribe(ctx)
}

// IsDisposed reports whether Dispose has run.
func (b *base) IsDisposed() bool { return b.tracker.IsDisposed() }
