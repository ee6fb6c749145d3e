package memroom

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/observable"
)

// ErrCallEnded is returned when joining a call that was hung up.
var ErrCallEnded = errors.New("call has ended")

// CallHandler keeps calls in an observable map keyed by call id.
type CallHandler struct {
	calls *observable.ObservableMap[string, chat.Call]
}

var _ chat.CallHandler = (*CallHandler)(nil)

// NewCallHandler creates a handler with no calls.
func NewCallHandler() *CallHandler {
	return &CallHandler{calls: observable.NewObservableMap[string, chat.Call]()}
}

func (h *CallHandler) Calls() observable.Collection[string, chat.Call] { return h.calls }

// CreateCall registers a new, not yet joined call in roomID.
func (h *CallHandler) CreateCall(ctx context.Context, roomID, callType, label string) (chat.Call, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := &Call{
		id:       uuid.NewString(),
		roomID:   roomID,
		callType: callType,
		name:     label,
		handler:  h,
	}
	h.calls.Add(c.id, c)
	return c, nil
}

// AddCall registers a call placed by someone else that the local user has
// already joined, as if it was picked up on another device.
func (h *CallHandler) AddCall(id, roomID, name string, joined bool) *Call {
	c := &Call{id: id, roomID: roomID, callType: chat.CallTypeVideo, name: name, joined: joined, handler: h}
	h.calls.Add(id, c)
	return c
}

// Call is an in-memory group call.
type Call struct {
	id       string
	roomID   string
	callType string
	handler  *CallHandler

	mu     sync.Mutex
	name   string
	joined bool
	ended  bool
	media  chat.LocalMedia

	changes listeners
}

var _ chat.Call = (*Call)(nil)

func (c *Call) ID() string     { return c.id }
func (c *Call) RoomID() string { return c.roomID }

// Type returns the call type it was created with.
func (c *Call) Type() string { return c.callType }

func (c *Call) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

func (c *Call) HasJoined() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.joined
}

func (c *Call) OnChange(cb func()) func() { return c.changes.add(cb) }

// Join joins the call with media, which the call owns from then on.
func (c *Call) Join(ctx context.Context, media chat.LocalMedia) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	if c.ended {
		c.mu.Unlock()
		return fmt.Errorf("join call %s: %w", c.id, ErrCallEnded)
	}
	c.joined = true
	c.media = media
	c.mu.Unlock()

	c.changes.notify()
	c.handler.calls.Update(c.id)
	return nil
}

// Leave hangs up. The call ends and is removed from its handler.
func (c *Call) Leave(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	if !c.joined {
		c.mu.Unlock()
		return fmt.Errorf("leave call %s: not joined", c.id)
	}
	c.joined = false
	c.ended = true
	media := c.media
	c.media = nil
	c.mu.Unlock()

	if media != nil {
		media.Dispose()
	}
	c.changes.notify()
	c.handler.calls.Update(c.id)
	c.handler.calls.Remove(c.id)
	return nil
}

// Rename changes the call name and notifies listeners.
func (c *Call) Rename(name string) {
	c.mu.Lock()
	c.name = name
	c.mu.Unlock()
	c.changes.notify()
	c.handler.calls.Update(c.id)
}
