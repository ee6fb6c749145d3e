// Package memroom is an in-memory chat backend: rooms whose sent events land
// in their own timeline, a call handler and a session directory. The terminal
// client runs on it and integration tests drive the view-model through it.
package memroom

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/parlor/internal/chat"
)

var (
	// ErrNotArchived is returned by Forget for rooms the user is still in.
	ErrNotArchived = errors.New("room is not archived")
	// ErrNotJoined is returned when sending to or leaving a room the user is not in.
	ErrNotJoined = errors.New("not joined to room")
	// ErrBanned is returned by Join for banned users.
	ErrBanned = errors.New("banned from room")
)

// Options describe a new room.
type Options struct {
	ID        string
	Name      string
	AvatarURL string
	Encrypted bool
	// UserID is the local user, used as the sender of sent events.
	UserID string
	// Archived starts the room as left by the user.
	Archived bool
	Unread   int
	Clock    func() time.Time
}

// Room implements chat.Room in memory.
type Room struct {
	id        string
	avatarURL string
	encrypted bool
	userID    string
	now       func() time.Time

	mu         sync.Mutex
	name       string
	joined     bool
	archived   bool
	forgotten  bool
	released   bool
	membership chat.Membership
	unread     int
	entries    []chat.Entry
	timelines  map[*Timeline]struct{}

	changes listeners
}

var _ chat.Room = (*Room)(nil)

// NewRoom creates a room. A blank ID gets a generated one.
func NewRoom(opts Options) *Room {
	id := opts.ID
	if id == "" {
		id = "!" + uuid.NewString() + ":parlor.local"
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	userID := opts.UserID
	if userID == "" {
		userID = "@me:parlor.local"
	}
	return &Room{
		id:        id,
		avatarURL: opts.AvatarURL,
		encrypted: opts.Encrypted,
		userID:    userID,
		now:       now,
		name:      opts.Name,
		joined:    !opts.Archived,
		archived:  opts.Archived,
		unread:    opts.Unread,
		timelines: make(map[*Timeline]struct{}),
	}
}

func (r *Room) ID() string            { return r.id }
func (r *Room) AvatarColorID() string { return r.id }
func (r *Room) IsEncrypted() bool     { return r.encrypted }

func (r *Room) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name
}

// AvatarURL returns the avatar sized for size pixels, or "" when there is none.
func (r *Room) AvatarURL(size int) string {
	if r.avatarURL == "" {
		return ""
	}
	return fmt.Sprintf("%s?width=%d&height=%d", r.avatarURL, size, size)
}

func (r *Room) IsArchived() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.archived
}

func (r *Room) IsJoined() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.joined
}

func (r *Room) IsKicked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.membership.Kicked
}

func (r *Room) IsBanned() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.membership.Banned
}

func (r *Room) Membership() chat.Membership {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.membership
}

// Unread returns the unread count.
func (r *Room) Unread() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unread
}

// IsForgotten reports whether Forget succeeded.
func (r *Room) IsForgotten() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.forgotten
}

// IsReleased reports whether Release was called.
func (r *Room) IsReleased() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}

// ChangeListeners returns the number of OnChange subscribers.
func (r *Room) ChangeListeners() int { return r.changes.count() }

func (r *Room) OnChange(cb func()) func() { return r.changes.add(cb) }

// SetName renames the room.
func (r *Room) SetName(name string) {
	r.mu.Lock()
	r.name = name
	r.mu.Unlock()
	r.changes.notify()
}

// Kick removes the user from the room, archiving it.
func (r *Room) Kick(by, reason string) {
	r.archive(chat.Membership{Kicked: true, Sender: by, Reason: reason})
}

// Ban removes the user from the room and prevents rejoining.
func (r *Room) Ban(by, reason string) {
	r.archive(chat.Membership{Banned: true, Sender: by, Reason: reason})
}

func (r *Room) archive(m chat.Membership) {
	r.mu.Lock()
	r.joined = false
	r.archived = true
	r.membership = m
	r.mu.Unlock()
	r.changes.notify()
}

// Receive appends an event from another user and bumps the unread count.
func (r *Room) Receive(sender, body string) chat.Entry {
	entry := chat.Entry{
		ID:        "$" + uuid.NewString(),
		Sender:    sender,
		Type:      chat.EventTypeMessage,
		Content:   chat.Content{"msgtype": chat.MsgTypeText, "body": body},
		Timestamp: r.now(),
	}
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.unread++
	timelines := r.timelineSnapshotLocked()
	r.mu.Unlock()

	r.changes.notify()
	for _, tl := range timelines {
		tl.changes.notify()
	}
	return entry
}

func (r *Room) OpenTimeline(ctx context.Context) (chat.Timeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forgotten {
		return nil, fmt.Errorf("open timeline %s: room was forgotten", r.id)
	}
	tl := &Timeline{room: r}
	r.timelines[tl] = struct{}{}
	return tl, nil
}

// OpenTimelines returns the number of timelines not yet disposed.
func (r *Room) OpenTimelines() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timelines)
}

func (r *Room) ClearUnread(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	changed := r.unread != 0
	r.unread = 0
	r.mu.Unlock()
	if changed {
		r.changes.notify()
	}
	return nil
}

// SendEvent appends the event to the room. Each attachment is "uploaded" and
// its URL written at its dotted content path.
func (r *Room) SendEvent(ctx context.Context, eventType string, content chat.Content, attachments chat.Attachments) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body := maps.Clone(content)
	for path, att := range attachments {
		if att == nil {
			continue
		}
		setPath(body, path, "mxc://parlor.local/"+uuid.NewString())
	}

	r.mu.Lock()
	if !r.joined {
		r.mu.Unlock()
		return fmt.Errorf("send to %s: %w", r.id, ErrNotJoined)
	}
	r.entries = append(r.entries, chat.Entry{
		ID:        "$" + uuid.NewString(),
		Sender:    r.userID,
		Type:      eventType,
		Content:   body,
		Timestamp: r.now(),
	})
	timelines := r.timelineSnapshotLocked()
	r.mu.Unlock()

	for _, tl := range timelines {
		tl.changes.notify()
	}
	return nil
}

func (r *Room) CreateAttachment(blob chat.Blob, name string) *chat.Attachment {
	return &chat.Attachment{Name: name, Blob: blob}
}

func (r *Room) Leave(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	if !r.joined {
		r.mu.Unlock()
		return fmt.Errorf("leave %s: %w", r.id, ErrNotJoined)
	}
	r.joined = false
	r.archived = true
	r.membership = chat.Membership{}
	r.mu.Unlock()
	r.changes.notify()
	return nil
}

func (r *Room) Forget(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	if !r.archived {
		r.mu.Unlock()
		return fmt.Errorf("forget %s: %w", r.id, ErrNotArchived)
	}
	r.forgotten = true
	r.mu.Unlock()
	r.changes.notify()
	return nil
}

func (r *Room) Join(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	if r.membership.Banned {
		r.mu.Unlock()
		return fmt.Errorf("join %s: %w", r.id, ErrBanned)
	}
	r.joined = true
	r.archived = false
	r.forgotten = false
	r.membership = chat.Membership{}
	r.mu.Unlock()
	r.changes.notify()
	return nil
}

func (r *Room) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released = true
}

func (r *Room) timelineSnapshotLocked() []*Timeline {
	out := make([]*Timeline, 0, len(r.timelines))
	for tl := range r.timelines {
		out = append(out, tl)
	}
	return out
}

func (r *Room) entriesSnapshot() []chat.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]chat.Entry(nil), r.entries...)
}

func (r *Room) closeTimeline(tl *Timeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.timelines, tl)
}

// setPath writes value at a dotted path such as "info.thumbnail_url",
// creating intermediate maps. Nested maps are copied before being written.
func setPath(content map[string]any, path, value string) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		content[head] = value
		return
	}
	var child map[string]any
	switch v := content[head].(type) {
	case map[string]any:
		child = maps.Clone(v)
	case chat.Content:
		child = maps.Clone(map[string]any(v))
	default:
		child = make(map[string]any)
	}
	setPath(child, rest, value)
	content[head] = child
}

// Timeline is a live view of a Room's entries.
type Timeline struct {
	room     *Room
	changes  listeners
	disposed sync.Once
}

var _ chat.Timeline = (*Timeline)(nil)

func (t *Timeline) Entries() []chat.Entry     { return t.room.entriesSnapshot() }
func (t *Timeline) OnChange(cb func()) func() { return t.changes.add(cb) }
func (t *Timeline) Dispose()                  { t.disposed.Do(func() { t.room.closeTimeline(t) }) }
