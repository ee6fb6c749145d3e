package viewmodel

import (
	"context"
	"sync"
	"time"

	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/delay"
	"github.com/zjrosen/parlor/internal/observable"
)

// mockClock implements delay.Clock for deterministic testing.
type mockClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) NewTimer(d time.Duration) delay.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &mockTimer{deadline: c.now.Add(d), ch: make(chan time.Time, 1)}
	c.timers = append(c.timers, t)
	return t
}

func (c *mockClock) TimerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves time forward and fires expired timers.
func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	timers := append([]*mockTimer(nil), c.timers...)
	c.mu.Unlock()

	for _, t := range timers {
		t.mu.Lock()
		if !t.stopped && !t.fired && !t.deadline.After(now) {
			t.fired = true
			t.ch <- now
		}
		t.mu.Unlock()
	}
}

type mockTimer struct {
	mu       sync.Mutex
	deadline time.Time
	ch       chan time.Time
	stopped  bool
	fired    bool
}

func (t *mockTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	running := !t.stopped && !t.fired
	t.stopped = true
	return running
}

func (t *mockTimer) C() <-chan time.Time { return t.ch }

// listeners is a set of change callbacks that counts unsubscribes.
type listeners struct {
	mu      sync.Mutex
	next    int
	cbs     map[int]func()
	removed int
}

func (l *listeners) add(cb func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cbs == nil {
		l.cbs = make(map[int]func())
	}
	l.next++
	id := l.next
	l.cbs[id] = cb
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.cbs, id)
			l.removed++
		})
	}
}

func (l *listeners) fire() {
	l.mu.Lock()
	cbs := make([]func(), 0, len(l.cbs))
	for _, cb := range l.cbs {
		cbs = append(cbs, cb)
	}
	l.mu.Unlock()
	for _, cb := range cbs {
		cb()
	}
}

func (l *listeners) unsubscribed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removed
}

func (l *listeners) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cbs)
}

type sentEvent struct {
	eventType   string
	content     chat.Content
	attachments chat.Attachments
}

type fakeRoom struct {
	mu sync.Mutex

	id, name   string
	archived   bool
	joined     bool
	kicked     bool
	banned     bool
	membership chat.Membership
	encrypted  bool

	timeline   *fakeTimeline
	openErr    error
	sendErr    error
	clearErr   error
	leaveErr   error
	joinErr    error
	forgetErr  error
	sent       []sentEvent
	cleared    int
	released   int
	left       int
	forgotten  int
	rejoined   int
	changeSubs listeners
}

func newFakeRoom() *fakeRoom {
	return &fakeRoom{id: "!room:parlor.local", name: "General", joined: true, timeline: &fakeTimeline{}}
}

func (r *fakeRoom) ID() string                { return r.id }
func (r *fakeRoom) Name() string              { return r.name }
func (r *fakeRoom) AvatarColorID() string     { return r.id }
func (r *fakeRoom) AvatarURL(size int) string { return "" }
func (r *fakeRoom) IsEncrypted() bool         { return r.encrypted }
func (r *fakeRoom) IsArchived() bool          { return r.archived }
func (r *fakeRoom) IsJoined() bool            { return r.joined }
func (r *fakeRoom) IsKicked() bool            { return r.kicked }
func (r *fakeRoom) IsBanned() bool            { return r.banned }
func (r *fakeRoom) Membership() chat.Membership {
	return r.membership
}

func (r *fakeRoom) OnChange(cb func()) func() { return r.changeSubs.add(cb) }

func (r *fakeRoom) OpenTimeline(context.Context) (chat.Timeline, error) {
	if r.openErr != nil {
		return nil, r.openErr
	}
	return r.timeline, nil
}

func (r *fakeRoom) ClearUnread(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared++
	return r.clearErr
}

func (r *fakeRoom) clearedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cleared
}

func (r *fakeRoom) SendEvent(_ context.Context, eventType string, content chat.Content, attachments chat.Attachments) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sendErr != nil {
		return r.sendErr
	}
	r.sent = append(r.sent, sentEvent{eventType: eventType, content: content, attachments: attachments})
	return nil
}

func (r *fakeRoom) CreateAttachment(blob chat.Blob, name string) *chat.Attachment {
	return &chat.Attachment{Name: name, Blob: blob}
}

func (r *fakeRoom) Leave(context.Context) error {
	r.left++
	return r.leaveErr
}

func (r *fakeRoom) Forget(context.Context) error {
	r.forgotten++
	return r.forgetErr
}

func (r *fakeRoom) Join(context.Context) error {
	r.rejoined++
	return r.joinErr
}

func (r *fakeRoom) Release() { r.released++ }

type fakeTimeline struct {
	mu       sync.Mutex
	entries  []chat.Entry
	disposed int
	subs     listeners
}

func (t *fakeTimeline) Entries() []chat.Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]chat.Entry(nil), t.entries...)
}

func (t *fakeTimeline) OnChange(cb func()) func() { return t.subs.add(cb) }

func (t *fakeTimeline) Dispose() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.disposed++
}

type fakeCall struct {
	id, roomID string
	joined     bool
	subs       listeners
}

func (c *fakeCall) ID() string      { return c.id }
func (c *fakeCall) RoomID() string  { return c.roomID }
func (c *fakeCall) Name() string    { return "call " + c.id }
func (c *fakeCall) HasJoined() bool { return c.joined }

func (c *fakeCall) Join(context.Context, chat.LocalMedia) error { return nil }
func (c *fakeCall) Leave(context.Context) error {
	c.joined = false
	return nil
}
func (c *fakeCall) OnChange(cb func()) func() { return c.subs.add(cb) }

type fakeCallHandler struct {
	calls *observable.ObservableMap[string, chat.Call]
}

func newFakeCallHandler() *fakeCallHandler {
	return &fakeCallHandler{calls: observable.NewObservableMap[string, chat.Call]()}
}

func (h *fakeCallHandler) Calls() observable.Collection[string, chat.Call] { return h.calls }

func (h *fakeCallHandler) CreateCall(context.Context, string, string, string) (chat.Call, error) {
	panic("not used")
}

type fakeBlob struct {
	mime string
	data []byte
}

func (b fakeBlob) MimeType() string { return b.mime }
func (b fakeBlob) Size() int64      { return int64(len(b.data)) }
func (b fakeBlob) Bytes() []byte    { return b.data }

type fakeImage struct {
	w, h     int
	blob     fakeBlob
	duration time.Duration
	scaledTo []int
	disposed int
}

func (i *fakeImage) Blob() chat.Blob { return i.blob }
func (i *fakeImage) Width() int      { return i.w }
func (i *fakeImage) Height() int     { return i.h }
func (i *fakeImage) MaxDimension() int {
	return max(i.w, i.h)
}

func (i *fakeImage) Scale(_ context.Context, maxDimension int) (chat.Image, error) {
	i.scaledTo = append(i.scaledTo, maxDimension)
	ratio := float64(maxDimension) / float64(i.MaxDimension())
	return &fakeImage{
		w:    int(float64(i.w) * ratio),
		h:    int(float64(i.h) * ratio),
		blob: fakeBlob{mime: i.blob.mime, data: []byte("scaled")},
	}, nil
}

func (i *fakeImage) Dispose()                { i.disposed++ }
func (i *fakeImage) Duration() time.Duration { return i.duration }
