// Package chat defines the collaborators the room view-model consumes: the
// room object, its timeline, calls and the call handler, the platform, error
// reporting and navigation. Implementations live elsewhere (see memroom and
// platform); the view-model only ever sees these interfaces.
package chat

import (
	"context"
	"time"

	"github.com/zjrosen/parlor/internal/observable"
)

// Event and message types used by the view-model.
const (
	EventTypeMessage = "m.room.message"

	MsgTypeText  = "m.text"
	MsgTypeEmote = "m.emote"
	MsgTypeFile  = "m.file"
	MsgTypeImage = "m.image"
	MsgTypeVideo = "m.video"

	CallTypeVideo = "m.video"
)

// Content is the JSON-shaped body of an event.
type Content map[string]any

// Attachments maps a dotted content path (e.g. "url", "info.thumbnail_url")
// to the attachment whose upload URL should be written there.
type Attachments map[string]*Attachment

// Blob is an in-memory file body with a sniffed MIME type.
type Blob interface {
	MimeType() string
	Size() int64
	Bytes() []byte
}

// File is a user-picked file.
type File struct {
	Name string
	Blob Blob
}

// Attachment is a blob staged for upload with the event that references it.
type Attachment struct {
	Name string
	Blob Blob
}

// Membership describes how the local user left an archived room.
type Membership struct {
	Kicked bool
	Banned bool
	// Sender is who kicked or banned the user, if anyone.
	Sender string
	Reason string
}

// Room is the external, mutable room object. The view-model never owns it.
type Room interface {
	ID() string
	Name() string
	AvatarColorID() string
	AvatarURL(size int) string
	IsEncrypted() bool
	IsArchived() bool
	IsJoined() bool
	IsKicked() bool
	IsBanned() bool
	Membership() Membership

	// OnChange registers cb for "something about the room changed".
	// The room does not say which fields changed.
	OnChange(cb func()) (unsubscribe func())

	OpenTimeline(ctx context.Context) (Timeline, error)
	ClearUnread(ctx context.Context) error
	SendEvent(ctx context.Context, eventType string, content Content, attachments Attachments) error
	CreateAttachment(blob Blob, name string) *Attachment

	Leave(ctx context.Context) error
	Forget(ctx context.Context) error
	Join(ctx context.Context) error
	// Release frees an archived room handle.
	Release()
}

// Entry is one item of a room timeline.
type Entry struct {
	ID        string
	Sender    string
	Type      string
	Content   Content
	Timestamp time.Time
}

// Body returns the textual body of the entry, if any.
func (e Entry) Body() string {
	if b, ok := e.Content["body"].(string); ok {
		return b
	}
	return ""
}

// MsgType returns the message type of the entry, if any.
func (e Entry) MsgType() string {
	if t, ok := e.Content["msgtype"].(string); ok {
		return t
	}
	return ""
}

// Timeline is an open window onto a room's events. It must be disposed.
type Timeline interface {
	Entries() []Entry
	OnChange(cb func()) (unsubscribe func())
	Dispose()
}

// LocalMedia is the local audio/video stream a call is joined with.
type LocalMedia interface {
	HasAudio() bool
	HasVideo() bool
	Dispose()
}

// MediaRequest asks the platform for local tracks.
type MediaRequest struct {
	Audio bool
	Video bool
}

// Call is an ongoing group call.
type Call interface {
	ID() string
	RoomID() string
	Name() string
	HasJoined() bool
	Join(ctx context.Context, media LocalMedia) error
	Leave(ctx context.Context) error
	OnChange(cb func()) (unsubscribe func())
}

// CallHandler owns the calls of a session.
type CallHandler interface {
	Calls() observable.Collection[string, Call]
	CreateCall(ctx context.Context, roomID, callType, label string) (Call, error)
}

// ErrorReporter records an error for display without ever failing.
type ErrorReporter interface {
	ReportError(err error)
}

// Image is a decoded image (or video frame source) that can be rescaled.
type Image interface {
	Blob() Blob
	Width() int
	Height() int
	MaxDimension() int
	Scale(ctx context.Context, maxDimension int) (Image, error)
	Dispose()
}

// Video is a decoded video; scaling it produces a thumbnail image.
type Video interface {
	Image
	Duration() time.Duration
}

// Platform provides file, media and settings access.
type Platform interface {
	// OpenFile asks the user for a file matching accept (a MIME pattern such
	// as "image/*", or "" for anything). A nil file means the user cancelled.
	OpenFile(ctx context.Context, accept string) (*File, error)
	HasReadPixelPermission() bool
	LoadImage(ctx context.Context, blob Blob) (Image, error)
	LoadVideo(ctx context.Context, blob Blob) (Video, error)
	GetLocalMedia(ctx context.Context, req MediaRequest) (LocalMedia, error)
	Random() float64
	// SettingInt returns an integer setting; ok is false when it is unset.
	SettingInt(ctx context.Context, key string) (value int, ok bool, err error)
}

// Navigator moves the UI between rooms and panels.
type Navigator interface {
	OpenRoom(roomID string)
	CloseRoom(roomID string)
	OpenDetails(roomID string)
}

// Session is the subset of a chat session used by slash commands.
type Session interface {
	JoinRoom(ctx context.Context, idOrAlias string) (roomID string, err error)
}
