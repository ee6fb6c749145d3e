package viewmodel

import (
	"time"

	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/lifecycle"
)

// Tile is one rendered timeline row.
type Tile struct {
	ID        string
	Sender    string
	Body      string
	MsgType   string
	Timestamp time.Time
	// ReplyTo is the event id this entry replies to, if any.
	ReplyTo string
}

// IsEmote reports whether the tile is a /me message.
func (t Tile) IsEmote() bool { return t.MsgType == chat.MsgTypeEmote }

// TimelineViewModel presents an open timeline. Disposing it closes the timeline.
type TimelineViewModel struct {
	base
	timeline chat.Timeline
}

func newTimelineViewModel(timeline chat.Timeline, forward func(string)) *TimelineViewModel {
	vm := &TimelineViewModel{timeline: timeline}
	vm.init(forward)
	vm.tracker.Track(timeline)
	vm.tracker.Track(lifecycle.Func(timeline.OnChange(func() { vm.EmitChange("tiles") })))
	return vm
}

// Tiles returns the current entries as tiles, oldest first.
func (vm *TimelineViewModel) Tiles() []Tile {
	entries := vm.timeline.Entries()
	tiles := make([]Tile, 0, len(entries))
	for _, e := range entries {
		tiles = append(tiles, Tile{
			ID:        e.ID,
			Sender:    e.Sender,
			Body:      e.Body(),
			MsgType:   e.MsgType(),
			Timestamp: e.Timestamp,
			ReplyTo:   replyTarget(e.Content),
		})
	}
	return tiles
}

// Dispose unsubscribes from the timeline and closes it.
func (vm *TimelineViewModel) Dispose() { vm.tracker.Dispose() }

func replyTarget(content chat.Content) string {
	rel, ok := content[relatesToKey].(map[string]any)
	if !ok {
		return ""
	}
	reply, ok := rel[inReplyToKey].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := reply["event_id"].(string)
	return id
}
