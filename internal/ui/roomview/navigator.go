package roomview

import "github.com/zjrosen/parlor/internal/chat"

// Navigation kinds carried by NavigateMsg.
const (
	NavOpenRoom    = "open"
	NavCloseRoom   = "close"
	NavOpenDetails = "details"
)

// NavigateMsg asks the view to move somewhere.
type NavigateMsg struct {
	Kind   string
	RoomID string
}

// Navigator turns view-model navigation requests into NavigateMsgs. The
// view-model calls it from command goroutines, so requests are queued on a
// channel the model listens to.
type Navigator struct {
	ch chan NavigateMsg
}

var _ chat.Navigator = (*Navigator)(nil)

// NewNavigator creates a navigator with room for a few pending requests.
func NewNavigator() *Navigator {
	return &Navigator{ch: make(chan NavigateMsg, 8)}
}

func (n *Navigator) OpenRoom(roomID string)    { n.push(NavOpenRoom, roomID) }
func (n *Navigator) CloseRoom(roomID string)   { n.push(NavCloseRoom, roomID) }
func (n *Navigator) OpenDetails(roomID string) { n.push(NavOpenDetails, roomID) }

// Requests returns the channel of pending navigation.
func (n *Navigator) Requests() <-chan NavigateMsg { return n.ch }

func (n *Navigator) push(kind, roomID string) {
	select {
	case n.ch <- NavigateMsg{Kind: kind, RoomID: roomID}:
	default:
	}
}
