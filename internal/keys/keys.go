// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// RoomKeyMap defines the keybindings of the room view.
type RoomKeyMap struct {
	// Composer
	Send    key.Binding
	Reply   key.Binding
	Dismiss key.Binding

	// Room
	StartCall key.Binding
	Hangup    key.Binding
	Leave     key.Binding
	Rejoin    key.Binding
	Forget    key.Binding
	Details   key.Binding

	// General
	Logs key.Binding
	Help key.Binding
	Quit key.Binding
}

// Room is the room view keymap.
var Room = DefaultRoomKeyMap()

// DefaultRoomKeyMap returns the default room keybindings.
func DefaultRoomKeyMap() RoomKeyMap {
	return RoomKeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Reply: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "reply to latest"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		StartCall: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "start call"),
		),
		Hangup: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "hang up"),
		),
		Leave: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "leave room"),
		),
		Rejoin: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rejoin"),
		),
		Forget: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "forget room"),
		),
		Details: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "room details"),
		),
		Logs: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "debug log"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k RoomKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Reply, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k RoomKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Reply, k.Dismiss},
		{k.StartCall, k.Hangup},
		{k.Leave, k.Rejoin, k.Forget},
		{k.Details, k.Logs, k.Help, k.Quit},
	}
}

// SetArchived enables the bindings that apply to a room in the given state.
func (k *RoomKeyMap) SetArchived(archived bool) {
	k.Send.SetEnabled(!archived)
	k.Reply.SetEnabled(!archived)
	k.StartCall.SetEnabled(!archived)
	k.Hangup.SetEnabled(!archived)
	k.Leave.SetEnabled(!archived)
	k.Rejoin.SetEnabled(archived)
	k.Forget.SetEnabled(archived)
}

// SetLogs enables the debug log binding. It is off unless logging is on.
func (k *RoomKeyMap) SetLogs(enabled bool) {
	k.Logs.SetEnabled(enabled)
}
