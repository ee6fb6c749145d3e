package memroom

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/zjrosen/parlor/internal/chat"
)

// ErrRoomNotFound is returned by JoinRoom for unknown ids and aliases.
var ErrRoomNotFound = errors.New("room not found")

const maxSuggestDistance = 2

// Session is a directory of rooms addressable by id or "#alias".
type Session struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	aliases map[string]string
}

var _ chat.Session = (*Session)(nil)

// NewSession creates an empty directory.
func NewSession() *Session {
	return &Session{rooms: make(map[string]*Room), aliases: make(map[string]string)}
}

// AddRoom registers r and any aliases for it.
func (s *Session) AddRoom(r *Room, aliases ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID()] = r
	for _, a := range aliases {
		s.aliases[normalizeAlias(a)] = r.ID()
	}
}

// Room returns a registered room.
func (s *Session) Room(id string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	return r, ok
}

// JoinRoom resolves idOrAlias, joins the room and returns its id.
func (s *Session) JoinRoom(ctx context.Context, idOrAlias string) (string, error) {
	s.mu.Lock()
	r, ok := s.rooms[idOrAlias]
	if !ok {
		if id, found := s.aliases[normalizeAlias(idOrAlias)]; found {
			r, ok = s.rooms[id]
		}
	}
	suggestion := ""
	if !ok {
		suggestion = s.closestAliasLocked(idOrAlias)
	}
	s.mu.Unlock()

	if !ok {
		if suggestion != "" {
			return "", fmt.Errorf("%w: %s (did you mean #%s?)", ErrRoomNotFound, idOrAlias, suggestion)
		}
		return "", fmt.Errorf("%w: %s", ErrRoomNotFound, idOrAlias)
	}
	if r.IsJoined() {
		return r.ID(), nil
	}
	if err := r.Join(ctx); err != nil {
		return "", err
	}
	return r.ID(), nil
}

func normalizeAlias(a string) string {
	return strings.ToLower(strings.TrimPrefix(a, "#"))
}

// closestAliasLocked returns the known alias nearest to a mistyped one, if
// any is within maxSuggestDistance edits.
func (s *Session) closestAliasLocked(typed string) string {
	typed = normalizeAlias(typed)
	aliases := make([]string, 0, len(s.aliases))
	for a := range s.aliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)

	best, bestDist := "", maxSuggestDistance+1
	for _, a := range aliases {
		if d := levenshtein.ComputeDistance(typed, a); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}
