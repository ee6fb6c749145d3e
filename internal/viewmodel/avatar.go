package viewmodel

import (
	"strings"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// avatarLetter returns the upper-cased first grapheme of name, skipping a
// leading sigil ('!', '@' or '#').
func avatarLetter(name string) string {
	if name == "" {
		return ""
	}
	switch name[0] {
	case '!', '@', '#':
		name = name[1:]
	}
	first, _, _, _ := uniseg.FirstGraphemeClusterInString(name, -1)
	return strings.ToUpper(first)
}

// avatarColorNumber maps id onto one of eight avatar colours (1..8).
// The hash runs over UTF-16 code units with 32-bit wraparound so every
// client picks the same colour for the same id.
func avatarColorNumber(id string) int {
	var hash int32
	for _, unit := range utf16.Encode([]rune(id)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return int(abs%8) + 1
}
