package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAvatarLetter(t *testing.T) {
	tests := map[string]string{
		"general":   "G",
		"#general":  "G",
		"@alice:hs": "A",
		"!room":     "R",
		"ébène":     "É",
		"e\u0301te": "E\u0301",
		"🇫🇷 Paris":  "🇫🇷",
		"#":         "",
		"":          "",
	}
	for name, want := range tests {
		require.Equal(t, want, avatarLetter(name), name)
	}
}

func TestAvatarColorNumber(t *testing.T) {
	require.Equal(t, 8, avatarColorNumber("!abc:example.org"))
	require.Equal(t, 7, avatarColorNumber("@alice:example.org"))
	require.Equal(t, 2, avatarColorNumber("a"))
	require.Equal(t, 1, avatarColorNumber(""))
}

func TestAvatarColorNumber_AlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := avatarColorNumber(rapid.String().Draw(t, "id"))
		if n < 1 || n > 8 {
			t.Fatalf("colour %d out of range", n)
		}
	})
}
