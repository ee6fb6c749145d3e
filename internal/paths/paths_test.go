package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/Downloads/parlor", filepath.Join(home, "Downloads", "parlor")},
		{"absolute", "/var/tmp/../drop", "/var/drop"},
		{"relative", "./drop/", "drop"},
		{"other user", "~bob/drop", "~bob/drop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
