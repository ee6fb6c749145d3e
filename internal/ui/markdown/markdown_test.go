package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_TrimsSurroundingBlankLines(t *testing.T) {
	r, err := New(40)
	require.NoError(t, err)
	require.Equal(t, 40, r.Width())

	lines, err := r.Render("hello")
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	require.NotEmpty(t, strings.TrimSpace(lines[0]))
	require.NotEmpty(t, strings.TrimSpace(lines[len(lines)-1]))
	require.Contains(t, strings.Join(lines, "\n"), "hello")
}

func TestRender_Blocks(t *testing.T) {
	r, err := New(40)
	require.NoError(t, err)

	lines, err := r.Render("# Agenda\n\n- first item\n- second item")
	require.NoError(t, err)
	out := strings.Join(lines, "\n")
	require.Contains(t, out, "Agenda")
	require.Contains(t, out, "first item")
	require.Contains(t, out, "second item")
	require.Greater(t, len(lines), 2)
}

func TestRender_Wraps(t *testing.T) {
	r, err := New(20)
	require.NoError(t, err)

	lines, err := r.Render(strings.Repeat("word ", 20))
	require.NoError(t, err)
	require.Greater(t, len(lines), 1)
}
