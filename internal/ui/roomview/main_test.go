package roomview

import (
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/zjrosen/parlor/internal/log"
)

func TestMain(m *testing.M) {
	// Plain output keeps view assertions independent of the terminal.
	lipgloss.SetColorProfile(termenv.Ascii)
	log.InitWriter(io.Discard)
	os.Exit(m.Run())
}
