package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SetValue(configPath, "ui.theme.accent", "#FF0000"))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ui:")
	assert.Contains(t, string(data), "accent: '#FF0000'")
}

func TestSetValue_PreservesOtherConfigAndComments(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# my parlor
room:
  name: Parlor # shown in the header
  archived: false
features:
  calls: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o600))

	require.NoError(t, SetValue(configPath, "room.name", "Kitchen"))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# my parlor")
	assert.Contains(t, content, "name: Kitchen # shown in the header")
	assert.Contains(t, content, "archived: false")
	assert.Contains(t, content, "calls: true")
}

func TestSetValue_Roundtrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	require.NoError(t, SetValue(configPath, "features.calls", "false"))
	require.NoError(t, SetValue(configPath, "room.clear_unread_delay", "5s"))
	require.NoError(t, SetValue(configPath, "media.drop_dir", "/tmp/drop"))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	cfg, err := Load(v)
	require.NoError(t, err)

	require.False(t, cfg.Features.Calls)
	require.Equal(t, "5s", cfg.Room.ClearUnreadDelay.String())
	require.Equal(t, "/tmp/drop", cfg.Media.DropDir)
	require.Equal(t, "Parlor", cfg.Room.Name)
}

func TestSetValue_NotASection(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("room: lobby\n"), 0o600))

	err := SetValue(configPath, "room.name", "x")
	require.ErrorContains(t, err, "room is not a section")
}

func TestSetValue_EmptyKey(t *testing.T) {
	require.ErrorIs(t, SetValue(filepath.Join(t.TempDir(), "c.yaml"), " ", "x"), ErrEmptyKey)
}

func TestSetValue_AtomicWrite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	require.NoError(t, SetValue(configPath, "room.name", "A"))
	require.NoError(t, SetValue(configPath, "room.name", "B"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	require.Equal(t, "config.yaml", entries[0].Name())
}
