// Package config provides configuration types, defaults and persistence for parlor.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/paths"
	"github.com/zjrosen/parlor/internal/tracing"
)

// Config holds all configuration options for parlor.
type Config struct {
	Room     RoomConfig     `mapstructure:"room" yaml:"room"`
	Features FeaturesConfig `mapstructure:"features" yaml:"features"`
	Media    MediaConfig    `mapstructure:"media" yaml:"media"`
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
	Tracing  tracing.Config `mapstructure:"tracing" yaml:"tracing"`
}

// RoomConfig describes the demo room opened at startup.
type RoomConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	UserID   string `mapstructure:"user_id" yaml:"user_id" validate:"omitempty,startswith=@"`
	Archived bool   `mapstructure:"archived" yaml:"archived"`

	// ClearUnreadDelay is how long the room stays open before it is marked read.
	ClearUnreadDelay time.Duration `mapstructure:"clear_unread_delay" yaml:"clear_unread_delay" validate:"gte=0"`
}

// FeaturesConfig toggles optional functionality.
type FeaturesConfig struct {
	Calls bool `mapstructure:"calls" yaml:"calls"`
}

// MediaConfig configures attachments.
type MediaConfig struct {
	// DropDir is watched for files to send. Empty disables the drop folder.
	DropDir  string        `mapstructure:"drop_dir" yaml:"drop_dir"`
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" validate:"gte=0"`
	// ReadPixels grants the permission image and video sending require.
	ReadPixels bool `mapstructure:"read_pixels" yaml:"read_pixels"`
}

// SettingsConfig locates the settings database.
type SettingsConfig struct {
	DBPath string `mapstructure:"db_path" yaml:"db_path"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowTimestamps bool        `mapstructure:"show_timestamps" yaml:"show_timestamps"`
	MaxTiles       int         `mapstructure:"max_tiles" yaml:"max_tiles" validate:"gte=1"`
	Theme          ThemeConfig `mapstructure:"theme" yaml:"theme"`

	// Markdown renders message bodies as markdown.
	Markdown bool `mapstructure:"markdown" yaml:"markdown"`
}

// ThemeConfig overrides the room view colors.
type ThemeConfig struct {
	Accent string `mapstructure:"accent" yaml:"accent" validate:"omitempty,hexcolor"`
	Subtle string `mapstructure:"subtle" yaml:"subtle" validate:"omitempty,hexcolor"`
	Error  string `mapstructure:"error" yaml:"error" validate:"omitempty,hexcolor"`
}

// DefaultConfigDir returns ~/.config/parlor, or "" if the home dir is unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "parlor")
}

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// DefaultSettingsDBPath returns the default settings database location.
func DefaultSettingsDBPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "settings.db")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tr := tracing.DefaultConfig()
	tr.FilePath = DefaultTracesFilePath()
	return Config{
		Room: RoomConfig{
			Name:             "Parlor",
			UserID:           "@me:parlor.local",
			ClearUnreadDelay: 2 * time.Second,
		},
		Features: FeaturesConfig{
			Calls: true,
		},
		Media: MediaConfig{
			Debounce:   500 * time.Millisecond,
			ReadPixels: true,
		},
		Settings: SettingsConfig{
			DBPath: DefaultSettingsDBPath(),
		},
		UI: UIConfig{
			ShowTimestamps: true,
			MaxTiles:       200,
			Theme: ThemeConfig{
				Accent: "#7D56F4",
				Subtle: "#696969",
				Error:  "#FF5F87",
			},
		},
		Tracing: tr,
	}
}

// SetDefaults registers every default with v so partial config files and
// environment overrides merge over them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("room.name", d.Room.Name)
	v.SetDefault("room.user_id", d.Room.UserID)
	v.SetDefault("room.archived", d.Room.Archived)
	v.SetDefault("room.clear_unread_delay", d.Room.ClearUnreadDelay)
	v.SetDefault("features.calls", d.Features.Calls)
	v.SetDefault("media.drop_dir", d.Media.DropDir)
	v.SetDefault("media.debounce", d.Media.Debounce)
	v.SetDefault("media.read_pixels", d.Media.ReadPixels)
	v.SetDefault("settings.db_path", d.Settings.DBPath)
	v.SetDefault("ui.show_timestamps", d.UI.ShowTimestamps)
	v.SetDefault("ui.markdown", d.UI.Markdown)
	v.SetDefault("ui.max_tiles", d.UI.MaxTiles)
	v.SetDefault("ui.theme.accent", d.UI.Theme.Accent)
	v.SetDefault("ui.theme.subtle", d.UI.Theme.Subtle)
	v.SetDefault("ui.theme.error", d.UI.Theme.Error)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load unmarshals v into a Config, validates it and expands "~" in paths.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	cfg.Media.DropDir = paths.ExpandHome(cfg.Media.DropDir)
	cfg.Settings.DBPath = paths.ExpandHome(cfg.Settings.DBPath)
	cfg.Tracing.FilePath = paths.ExpandHome(cfg.Tracing.FilePath)
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the tracing exporter requirements.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return ValidateTracing(cfg.Tracing)
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color, got %q", field, fe.Value())
	case "gte", "lte":
		return fmt.Sprintf("%s must be %s %s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// ValidateTracing checks exporter-specific requirements. Paths and
// endpoints only matter when tracing is enabled.
func ValidateTracing(tr tracing.Config) error {
	if !tr.Enabled {
		return nil
	}
	if tr.Exporter == tracing.ExporterFile && tr.FilePath == "" {
		return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
	}
	if tr.Exporter == tracing.ExporterOTLP && tr.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Parlor Configuration

# The room opened at startup
room:
  name: Parlor
  user_id: "@me:parlor.local"
  archived: false            # Start as if you had left the room
  clear_unread_delay: 2s     # Mark the room read after it stays open this long

features:
  calls: true                # Enable starting and showing calls

media:
  # drop_dir: ~/Downloads/parlor   # Files written here are sent to the room
  debounce: 500ms
  read_pixels: true          # Required to send images and videos

# settings:
#   db_path: ~/.config/parlor/settings.db

ui:
  show_timestamps: true
  markdown: false            # Render message bodies as markdown
  max_tiles: 200
  theme:
    accent: "#7D56F4"
    subtle: "#696969"
    error: "#FF5F87"

# Command tracing (OpenTelemetry)
# tracing:
#   enabled: true
#   exporter: file           # none, file, stdout or otlp
#   file_path: ~/.config/parlor/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
