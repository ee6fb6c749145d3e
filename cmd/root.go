package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/parlor/internal/config"
	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/ui/roomview"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	localConfigPath = ".parlor/config.yaml"
	debugLogPath    = "parlor-debug.log"
	shutdownTimeout = 5 * time.Second
)

var (
	version   = "dev"
	cfgFile   string
	debug     bool
	cfg       config.Config
	cfgErr    error
	logCloser func()
)

var rootCmd = &cobra.Command{
	Use:     "parlor",
	Short:   "A terminal chat room",
	Long:    `A terminal chat room with replies, slash commands, attachments from a drop folder and calls.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfgErr
	},
	RunE: runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/parlor/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write a debug log to "+debugLogPath)
	rootCmd.Flags().String("room-name", "", "name of the room to open")
	rootCmd.Flags().Bool("archived", false, "open the room as if you had left it")
	rootCmd.Flags().String("drop-dir", "", "send files written to this directory")

	// Bind flags to viper
	_ = viper.BindPFlag("room.name", rootCmd.Flags().Lookup("room-name"))
	_ = viper.BindPFlag("room.archived", rootCmd.Flags().Lookup("archived"))
	_ = viper.BindPFlag("media.drop_dir", rootCmd.Flags().Lookup("drop-dir"))
}

func initConfig() {
	if debug || log.EnabledFromEnv() {
		closer, err := log.Init(debugLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "debug log disabled: %v\n", err)
		} else {
			logCloser = closer
		}
	}

	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix("parlor")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .parlor/config.yaml (current directory)
		// 2. ~/.config/parlor/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			viper.AddConfigPath(config.DefaultConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cfgErr = fmt.Errorf("reading config: %w", err)
			return
		}
		// No config file found anywhere - create the user config.
		if dir := config.DefaultConfigDir(); dir != "" {
			defaultPath := filepath.Join(dir, "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
		}
	}
	log.Debug(log.CatConfig, "Config loaded", "path", viper.ConfigFileUsed())

	cfg, cfgErr = config.Load(viper.GetViper())
}

// configFilePath is the file `config set` edits.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	if dir := config.DefaultConfigDir(); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return localConfigPath
}

func runApp(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	model := roomview.New(roomview.Options{
		Room:      rt.vm,
		Errors:    rt.errors,
		Navigator: rt.navigator,
		Picker:    rt.picker,
		Files:     rt.files,
		UI:        cfg.UI,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err = p.Run()
	model.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if closeErr := rt.Close(ctx); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCloser != nil {
			logCloser()
		}
	}()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
