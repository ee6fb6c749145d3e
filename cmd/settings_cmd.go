package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/parlor/internal/settings"
)

var errNoSettingsDB = errors.New("settings.db_path is not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and write stored settings",
	Long: `Read and write integer settings kept in the settings database.

Examples:
  parlor settings set sentImageSizeLimit 800
  parlor settings get sentImageSizeLimit
  parlor settings delete sentImageSizeLimit`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(ctx context.Context, out io.Writer, store *settings.Store, args []string) error {
		return getSetting(ctx, out, store, args[0])
	}),
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store an integer setting",
	Args:  cobra.ExactArgs(2),
	RunE: withStore(func(ctx context.Context, out io.Writer, store *settings.Store, args []string) error {
		return setSetting(ctx, out, store, args[0], args[1])
	}),
}

var settingsDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(ctx context.Context, out io.Writer, store *settings.Store, args []string) error {
		if err := store.Delete(ctx, args[0]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "%s deleted\n", args[0])
		return err
	}),
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsDeleteCmd)
	rootCmd.AddCommand(settingsCmd)
}

type storeFunc func(ctx context.Context, out io.Writer, store *settings.Store, args []string) error

// withStore opens the configured settings database around fn.
func withStore(fn storeFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cfg.Settings.DBPath == "" {
			return errNoSettingsDB
		}
		db, err := settings.NewDB(cfg.Settings.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return fn(cmd.Context(), cmd.OutOrStdout(), settings.NewStore(db), args)
	}
}

func getSetting(ctx context.Context, out io.Writer, store *settings.Store, key string) error {
	value, ok, err := store.GetInt(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		_, err = fmt.Fprintf(out, "%s is not set\n", key)
		return err
	}
	_, err = fmt.Fprintf(out, "%s = %d\n", key, value)
	return err
}

func setSetting(ctx context.Context, out io.Writer, store *settings.Store, key, raw string) error {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("setting %s: %q is not an integer", key, raw)
	}
	if err := store.SetInt(ctx, key, value); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s = %d\n", key, value)
	return err
}
