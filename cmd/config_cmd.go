package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/parlor/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the configuration file",
	// An invalid file must stay editable.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a value in the configuration file, keeping its comments.

Examples:
  parlor config set room.name "Book club"
  parlor config set media.drop_dir ~/Downloads/parlor
  parlor config set tracing.enabled true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfigValue(cmd.OutOrStdout(), configFilePath(), args[0], args[1])
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		return showConfig(cmd.OutOrStdout(), cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), configFilePath())
	},
}

func init() {
	configCmd.AddCommand(configSetCmd, configShowCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func setConfigValue(out io.Writer, path, key, value string) error {
	if err := config.SetValue(path, key, value); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%s = %s (%s)\n", key, value, path)
	return err
}

func showConfig(out io.Writer, c config.Config) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
