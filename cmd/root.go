package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pomodoro/internal/storage"
)

const appName = "pomodoro"

var (
	version = "dev"
	options = viper.New()
)

// rootCmd runs the timer when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Pomodoro interval timer for the terminal",
	Long: `pomodoro alternates work sessions with short breaks and takes a long break
after every cycle. Press any key to pause or resume the countdown, and to move
on once an interval has finished. Ctrl+C quits.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTimer,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to configuration file (default <user config dir>/pomodoro/config.yaml)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default warn)")
	flags.String("log-format", "text", "Log format: text or json")

	options.SetEnvPrefix("POMODORO")
	options.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	options.AutomaticEnv()
	for _, name := range []string{"config", "log-level", "log-format"} {
		_ = options.BindPFlag(name, flags.Lookup(name))
	}
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pomodoro:", err)
		os.Exit(1)
	}
}

func resolveConfigPath() (string, error) {
	if path := options.GetString("config"); path != "" {
		return path, nil
	}
	return storage.DefaultConfigPath(appName)
}
