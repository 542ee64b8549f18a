package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pomodoro/internal/storage"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	settings, err := storage.LoadConfig(configPath)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Configuration is invalid: %s\n", configPath)
		return err
	}

	out := cmd.OutOrStdout()
	color.New(color.FgGreen, color.Bold).Fprintf(out, "Configuration is valid: %s\n", configPath)
	fmt.Fprintf(out, "  work:        %d min\n", settings.Timer.WorkMinutes)
	fmt.Fprintf(out, "  short break: %d min\n", settings.Timer.ShortBreakMinutes)
	fmt.Fprintf(out, "  long break:  %d min\n", settings.Timer.LongBreakMinutes)
	fmt.Fprintf(out, "  sessions:    %d per cycle\n", settings.Timer.SessionsPerCycle)
	if settings.BellSound != "" {
		fmt.Fprintf(out, "  bell sound:  %s\n", settings.BellSound)
	}
	return nil
}
