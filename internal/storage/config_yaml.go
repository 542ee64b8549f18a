package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
)

const configFileName = "config.yaml"

// Optional keys.
const (
	KeyBellSound = "bell_sound"
	KeyLogLevel  = "log_level"
)

// ErrConfigExists is returned by SaveConfig when it would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// Settings is everything read from the configuration file.
type Settings struct {
	Timer     model.Config
	BellSound string
	LogLevel  string
}

// DefaultSettings returns the settings written by `pomodoro init`.
func DefaultSettings() Settings {
	return Settings{Timer: model.DefaultConfig()}
}

type yamlSettings struct {
	WorkTimeMin       int    `yaml:"work_time_min"`
	ShortBreakTimeMin int    `yaml:"short_break_time_min"`
	LongBreakTimeMin  int    `yaml:"long_break_time_min"`
	NumWorkSessions   int    `yaml:"num_work_sessions"`
	BellSound         string `yaml:"bell_sound,omitempty"`
	LogLevel          string `yaml:"log_level,omitempty"`
}

// DefaultConfigPath returns <user config dir>/<appName>/config.yaml.
func DefaultConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

// LoadConfig reads and validates the configuration file. Every failure,
// including a missing file, is a *model.ConfigError.
func LoadConfig(configPath string) (Settings, error) {
	var settings Settings

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, &model.ConfigError{Reason: fmt.Sprintf("config file %s not found (create one with `pomodoro init`)", configPath)}
		}
		return settings, &model.ConfigError{Reason: fmt.Sprintf("read config file: %v", err)}
	}

	var document yaml.Node
	if err := yaml.Unmarshal(rawData, &document); err != nil {
		return settings, &model.ConfigError{Reason: fmt.Sprintf("parse config yaml: %v", err)}
	}

	ints := map[string]*int{
		model.KeyWorkMinutes:       &settings.Timer.WorkMinutes,
		model.KeyShortBreakMinutes: &settings.Timer.ShortBreakMinutes,
		model.KeyLongBreakMinutes:  &settings.Timer.LongBreakMinutes,
		model.KeySessionsPerCycle:  &settings.Timer.SessionsPerCycle,
	}
	strs := map[string]*string{
		KeyBellSound: &settings.BellSound,
		KeyLogLevel:  &settings.LogLevel,
	}
	seen := map[string]bool{}

	if len(document.Content) > 0 {
		root := document.Content[0]
		if root.Kind != yaml.MappingNode {
			return settings, &model.ConfigError{Reason: "config file must contain a mapping of keys to values"}
		}
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, value := root.Content[i].Value, root.Content[i+1]
			if seen[key] {
				return settings, &model.ConfigError{Field: key, Reason: "duplicate key"}
			}
			seen[key] = true

			if target, ok := ints[key]; ok {
				if err := decodeInt(key, value, target); err != nil {
					return settings, err
				}
				continue
			}
			if target, ok := strs[key]; ok {
				if err := decodeString(key, value, target); err != nil {
					return settings, err
				}
				continue
			}
			return settings, &model.ConfigError{Field: key, Reason: "unknown key"}
		}
	}

	for _, key := range []string{
		model.KeyWorkMinutes,
		model.KeyShortBreakMinutes,
		model.KeyLongBreakMinutes,
		model.KeySessionsPerCycle,
	} {
		if !seen[key] {
			return settings, &model.ConfigError{Field: key, Reason: "missing"}
		}
	}

	if err := settings.Timer.Validate(); err != nil {
		return settings, err
	}
	if settings.LogLevel != "" {
		if _, err := zerolog.ParseLevel(settings.LogLevel); err != nil {
			return settings, &model.ConfigError{Field: KeyLogLevel, Reason: fmt.Sprintf("unknown level %q", settings.LogLevel)}
		}
	}

	return settings, nil
}

// SaveConfig writes settings as YAML. An existing file is only replaced when overwrite is set.
func SaveConfig(configPath string, settings Settings, overwrite bool) error {
	if err := settings.Timer.Validate(); err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, configPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkTimeMin:       settings.Timer.WorkMinutes,
		ShortBreakTimeMin: settings.Timer.ShortBreakMinutes,
		LongBreakTimeMin:  settings.Timer.LongBreakMinutes,
		NumWorkSessions:   settings.Timer.SessionsPerCycle,
		BellSound:         settings.BellSound,
		LogLevel:          settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	serialized = append([]byte("# Interval lengths are in minutes. Breaks must be shorter than 100 minutes.\n"), serialized...)

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func decodeInt(key string, node *yaml.Node, target *int) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return &model.ConfigError{Field: key, Reason: fmt.Sprintf("must be an integer, got %q", node.Value)}
	}
	if err := node.Decode(target); err != nil {
		return &model.ConfigError{Field: key, Reason: err.Error()}
	}
	return nil
}

func decodeString(key string, node *yaml.Node, target *string) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return &model.ConfigError{Field: key, Reason: "must be a string"}
	}
	*target = node.Value
	return nil
}
