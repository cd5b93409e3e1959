// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/emojipack/emojipack/internal/issue"
	"github.com/emojipack/emojipack/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "emojipack"
	// EnvPrefix prefixes the environment variables that override settings,
	// e.g. EMOJIPACK_NAMESPACE or EMOJIPACK_PNG_COMPRESSION.
	EnvPrefix = "EMOJIPACK"
	// ConfigFileName is the name of the user config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// PackConfigFileName is the config file looked up in the input directory.
	PackConfigFileName = AppName + "." + ConfigFileExt

	// OpLoadConfig is the operation of errors raised while reading a config file.
	OpLoadConfig = "load configuration"
	// OpValidateConfig is the operation of errors raised for invalid merged settings.
	OpValidateConfig = "validate configuration"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the emojipack user configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// UserConfigPath returns the user config file inside dir, or inside
// ConfigDir() when dir is empty.
func UserConfigPath(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// PackConfigPath returns <inputDir>/emojipack.cue.
func PackConfigPath(inputDir string) string {
	return filepath.Join(inputDir, PackConfigFileName)
}

// loadWithOptions performs option-driven config loading. It returns the
// loaded config and the config files that were merged, lowest precedence
// first.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, []string, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("namespace", defaults.Namespace.String())
	v.SetDefault("png.compression", defaults.PNG.Compression.String())
	v.SetDefault("max_parallel_loads", defaults.MaxParallelLoads)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.summary", defaults.UI.Summary)

	// EMOJIPACK_PNG_COMPRESSION overrides png.compression.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var sources []string

	// User-level config, if any.
	if userPath, err := UserConfigPath(opts.ConfigDirPath); err == nil {
		if fileExists(userPath) {
			if err := loadCUEIntoViper(v, userPath); err != nil {
				return nil, nil, loadError(userPath, err)
			}
			sources = append(sources, userPath)
		}
	}

	// Pack-level config: --config wins over <input>/emojipack.cue.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, nil, issue.NewErrorContext().
				WithOperation(OpLoadConfig).
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'emojipack config show' to see the default configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, nil, loadError(opts.ConfigFilePath, err)
		}
		sources = append(sources, opts.ConfigFilePath)
	} else if opts.InputDir != "" {
		packPath := PackConfigPath(opts.InputDir)
		if fileExists(packPath) {
			if err := loadCUEIntoViper(v, packPath); err != nil {
				return nil, nil, loadError(packPath, err)
			}
			sources = append(sources, packPath)
		}
	}

	// Command-line overrides take precedence over everything else.
	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment and flag values bypass the CUE schema.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, nil, issue.NewErrorContext().
			WithOperation(OpValidateConfig).
			WithSuggestion("namespace may only contain lowercase letters, digits, '_', '.' and '-'").
			WithSuggestion("png.compression is one of default, none, speed, best").
			WithSuggestion("Check EMOJIPACK_* environment variables and command-line flags").
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, sources, nil
}

func loadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation(OpLoadConfig).
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("See 'emojipack config --help' for configuration options").
		Wrap(err).
		BuildError()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Config fields are optional, so the value is validated non-concretely and
// decoded to a map that Viper merges over its defaults.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := cueutil.ParseAndDecode[map[string]any](
		[]byte(configSchema),
		data,
		"#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// WriteDefault writes a pack config file with default values to
// <inputDir>/emojipack.cue. An existing file is left untouched and reported
// with created == false.
func WriteDefault(inputDir string) (path string, created bool, err error) {
	path = PackConfigPath(inputDir)
	if fileExists(path) {
		return path, false, nil
	}

	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return path, false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// emojipack configuration\n")
	sb.WriteString("// Environment variables (EMOJIPACK_*) and flags override these values.\n\n")

	fmt.Fprintf(&sb, "namespace: %q\n", cfg.Namespace)
	fmt.Fprintf(&sb, "max_parallel_loads: %d\n", cfg.MaxParallelLoads)

	sb.WriteString("\npng: {\n")
	fmt.Fprintf(&sb, "\tcompression: %q\n", cfg.PNG.Compression)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tsummary: %v\n", cfg.UI.Summary)
	sb.WriteString("}\n")

	return sb.String()
}
