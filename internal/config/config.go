// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/invowk/namekit/internal/issue"
	"github.com/invowk/namekit/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "namekit"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. NAMEKIT_DEFAULT_SYNTAX.
	EnvPrefix = "NAMEKIT"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the namekit configuration directory: %APPDATA%\namekit
// on Windows, ~/Library/Application Support/namekit on macOS and
// $XDG_CONFIG_HOME/namekit (default ~/.config/namekit) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, AppName), nil
}

// DefaultConfigPath returns the config file inside ConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions merges defaults, the first config file found and NAMEKIT_*
// environment variables, in increasing order of precedence.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config canceled: %w", err)
	}

	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("default_syntax", defaults.DefaultSyntax)
	v.SetDefault("syntax_files", defaults.SyntaxFiles)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := resolveConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE").
				WithSuggestion("Run 'namekit config show' to see the expected fields").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = path

	if valid, errs := cfg.IsValid(); !valid {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check the " + EnvPrefix + "_* environment variables").
			Wrap(errors.Join(errs...)).
			BuildError()
	}

	return &cfg, nil
}

// resolveConfigFile picks the file to read: the explicit path (which must
// exist), else config.cue in the config directory, else ./config.cue.
// It returns "" when none exists.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Verify the --config path").
				WithSuggestion("Run 'namekit config init' to create a default file").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}

	fileName := ConfigFileName + "." + ConfigFileExt
	for _, candidate := range []string{filepath.Join(dir, fileName), fileName} {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// loadCUEIntoViper validates the file against #Config and merges it into v.
// Fields are optional, so the file is decoded into a map instead of Config.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	res, err := cueutil.Decode[map[string]any](configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*res.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// ResolvedSyntaxFiles returns SyntaxFiles with "~/" expanded and relative
// paths anchored at the directory of Source.
func (c *Config) ResolvedSyntaxFiles() ([]string, error) {
	base := ""
	if c.Source != "" {
		base = filepath.Dir(c.Source)
	}

	out := make([]string, 0, len(c.SyntaxFiles))
	for _, f := range c.SyntaxFiles {
		p := string(f)
		switch {
		case p == "~" || strings.HasPrefix(p, "~/"):
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		case !filepath.IsAbs(p) && base != "":
			p = filepath.Join(base, p)
		}
		out = append(out, filepath.Clean(p))
	}
	return out, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to DefaultConfigPath.
// An existing file is kept unless force is set; created reports whether the
// file was written.
func CreateDefaultConfig(force bool) (path string, created bool, err error) {
	path, err = DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if fileExists(path) && !force {
		return path, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}

// GenerateCUE renders cfg as a config.cue document.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// namekit configuration\n\n")
	fmt.Fprintf(&sb, "default_syntax: %q\n", cfg.DefaultSyntax)

	if len(cfg.SyntaxFiles) == 0 {
		sb.WriteString("syntax_files: []\n")
	} else {
		sb.WriteString("syntax_files: [\n")
		for _, f := range cfg.SyntaxFiles {
			fmt.Fprintf(&sb, "\t%q,\n", f)
		}
		sb.WriteString("]\n")
	}

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}
