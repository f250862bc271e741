// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	// DefaultSyntaxName is the syntax used when neither flag nor config
	// selects one.
	DefaultSyntaxName SyntaxName = "composite"
)

var (
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is the sentinel error wrapped by InvalidLogLevelError.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidSyntaxName is the sentinel error wrapped by InvalidSyntaxNameError.
	ErrInvalidSyntaxName = errors.New("invalid syntax name")
	// ErrInvalidSyntaxFilePath is the sentinel error wrapped by InvalidSyntaxFilePathError.
	ErrInvalidSyntaxFilePath = errors.New("invalid syntax file path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	syntaxNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)
)

type (
	// ColorScheme selects the terminal palette.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level written to stderr.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// SyntaxName names a built-in or file-defined syntax.
	SyntaxName string

	// InvalidSyntaxNameError is returned when a SyntaxName is not an identifier.
	// It wraps ErrInvalidSyntaxName for errors.Is() compatibility.
	InvalidSyntaxNameError struct {
		Value SyntaxName
	}

	// SyntaxFilePath is a path to a syntax definition file. A leading "~/"
	// refers to the home directory; relative paths are taken from the
	// directory of the configuration file.
	SyntaxFilePath string

	// InvalidSyntaxFilePathError is returned when a SyntaxFilePath is blank.
	// It wraps ErrInvalidSyntaxFilePath for errors.Is() compatibility.
	InvalidSyntaxFilePathError struct {
		Value SyntaxFilePath
	}

	// InvalidConfigError collects every invalid field of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the namekit configuration.
	Config struct {
		// DefaultSyntax is used by commands run without --syntax.
		DefaultSyntax SyntaxName `json:"default_syntax" mapstructure:"default_syntax"`
		// SyntaxFiles are loaded into the syntax catalog at startup.
		SyntaxFiles []SyntaxFilePath `json:"syntax_files" mapstructure:"syntax_files"`
		Log         LogConfig        `json:"log" mapstructure:"log"`
		UI          UIConfig         `json:"ui" mapstructure:"ui"`

		// Source is the file the configuration was read from, empty when
		// only defaults and environment overrides apply.
		Source string `json:"-" mapstructure:"-"`
	}

	// LogConfig configures diagnostic logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose adds error chains and issue guides to failures.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DefaultSyntax: DefaultSyntaxName,
		SyntaxFiles:   []SyntaxFilePath{},
		Log:           LogConfig{Level: LogLevelWarn},
		UI:            UIConfig{ColorScheme: ColorSchemeAuto},
	}
}

// IsValid reports whether every field of c is valid.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	collect := func(valid bool, fieldErrs []error) {
		if !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	collect(c.DefaultSyntax.IsValid())
	for _, f := range c.SyntaxFiles {
		collect(f.IsValid())
	}
	collect(c.Log.Level.IsValid())
	collect(c.UI.ColorScheme.IsValid())
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Level converts l to a charmbracelet/log level. Invalid values map to warn.
func (l LogLevel) Level() log.Level {
	if valid, _ := l.IsValid(); !valid {
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(string(l))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the SyntaxName.
func (n SyntaxName) String() string { return string(n) }

// IsValid returns whether the SyntaxName is a well-formed identifier.
func (n SyntaxName) IsValid() (bool, []error) {
	if !syntaxNamePattern.MatchString(string(n)) {
		return false, []error{&InvalidSyntaxNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSyntaxNameError.
func (e *InvalidSyntaxNameError) Error() string {
	return fmt.Sprintf("invalid syntax name %q", e.Value)
}

// Unwrap returns ErrInvalidSyntaxName for errors.Is() compatibility.
func (e *InvalidSyntaxNameError) Unwrap() error { return ErrInvalidSyntaxName }

// String returns the string representation of the SyntaxFilePath.
func (p SyntaxFilePath) String() string { return string(p) }

// IsValid returns whether the path is non-blank.
func (p SyntaxFilePath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidSyntaxFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSyntaxFilePathError.
func (e *InvalidSyntaxFilePathError) Error() string {
	return fmt.Sprintf("invalid syntax file path %q: must not be blank", e.Value)
}

// Unwrap returns ErrInvalidSyntaxFilePath for errors.Is() compatibility.
func (e *InvalidSyntaxFilePathError) Unwrap() error { return ErrInvalidSyntaxFilePath }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
