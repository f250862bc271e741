// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/invowk/namekit/internal/catalog"
	"github.com/invowk/namekit/internal/config"
	"github.com/invowk/namekit/internal/issue"
	"github.com/invowk/namekit/pkg/namesyntax"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// toleratesConfigErrors marks commands that keep working on defaults when
// the configuration or syntax files cannot be loaded.
const toleratesConfigErrors = "namekit/tolerates-config-errors"

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// App wires CLI services and the state shared by one invocation. The
	// root command's pre-run hook fills cfg, logger and catalog.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		flags   globalFlags
		cfg     *config.Config
		logger  *log.Logger
		catalog *catalog.Catalog
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	globalFlags struct {
		configPath  string
		syntaxFiles []string
		logLevel    string
		verbose     bool
	}
)

// NewApp builds an App from deps.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// setup loads the configuration, configures the logger and fills the
// syntax catalog. Commands annotated with toleratesConfigErrors fall back
// to the defaults and the built-in syntaxes instead of failing.
func (a *App) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	tolerant := cmd.Annotations[toleratesConfigErrors] == "true"

	a.logger = log.NewWithOptions(a.stderr, log.Options{Prefix: config.AppName})
	a.catalog = catalog.New(a.logger)

	if a.flags.logLevel != "" {
		if valid, errs := config.LogLevel(a.flags.logLevel).IsValid(); !valid {
			return a.fail(issue.NewErrorContext().
				WithOperation("parse flags").
				WithResource("--log-level").
				WithSuggestion("Use one of: debug, info, warn, error").
				Wrap(errs[0]).
				BuildError())
		}
	}

	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		if !tolerant {
			return a.fail(err)
		}
		a.logger.Warn("using default configuration", "err", err)
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.flags.logLevel != "" {
		level = config.LogLevel(a.flags.logLevel)
	}
	a.logger.SetLevel(level.Level())
	if cfg.Source != "" {
		a.logger.Debug("loaded configuration", "file", cfg.Source)
	}

	files, err := cfg.ResolvedSyntaxFiles()
	if err == nil {
		files = append(files, a.flags.syntaxFiles...)
		err = a.catalog.LoadFiles(ctx, files)
	}
	if err != nil {
		if tolerant {
			a.logger.Warn("skipping syntax files", "err", err)
			return nil
		}
		return a.fail(issue.NewErrorContext().
			WithOperation("load syntax files").
			WithIssue(issue.SyntaxFileInvalidId).
			WithSuggestion("Check the files listed in syntax_files and --syntax-file").
			Wrap(err).
			BuildError())
	}
	return nil
}

// verbose reports whether errors should include their chain and guide.
func (a *App) verbose() bool {
	return a.flags.verbose || (a.cfg != nil && a.cfg.UI.Verbose)
}

// glamourStyle maps the configured color scheme to a glamour style name.
func (a *App) glamourStyle() string {
	if a.cfg == nil {
		return issue.DefaultStyle
	}
	switch a.cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return issue.DefaultStyle
	}
}

// resolveSyntax returns the syntax named by flag, or the configured
// default when flag is empty.
func (a *App) resolveSyntax(flag string) (string, *namesyntax.Syntax, error) {
	syntaxName := flag
	if syntaxName == "" {
		syntaxName = config.DefaultSyntaxName.String()
		if a.cfg != nil {
			syntaxName = a.cfg.DefaultSyntax.String()
		}
	}

	syn, err := a.catalog.Lookup(syntaxName)
	if err != nil {
		ctx := issue.NewErrorContext().
			WithOperation("resolve syntax").
			WithResource(syntaxName).
			WithIssue(issue.SyntaxNotFoundId)
		var unknown *catalog.UnknownSyntaxError
		if errors.As(err, &unknown) {
			ctx.WithSuggestion("Known syntaxes: " + strings.Join(unknown.Known, ", "))
		}
		return "", nil, a.fail(ctx.
			WithSuggestion("Load more with --syntax-file or syntax_files in the configuration").
			Wrap(err).
			BuildError())
	}
	return syntaxName, syn, nil
}

// fail renders err for the terminal and wraps it in an ExitError with the
// matching exit code.
func (a *App) fail(err error) error {
	return &ExitError{
		Code:   exitCodeFor(err),
		Err:    err,
		Detail: a.formatError(err),
	}
}

// formatError formats an error for display. ActionableErrors use their
// Format method; in verbose mode the matching issue guide is appended.
func (a *App) formatError(err error) string {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return err.Error()
	}

	out := ae.Format(a.verbose())
	if !a.verbose() {
		return out
	}
	if guide := issue.Get(ae.Issue); guide != nil {
		if rendered, renderErr := guide.Render(a.glamourStyle()); renderErr == nil {
			out += "\n" + rendered
		}
	}
	return out
}
