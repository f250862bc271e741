// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/invowk/namekit/internal/config"
	"github.com/invowk/namekit/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `namekit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	tolerant := map[string]string{toleratesConfigErrors: "true"}

	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage namekit configuration",
		Long: `Manage namekit configuration.

Configuration is stored in:
  - Linux: $XDG_CONFIG_HOME/namekit/config.cue (default ~/.config)
  - macOS: ~/Library/Application Support/namekit/config.cue
  - Windows: %APPDATA%\namekit\config.cue

NAMEKIT_* environment variables override the file, for example
NAMEKIT_DEFAULT_SYNTAX=ldap or NAMEKIT_LOG_LEVEL=debug.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			showConfig(app)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Show the configuration file path",
		Args:        cobra.NoArgs,
		Annotations: tolerant,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.flags.configPath != "" {
				fmt.Fprintln(app.stdout, app.flags.configPath)
				return nil
			}
			path, err := config.DefaultConfigPath()
			if err != nil {
				return app.fail(issue.WrapWithOperation(err, "determine config path"))
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a default configuration file",
		Args:        cobra.NoArgs,
		Annotations: tolerant,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig(force)
			if err != nil {
				return app.fail(issue.NewErrorContext().
					WithOperation("create configuration").
					WithIssue(issue.ConfigLoadFailedId).
					WithSuggestion("Check that the configuration directory is writable").
					Wrap(err).
					BuildError())
			}
			if !created {
				fmt.Fprintf(app.stdout, "%s %s already exists (use --force to overwrite)\n", WarningStyle.Render("!"), path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

func showConfig(app *App) {
	cfg := app.cfg
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	source := SubtitleStyle.Render("(using defaults)")
	if cfg.Source != "" {
		source = cfg.Source
	}
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), source)
	fmt.Fprintln(w)

	files := make([]string, len(cfg.SyntaxFiles))
	for i, f := range cfg.SyntaxFiles {
		files[i] = f.String()
	}
	filesValue := SubtitleStyle.Render("(none)")
	if len(files) > 0 {
		filesValue = SuccessStyle.Render(strings.Join(files, ", "))
	}

	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("default_syntax"), SuccessStyle.Render(cfg.DefaultSyntax.String()))
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("syntax_files"), filesValue)
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("log.level"), SuccessStyle.Render(cfg.Log.Level.String()))
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("ui.color_scheme"), SuccessStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "%s: %t\n", KeyStyle.Render("ui.verbose"), cfg.UI.Verbose)
}
