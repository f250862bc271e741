// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the command tree around app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "namekit",
		Short: "Parse and format hierarchical names",
		Long: TitleStyle.Render("namekit") + SubtitleStyle.Render(" - Parse and format hierarchical names") + `

namekit splits names such as 'a/b/c', 'cn=Jo,o=Acme' or 'www.example.com'
into components under a naming syntax, and writes components back into a
string that parses to the same name.

` + SubtitleStyle.Render("Examples:") + `
  namekit parse 'a/"b/c"/d'                 Components of a composite name
  namekit parse --syntax ldap 'cn=Jo,o=X'   Right-to-left LDAP name
  namekit format a b/c                      Quote components into a name
  namekit compare --syntax ldap CN=a cn=A   Compare two names
  namekit syntax list                       Show available syntaxes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/namekit/config.cue)")
	pf.StringArrayVar(&app.flags.syntaxFiles, "syntax-file", nil, "load syntax definitions from `file` (repeatable)")
	pf.StringVar(&app.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.BoolVarP(&app.flags.verbose, "verbose", "v", false, "show error chains and troubleshooting guides")

	rootCmd.AddCommand(
		newParseCommand(app),
		newFormatCommand(app),
		newCompareCommand(app),
		newSliceCommand(app),
		newSyntaxCommand(app),
		newConfigCommand(app),
	)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the namekit CLI and exits with the code carried by any
// returned ExitError. It is called by main.main.
func Execute() {
	rootCmd := newRootCommand(NewApp(Dependencies{}))
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitGeneric)
	}
}
