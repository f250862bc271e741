// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"slices"

	"github.com/invowk/namekit/internal/issue"
	"github.com/invowk/namekit/pkg/name"
	"github.com/invowk/namekit/pkg/namesyntax"

	"github.com/spf13/cobra"
)

func newParseCommand(app *App) *cobra.Command {
	var syntaxFlag, output string

	cmd := &cobra.Command{
		Use:   "parse NAME",
		Short: "Split a name into its components",
		Long: `Split a name into its components under a syntax.

Plain output prints one component per line in index order: for
right-to-left syntaxes such as ldap the rightmost component comes first. Shell output prints a 'set --' line
that can be evaluated by bash.`,
		Example: `  namekit parse 'a/"b/c"/d'
  namekit parse --syntax ldap -o json 'cn=Jo Smith,o=Acme'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output, parseOutputs...)
			if err != nil {
				return app.fail(err)
			}
			syntaxName, syn, err := app.resolveSyntax(syntaxFlag)
			if err != nil {
				return err
			}
			n, err := app.parseName(syn, args[0])
			if err != nil {
				return err
			}
			r := newNameReport(syntaxName, n)
			return writeName(app.stdout, format, r, r.Components)
		},
	}

	addSyntaxFlag(cmd, &syntaxFlag)
	addOutputFlag(cmd, &output, parseOutputs...)
	return cmd
}

var parseOutputs = []outputFormat{outputPlain, outputJSON, outputTOML, outputShell}

// parseName parses s, turning a failure into an actionable error.
func (a *App) parseName(syn *namesyntax.Syntax, s string) (*name.Name, error) {
	n, err := name.Parse(syn, s)
	if err != nil {
		return nil, a.fail(issue.NewErrorContext().
			WithOperation("parse name").
			WithResource(s).
			WithIssue(issue.InvalidNameId).
			WithSuggestion("Check that every quote is closed at the end of its component").
			WithSuggestion("Run 'namekit syntax show <syntax>' to see the quote and escape tokens").
			Wrap(err).
			BuildError())
	}
	return n, nil
}

// addSyntaxFlag registers --syntax/-s, completing the built-in names.
func addSyntaxFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "syntax", "s", "", "syntax to use (default from config, normally composite)")
	_ = cmd.RegisterFlagCompletionFunc("syntax", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(namesyntax.Builtins()))
		for n := range namesyntax.Builtins() {
			names = append(names, n)
		}
		slices.Sort(names)
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}
