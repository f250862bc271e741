// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/namekit/internal/issue"
	"github.com/invowk/namekit/pkg/name"

	"github.com/spf13/cobra"
)

func newFormatCommand(app *App) *cobra.Command {
	var syntaxFlag, output string

	cmd := &cobra.Command{
		Use:   "format [COMPONENT...]",
		Short: "Build a name from components and print its string form",
		Long: `Build a name from components and print its string form.

Components holding a separator are quoted, or escaped when quoting is not
possible, so that parsing the output gives back the same components.`,
		Example: `  namekit format a 'b/c' d        # a/"b/c"/d
  namekit format --syntax ldap o=Acme 'cn=Jo, Jr'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output, formatOutputs...)
			if err != nil {
				return app.fail(err)
			}
			syntaxName, syn, err := app.resolveSyntax(syntaxFlag)
			if err != nil {
				return err
			}
			n, err := name.FromComponents(syn, args...)
			if err != nil {
				return app.fail(issue.NewErrorContext().
					WithOperation("build name").
					WithResource(syntaxName).
					WithIssue(issue.InvalidNameId).
					WithSuggestion("A flat syntax accepts at most one component").
					Wrap(err).
					BuildError())
			}
			r := newNameReport(syntaxName, n)
			return writeName(app.stdout, format, r, []string{r.String})
		},
	}

	addSyntaxFlag(cmd, &syntaxFlag)
	addOutputFlag(cmd, &output, formatOutputs...)
	return cmd
}

var formatOutputs = []outputFormat{outputPlain, outputJSON, outputTOML}
