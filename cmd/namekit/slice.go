// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strconv"

	"github.com/invowk/namekit/internal/issue"
	"github.com/invowk/namekit/pkg/name"

	"github.com/spf13/cobra"
)

func newSliceCommand(app *App) *cobra.Command {
	var (
		syntaxFlag, output string
		prefix, suffix     int
		asString           bool
	)

	cmd := &cobra.Command{
		Use:   "slice NAME (--prefix N | --suffix N)",
		Short: "Print the leading or trailing components of a name",
		Long: `Print a prefix or suffix of a name.

--prefix N keeps components 0 to N-1; --suffix N keeps components N to the
end. N may be anything from 0 to the number of components.`,
		Example: `  namekit slice a/b/c --prefix 2          # a, b
  namekit slice a/b/c --suffix 1 --string # b/c`,
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

			var (
				view name.View
				pos  int
			)
			if cmd.Flags().Changed("prefix") {
				pos = prefix
				view, err = n.Prefix(prefix)
			} else {
				pos = suffix
				view, err = n.Suffix(suffix)
			}
			if err != nil {
				return app.fail(issue.NewErrorContext().
					WithOperation("slice name").
					WithResource(args[0]).
					WithIssue(issue.IndexOutOfRangeId).
					WithSuggestion("Use a position between 0 and " + strconv.Itoa(n.Len())).
					Wrap(err).
					BuildError())
			}
			app.logger.Debug("sliced name", "position", pos, "components", view.Len())

			r := newNameReport(syntaxName, view.Name())
			plain := r.Components
			if asString {
				plain = []string{r.String}
			}
			return writeName(app.stdout, format, r, plain)
		},
	}

	cmd.Flags().IntVar(&prefix, "prefix", 0, "keep the first `N` components")
	cmd.Flags().IntVar(&suffix, "suffix", 0, "keep the components from position `N` on")
	cmd.Flags().BoolVar(&asString, "string", false, "print the slice as a name string in plain output")
	cmd.MarkFlagsMutuallyExclusive("prefix", "suffix")
	cmd.MarkFlagsOneRequired("prefix", "suffix")
	addSyntaxFlag(cmd, &syntaxFlag)
	addOutputFlag(cmd, &output, parseOutputs...)
	return cmd
}
