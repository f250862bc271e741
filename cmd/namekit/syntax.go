// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/invowk/namekit/internal/issue"
	"github.com/invowk/namekit/pkg/namesyntax"
	"github.com/invowk/namekit/pkg/syntaxfile"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/magiconair/properties"
	"github.com/spf13/cobra"
)

type (
	// syntaxSummary is one row of namekit syntax list.
	syntaxSummary struct {
		Name      string `json:"name" toml:"name"`
		Direction string `json:"direction" toml:"direction"`
		Separator string `json:"separator,omitempty" toml:"separator,omitempty"`
		Origin    string `json:"origin" toml:"origin"`
	}

	syntaxList struct {
		Syntaxes []syntaxSummary `json:"syntaxes" toml:"syntaxes"`
	}
)

var (
	listOutputs = []outputFormat{outputPlain, outputJSON, outputTOML}
	showOutputs = []outputFormat{outputMarkdown, outputProperties, outputTOML, outputJSON}
)

func newSyntaxCommand(app *App) *cobra.Command {
	syntaxCmd := &cobra.Command{
		Use:   "syntax",
		Short: "Inspect naming syntaxes",
		Long: `Inspect the naming syntaxes namekit knows about.

The built-in syntaxes are composite, ldap, dns and flat. More are loaded
from the files listed in syntax_files in the configuration and from
--syntax-file flags (.properties, .cue or .toml).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	syntaxCmd.AddCommand(
		newSyntaxListCommand(app),
		newSyntaxShowCommand(app),
		newSyntaxCheckCommand(app),
	)
	return syntaxCmd
}

func newSyntaxListCommand(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available syntaxes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output, listOutputs...)
			if err != nil {
				return app.fail(err)
			}

			var list syntaxList
			for _, n := range app.catalog.Names() {
				syn, err := app.catalog.Lookup(n)
				if err != nil {
					return app.fail(err)
				}
				origin, _ := app.catalog.Origin(n)
				list.Syntaxes = append(list.Syntaxes, syntaxSummary{
					Name:      n,
					Direction: syn.Direction().String(),
					Separator: syn.Separator(),
					Origin:    origin,
				})
			}

			if format != outputPlain {
				return writeStructured(app.stdout, format, list)
			}

			rows := make([][]string, 0, len(list.Syntaxes))
			for _, s := range list.Syntaxes {
				rows = append(rows, []string{s.Name, s.Direction, s.Separator, s.Origin})
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(SubtitleStyle).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return TitleStyle.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				}).
				Headers("NAME", "DIRECTION", "SEPARATOR", "ORIGIN").
				Rows(rows...)
			_, err = fmt.Fprintln(app.stdout, t.Render())
			return err
		},
	}

	addOutputFlag(cmd, &output, listOutputs...)
	return cmd
}

func newSyntaxShowCommand(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show the tokens of a syntax",
		Long: `Show the tokens of a syntax.

markdown renders a table for the terminal; properties prints the
jndi.syntax.* form; toml and json print a syntax file that defines the
syntax, ready to be edited and loaded with --syntax-file.`,
		Example: `  namekit syntax show ldap
  namekit syntax show composite -o toml > mine.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output, showOutputs...)
			if err != nil {
				return app.fail(err)
			}
			syntaxName, syn, err := app.resolveSyntax(args[0])
			if err != nil {
				return err
			}

			switch format {
			case outputMarkdown:
				origin, _ := app.catalog.Origin(syntaxName)
				rendered, err := issue.RenderMarkdown(syntaxMarkdown(syntaxName, origin, syn), app.glamourStyle())
				if err != nil {
					return app.fail(err)
				}
				_, err = fmt.Fprint(app.stdout, rendered)
				return err
			case outputProperties:
				return writeProperties(app, syn.Properties())
			default:
				file := syntaxfile.File{Syntaxes: map[string]syntaxfile.Definition{
					syntaxName: syntaxfile.DefinitionOf(syn),
				}}
				return writeStructured(app.stdout, format, file)
			}
		},
	}

	addOutputFlag(cmd, &output, showOutputs...)
	return cmd
}

func newSyntaxCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate syntax definition files",
		Long: `Validate syntax definition files without adding them to the catalog.

Every file is checked; the command fails if any of them is invalid.`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{toleratesConfigErrors: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var firstErr error
			failed := 0
			for _, path := range args {
				defs, err := syntaxfile.LoadFile(path)
				if err != nil {
					failed++
					if firstErr == nil {
						firstErr = err
					}
					fmt.Fprintf(app.stderr, "%s %s\n", ErrorStyle.Render("✗"), err)
					continue
				}
				names := slices.Sorted(maps.Keys(defs))
				fmt.Fprintf(app.stdout, "%s %s: %s\n", SuccessStyle.Render("✓"), path, strings.Join(names, ", "))
			}
			if failed > 0 {
				return &ExitError{
					Code:   exitCodeFor(firstErr),
					Err:    firstErr,
					Detail: fmt.Sprintf("%d of %d syntax files are invalid", failed, len(args)),
				}
			}
			return nil
		},
	}
}

// syntaxMarkdown describes syn as a markdown table of its properties.
func syntaxMarkdown(syntaxName, origin string, syn *namesyntax.Syntax) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", syntaxName)
	fmt.Fprintf(&b, "Direction **%s**, loaded from %s.\n\n", syn.Direction(), origin)
	b.WriteString("| Property | Value |\n|---|---|\n")
	props := syn.Properties()
	for _, k := range slices.Sorted(maps.Keys(props)) {
		fmt.Fprintf(&b, "| %s | %s |\n", k, markdownCode(props[k]))
	}
	return b.String()
}

// markdownCode wraps v in a code span that survives backticks and table
// pipes.
func markdownCode(v string) string {
	fence := "`"
	for strings.Contains(v, fence) {
		fence += "`"
	}
	pad := ""
	if strings.HasPrefix(v, "`") || strings.HasSuffix(v, "`") {
		pad = " "
	}
	return fence + pad + strings.ReplaceAll(v, "|", `\|`) + pad + fence
}

// writeProperties prints props as a .properties document in key order.
func writeProperties(app *App, props map[string]string) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	p.WriteSeparator = "="
	for _, k := range slices.Sorted(maps.Keys(props)) {
		if _, _, err := p.Set(k, props[k]); err != nil {
			return app.fail(err)
		}
	}
	_, err := p.Write(app.stdout, properties.UTF8)
	return err
}
