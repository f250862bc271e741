// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/invowk/namekit/pkg/name"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	shsyntax "mvdan.cc/sh/v3/syntax"
)

const (
	outputPlain      outputFormat = "plain"
	outputJSON       outputFormat = "json"
	outputTOML       outputFormat = "toml"
	outputShell      outputFormat = "shell"
	outputMarkdown   outputFormat = "markdown"
	outputProperties outputFormat = "properties"
)

type (
	// outputFormat selects how a command writes its result.
	outputFormat string

	// InvalidOutputFormatError is returned for an --output value the
	// command does not support.
	InvalidOutputFormatError struct {
		Value   string
		Allowed []outputFormat
	}

	// nameReport is the structured form of a parsed or built name.
	nameReport struct {
		Syntax        string   `json:"syntax" toml:"syntax"`
		String        string   `json:"string" toml:"string"`
		Components    []string `json:"components" toml:"components"`
		EscapingStyle string   `json:"escaping_style" toml:"escaping_style"`
		Hash          string   `json:"hash" toml:"hash"`
	}
)

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, f := range e.Allowed {
		allowed[i] = string(f)
	}
	return fmt.Sprintf("invalid output format %q (valid: %s)", e.Value, strings.Join(allowed, ", "))
}

// addOutputFlag registers --output/-o with completion for allowed; the
// first entry is the default.
func addOutputFlag(cmd *cobra.Command, target *string, allowed ...outputFormat) {
	names := make([]string, len(allowed))
	for i, f := range allowed {
		names[i] = string(f)
	}
	cmd.Flags().StringVarP(target, "output", "o", names[0], "output format: "+strings.Join(names, ", "))
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(names, cobra.ShellCompDirectiveNoFileComp))
}

// parseOutputFormat validates value against allowed.
func parseOutputFormat(value string, allowed ...outputFormat) (outputFormat, error) {
	f := outputFormat(value)
	if !slices.Contains(allowed, f) {
		return "", &InvalidOutputFormatError{Value: value, Allowed: allowed}
	}
	return f, nil
}

func newNameReport(syntaxName string, n *name.Name) nameReport {
	comps := n.Components()
	if comps == nil {
		comps = []string{}
	}
	return nameReport{
		Syntax:        syntaxName,
		String:        n.String(),
		Components:    comps,
		EscapingStyle: n.EscapingStyle().String(),
		Hash:          formatHash(n.Hash()),
	}
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// writeStructured writes v as indented JSON or as TOML.
func writeStructured(w io.Writer, format outputFormat, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

// writeName writes r in format. Plain output is one line per entry of
// plain; shell output is a "set --" line assigning the components to the
// positional parameters.
func writeName(w io.Writer, format outputFormat, r nameReport, plain []string) error {
	switch format {
	case outputPlain:
		for _, line := range plain {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case outputShell:
		line, err := shellSetLine(r.Components)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, line)
		return err
	default:
		return writeStructured(w, format, r)
	}
}

// shellSetLine quotes comps for bash.
func shellSetLine(comps []string) (string, error) {
	var b strings.Builder
	b.WriteString("set --")
	for _, c := range comps {
		q, err := shsyntax.Quote(c, shsyntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("cannot quote component %q for the shell: %w", c, err)
		}
		b.WriteString(" ")
		b.WriteString(q)
	}
	return b.String(), nil
}
