// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// DefaultStyle is the glamour style used when none is configured.
const DefaultStyle = "auto"

const (
	ConfigLoadFailedId Id = iota + 1
	SyntaxNotFoundId
	SyntaxFileInvalidId
	InvalidNameId
	InvalidSyntaxId
	IndexOutOfRangeId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	// Issue is a markdown guide for one class of failure.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id { return i.id }

func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// Render renders the guide, plus a "See also" list of links, for the
// terminal using the named glamour style.
func (i *Issue) Render(style string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		var b strings.Builder
		b.WriteString(md)
		b.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			b.WriteString("\n- <" + string(link) + ">")
		}
		md = b.String()
	}
	return RenderMarkdown(md, style)
}

// RenderMarkdown renders any markdown document with a glamour style
// ("auto", "dark", "light", "notty", ...).
func RenderMarkdown(md, style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	return render(md, style)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

namekit reads ` + "`config.cue`" + ` from its configuration directory, from the
current directory, or from the path given with ` + "`--config`" + `.

## Things you can try
- Print the file namekit is using:
~~~
$ namekit config path
~~~
- Print the effective configuration with defaults applied:
~~~
$ namekit config show
~~~
- Recreate a default file:
~~~
$ namekit config init --force
~~~`,
	}

	syntaxNotFoundIssue = &Issue{
		id: SyntaxNotFoundId,
		mdMsg: `
# Unknown syntax

The requested syntax is neither a built-in one (composite, ldap, dns, flat)
nor defined by a loaded syntax file.

## Things you can try
- List every syntax namekit knows about:
~~~
$ namekit syntax list
~~~
- Load a definition file for this run:
~~~
$ namekit --syntax-file ./syntaxes.cue parse --syntax mine 'a/b'
~~~
- Or list it permanently in the configuration:
~~~cue
syntax_files: ["~/syntaxes.cue"]
~~~`,
	}

	syntaxFileInvalidIssue = &Issue{
		id: SyntaxFileInvalidId,
		mdMsg: `
# Syntax file could not be used

Syntax files end in ` + "`.properties`" + `, ` + "`.cue`" + ` or ` + "`.toml`" + `. CUE and TOML
files hold any number of syntaxes:

~~~cue
syntaxes: {
	"unix-path": {
		direction: "left_to_right"
		separator: "/"
		escape:    "\\"
	}
}
~~~

## Common causes
- A hierarchical syntax (left_to_right or right_to_left) without a separator
- A misspelled field name
- A syntax name that is already taken by a built-in or another file`,
	}

	invalidNameIssue = &Issue{
		id: InvalidNameId,
		mdMsg: `
# The name could not be parsed

Quotes must close at the end of a component, and an escape cannot be the
last character of the name.

## Things you can try
- Check the quoting of the component named in the error
- Escape a quote character that is meant literally, e.g. ` + "`a\\'b`" + `
- Inspect the syntax in use:
~~~
$ namekit syntax show composite
~~~`,
	}

	invalidSyntaxIssue = &Issue{
		id: InvalidSyntaxId,
		mdMsg: `
# The syntax definition is invalid

` + "`jndi.syntax.direction`" + ` must be one of left_to_right, right_to_left
or flat, and hierarchical directions need ` + "`jndi.syntax.separator`" + `.`,
	}

	indexOutOfRangeIssue = &Issue{
		id: IndexOutOfRangeId,
		mdMsg: `
# Position out of range

Prefix and suffix positions run from 0 to the number of components.

## Things you can try
- Count the components first:
~~~
$ namekit parse 'a/b/c'
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		syntaxNotFoundIssue.Id():    syntaxNotFoundIssue,
		syntaxFileInvalidIssue.Id(): syntaxFileInvalidIssue,
		invalidNameIssue.Id():       invalidNameIssue,
		invalidSyntaxIssue.Id():     invalidSyntaxIssue,
		indexOutOfRangeIssue.Id():   indexOutOfRangeIssue,
	}
)

// Values returns every guide ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the guide for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
