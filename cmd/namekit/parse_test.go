// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/invowk/namekit/internal/issue"
	"github.com/invowk/namekit/pkg/name"

	"github.com/pelletier/go-toml/v2"
)

func TestParseCommand_Plain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"composite", []string{"parse", "a/b/c"}, "a\nb\nc\n"},
		{"quoted separator", []string{"parse", `a/"b/c"/d`}, "a\nb/c\nd\n"},
		{"escaped separator", []string{"parse", `a\/b/c`}, "a/b\nc\n"},
		{"empty name", []string{"parse", ""}, ""},
		{"ldap right to left", []string{"parse", "-s", "ldap", "cn=Jo,o=Acme"}, "o=Acme\ncn=Jo\n"},
		{"flat", []string{"parse", "--syntax", "flat", "a/b"}, "a/b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := run(t, tt.args...); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCommand_JSON(t *testing.T) {
	t.Parallel()

	out := run(t, "parse", "-o", "json", `a/"b/c"`)
	var r nameReport
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if r.Syntax != "composite" || r.String != `a/"b/c"` || r.EscapingStyle != "quote1" {
		t.Errorf("report = %+v", r)
	}
	if strings.Join(r.Components, "|") != "a|b/c" {
		t.Errorf("Components = %q", r.Components)
	}
	if len(r.Hash) != 16 {
		t.Errorf("Hash = %q, want 16 hex digits", r.Hash)
	}
}

func TestParseCommand_JSONEmptyComponents(t *testing.T) {
	t.Parallel()

	out := run(t, "parse", "-o", "json", "")
	if !strings.Contains(out, `"components": []`) {
		t.Errorf("stdout = %q, want an empty components array", out)
	}
}

func TestParseCommand_TOML(t *testing.T) {
	t.Parallel()

	out := run(t, "parse", "--output", "toml", "--syntax", "dns", "www.example.com")
	var r nameReport
	if err := toml.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid TOML %q: %v", out, err)
	}
	if r.Syntax != "dns" || strings.Join(r.Components, ".") != "com.example.www" {
		t.Errorf("report = %+v", r)
	}
}

func TestParseCommand_Shell(t *testing.T) {
	t.Parallel()

	out := run(t, "parse", "-o", "shell", `plain/"with space"/"it's"`)
	const prefix = "set -- plain 'with space' "
	if !strings.HasPrefix(out, prefix) {
		t.Fatalf("stdout = %q, want prefix %q", out, prefix)
	}
	last := strings.TrimSuffix(strings.TrimPrefix(out, prefix), "\n")
	switch last {
	case `"it's"`, `'it'\''s'`, `$'it\'s'`:
	default:
		t.Errorf("last component quoted as %s", last)
	}
}

func TestParseCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantIs   error
	}{
		{"unclosed quote", []string{"parse", `a/"b`}, ExitInvalidName, name.ErrInvalidName},
		{"quote mid component", []string{"parse", `"a"b/c`}, ExitInvalidName, name.ErrInvalidName},
		{"bad output", []string{"parse", "-o", "yaml", "a"}, ExitGeneric, nil},
		{"no argument", []string{"parse"}, -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := execute(t, staticConfig{}, tt.args...)
			if got := exitCode(res.err); got != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (err: %v)", got, tt.wantCode, res.err)
			}
			if tt.wantIs != nil && !errors.Is(res.err, tt.wantIs) {
				t.Errorf("error %v does not wrap %v", res.err, tt.wantIs)
			}
		})
	}
}

func TestParseCommand_InvalidNameIsActionable(t *testing.T) {
	t.Parallel()

	res := execute(t, staticConfig{}, "parse", `a/"b`)
	var ae *issue.ActionableError
	if !errors.As(res.err, &ae) {
		t.Fatalf("error %T is not actionable", res.err)
	}
	if ae.Issue != issue.InvalidNameId || ae.Resource != `a/"b` {
		t.Errorf("Issue = %v, Resource = %q", ae.Issue, ae.Resource)
	}
	if !strings.Contains(res.err.Error(), "no close quote") {
		t.Errorf("error %q does not name the reason", res.err)
	}
}
