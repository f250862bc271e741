// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

// stubRender replaces the glamour renderer with the identity function for
// the duration of a test. Tests using it must not run in parallel.
func stubRender(t *testing.T) *string {
	t.Helper()
	var gotStyle string
	original := render
	render = func(in, style string) (string, error) {
		gotStyle = style
		return in, nil
	}
	t.Cleanup(func() { render = original })
	return &gotStyle
}

func TestIds(t *testing.T) {
	t.Parallel()

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}
	for id := ConfigLoadFailedId; id <= IndexOutOfRangeId; id++ {
		i := Get(id)
		if i == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if i.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, i.Id())
		}
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no message", id)
		}
	}
	if Get(Id(999)) != nil {
		t.Error("Get(999) should be nil")
	}
}

func TestValues_SortedById(t *testing.T) {
	t.Parallel()

	vals := Values()
	if len(vals) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(vals), len(issues))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Errorf("Values() not sorted at %d: %d then %d", i, vals[i-1].Id(), vals[i].Id())
		}
	}
}

func TestIssue_Render(t *testing.T) {
	style := stubRender(t)

	out, err := Get(SyntaxNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "namekit syntax list") {
		t.Errorf("Render() output missing guidance:\n%s", out)
	}
	if strings.Contains(out, "See also") {
		t.Error("an issue without links should not get a See also section")
	}
	if *style != "dark" {
		t.Errorf("style = %q, want dark", *style)
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	stubRender(t)

	i := &Issue{
		id:       Id(42),
		mdMsg:    "# Test",
		docLinks: []HttpLink{"https://example.com/names"},
	}
	out, err := i.Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "## See also") || !strings.Contains(out, "<https://example.com/names>") {
		t.Errorf("Render() = %q", out)
	}

	links := i.DocLinks()
	links[0] = "changed"
	if i.DocLinks()[0] != "https://example.com/names" {
		t.Error("DocLinks() should return a copy")
	}
}

func TestRenderMarkdown_DefaultStyle(t *testing.T) {
	style := stubRender(t)

	if _, err := RenderMarkdown("# x", ""); err != nil {
		t.Fatal(err)
	}
	if *style != DefaultStyle {
		t.Errorf("style = %q, want %q", *style, DefaultStyle)
	}
}

func TestAllIssuesRenderWithGlamour(t *testing.T) {
	t.Parallel()

	for _, i := range Values() {
		out, err := i.Render("notty")
		if err != nil {
			t.Errorf("issue %d: Render() error = %v", i.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("issue %d rendered to nothing", i.Id())
		}
	}
}
