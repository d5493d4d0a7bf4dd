// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestValues_OrderedAndComplete(t *testing.T) {
	t.Parallel()

	vals := Values()
	if len(vals) != int(UnknownFormatId) {
		t.Fatalf("Values() = %d pages, want %d", len(vals), UnknownFormatId)
	}
	seen := make(map[string]bool)
	for i, is := range vals {
		if is.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, is.Id(), i+1)
		}
		if is.Slug() == "" || is.Title() == "" || is.MarkdownMsg() == "" {
			t.Errorf("page %d is incomplete", is.Id())
		}
		if seen[is.Slug()] {
			t.Errorf("duplicate slug %q", is.Slug())
		}
		seen[is.Slug()] = true
	}
}

func TestGetAndLookup(t *testing.T) {
	t.Parallel()

	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
	is := Get(InvalidVersionId)
	if is == nil || is.Slug() != "invalid-version" {
		t.Fatalf("Get(InvalidVersionId) = %+v", is)
	}
	if got := Lookup("  Invalid-Version "); got != is {
		t.Errorf("Lookup() = %+v, want the invalid-version page", got)
	}
	if Lookup("nope") != nil {
		t.Error("Lookup(nope) should return nil")
	}
}

//nolint:paralleltest // replaces the package-level renderer
func TestIssue_Render(t *testing.T) {
	original := render
	defer func() { render = original }()

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return "rendered:" + in, nil
	}

	out, err := Get(UnsupportedPlatformId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if gotStyle != "notty" {
		t.Errorf("style = %q, want notty", gotStyle)
	}
	if !strings.HasPrefix(out, "rendered:") || !strings.Contains(out, "pe-gnu") {
		t.Errorf("Render() = %q", out)
	}

	render = func(string, string) (string, error) { return "", errors.New("no style") }
	if _, err := Get(ConfigLoadFailedId).Render("bogus"); err == nil {
		t.Error("Render() should propagate renderer errors")
	}
}
