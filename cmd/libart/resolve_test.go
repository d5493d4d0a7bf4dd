// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/libart/libart/internal/config"
	"github.com/libart/libart/internal/report"
	"github.com/libart/libart/pkg/buildfile"
	"github.com/libart/libart/pkg/platform"
)

func projectFS(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/proj/libart.cue", buildfile.Generate("demo"), 0o644); err != nil {
		t.Fatal(err)
	}
	return fsys
}

func TestResolveCommand_JSON(t *testing.T) {
	t.Parallel()

	r := runCLI(t, Dependencies{FS: projectFS(t)}, "resolve", "/proj", "--platform", "PE", "--format", "json")
	if r.err != nil {
		t.Fatalf("resolve error: %v\n%s", r.err, r.stderr)
	}

	var got struct {
		Project   string `json:"project"`
		Platform  string `json:"platform"`
		Libraries []struct {
			Artifacts struct {
				RuntimeFile   string `json:"runtime_file"`
				ImportLibrary string `json:"import_library"`
			} `json:"artifacts"`
		} `json:"libraries"`
	}
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, r.stdout)
	}
	if got.Project != "demo" || got.Platform != string(platform.KindPE) || len(got.Libraries) != 4 {
		t.Fatalf("report = %+v", got)
	}
	if got.Libraries[0].Artifacts.RuntimeFile != "some-0.dll" || got.Libraries[0].Artifacts.ImportLibrary != "some.lib" {
		t.Errorf("first library = %+v", got.Libraries[0].Artifacts)
	}
}

func TestResolveCommand_FormatFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.OutputFormat = config.OutputFormatTOML
	cfg.Platform = "elf"
	r := runCLI(t, Dependencies{FS: projectFS(t), Config: stubConfig{cfg: cfg}}, "resolve", "/proj")
	if r.err != nil {
		t.Fatalf("resolve error: %v\n%s", r.err, r.stderr)
	}
	for _, want := range []string{"[[libraries]]", "libsome.so.1.2.3", "elf"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("TOML output missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestResolveCommand_Text(t *testing.T) {
	t.Parallel()

	r := runCLI(t, Dependencies{FS: projectFS(t)}, "resolve", "/proj", "-p", "macho", "--no-install")
	if r.err != nil {
		t.Fatalf("resolve error: %v\n%s", r.err, r.stderr)
	}
	for _, want := range []string{"demo", "libsome.1.2.3.dylib", "libnoversion.dylib"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("text output missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestResolveCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		sentinel error
		explain  string
	}{
		{"unknown format", []string{"resolve", "/proj", "--format", "yaml"}, report.ErrUnknownFormat, "output-format"},
		{"unknown platform", []string{"resolve", "/proj", "--platform", "coff"}, platform.ErrUnsupportedPlatform, "unsupported-platform"},
		{"missing buildfile", []string{"resolve", "/elsewhere", "--platform", "elf"}, buildfile.ErrNotFound, "buildfile-not-found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := runCLI(t, Dependencies{FS: projectFS(t)}, tt.args...)
			wantExit(t, r, tt.sentinel)
			if !strings.Contains(r.stderr, "libart explain "+tt.explain) {
				t.Errorf("stderr = %q, want pointer to %s", r.stderr, tt.explain)
			}
			if r.stdout != "" {
				t.Errorf("stdout = %q, want nothing", r.stdout)
			}
		})
	}
}

func TestResolveCommand_InvalidLayout(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Install.LibDir = ""
	r := runCLI(t, Dependencies{FS: projectFS(t), Config: stubConfig{cfg: cfg}}, "resolve", "/proj", "-p", "elf")
	wantExit(t, r, nil)
}
