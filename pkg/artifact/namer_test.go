// SPDX-License-Identifier: MPL-2.0

package artifact

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/libart/libart/pkg/platform"
	"github.com/libart/libart/pkg/version"
)

// versionCombos covers every presence combination of version and soversion.
var versionCombos = []struct {
	name string
	spec version.Spec
}{
	{"neither", version.Spec{}},
	{"version only", version.Spec{Version: "1.4.5"}},
	{"soversion only", version.Spec{SoVersion: "5"}},
	{"both", version.Spec{Version: "1.2.3", SoVersion: "0"}},
}

func shared(name string, spec version.Spec) LibraryTarget {
	return LibraryTarget{Name: BaseName(name), Spec: spec, Kind: KindShared, Install: true}
}

func mustResolve(t *testing.T, target LibraryTarget, kind platform.Kind) ResolvedArtifacts {
	t.Helper()
	res, err := Resolve(target, kind)
	if err != nil {
		t.Fatalf("Resolve(%q, %s) unexpected error: %v", target.Name, kind, err)
	}
	return res
}

func TestResolve_PE_LinkNameIgnoresVersioning(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"some", "noversion", "z", "my.lib-name"} {
		for _, combo := range versionCombos {
			t.Run(name+"/"+combo.name, func(t *testing.T) {
				t.Parallel()
				res := mustResolve(t, shared(name, combo.spec), platform.KindPE)
				want := []string{name + ".lib"}
				if !reflect.DeepEqual(res.LinkNameCandidates, want) {
					t.Errorf("LinkNameCandidates = %v, want %v", res.LinkNameCandidates, want)
				}
				if res.ImportLibrary != name+".lib" {
					t.Errorf("ImportLibrary = %q, want %q", res.ImportLibrary, name+".lib")
				}
			})
		}
	}
}

func TestResolve_PE_RuntimeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec version.Spec
		want string
	}{
		{"unversioned", version.Spec{}, "N.dll"},
		{"soversion wins over version", version.Spec{Version: "1.2.3", SoVersion: "0"}, "N-0.dll"},
		{"major of version", version.Spec{Version: "1.4.5"}, "N-1.dll"},
		{"soversion only", version.Spec{SoVersion: "5"}, "N-5.dll"},
		{"opaque soversion", version.Spec{SoVersion: "abi2"}, "N-abi2.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := mustResolve(t, shared("N", tt.spec), platform.KindPE)
			if res.RuntimeFile != tt.want {
				t.Errorf("RuntimeFile = %q, want %q", res.RuntimeFile, tt.want)
			}
			if len(res.Aliases) != 0 {
				t.Errorf("PE should not create aliases, got %v", res.Aliases)
			}
		})
	}
}

func TestResolve_PE_InstallCopies(t *testing.T) {
	t.Parallel()

	res := mustResolve(t, shared("some", version.Spec{Version: "1.2.3", SoVersion: "0"}), platform.KindPE)
	want := []InstallCopy{
		{Role: RoleRuntime, File: "some-0.dll", Dir: "bin"},
		{Role: RoleImport, File: "some.lib", Dir: "lib"},
	}
	if !reflect.DeepEqual(res.InstallCopies, want) {
		t.Errorf("InstallCopies = %+v, want %+v", res.InstallCopies, want)
	}
}

func TestResolve_InstallDirOverridesEveryDestination(t *testing.T) {
	t.Parallel()

	target := shared("some", version.Spec{SoVersion: "0"})
	target.InstallDir = "/opt/some"

	for _, kind := range platform.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			res := mustResolve(t, target, kind)
			if len(res.InstallCopies) == 0 {
				t.Fatal("expected install copies")
			}
			for _, c := range res.InstallCopies {
				if c.Dir != "/opt/some" {
					t.Errorf("copy %q installed to %q, want /opt/some", c.File, c.Dir)
				}
			}
		})
	}
}

func TestResolve_ModuleNeverLinkable(t *testing.T) {
	t.Parallel()

	for _, kind := range platform.Kinds() {
		for _, combo := range versionCombos {
			t.Run(kind.String()+"/"+combo.name, func(t *testing.T) {
				t.Parallel()
				target := LibraryTarget{Name: "plugin", Spec: combo.spec, Kind: KindModule, Install: true}
				res := mustResolve(t, target, kind)
				if res.LinkNameCandidates == nil || len(res.LinkNameCandidates) != 0 {
					t.Errorf("LinkNameCandidates = %#v, want empty non-nil slice", res.LinkNameCandidates)
				}
				if res.ImportLibrary != "" {
					t.Errorf("ImportLibrary = %q, want none", res.ImportLibrary)
				}
				if len(res.InstallCopies) != 1 || res.InstallCopies[0].Dir != "lib" {
					t.Errorf("InstallCopies = %+v, want one copy to the module dir", res.InstallCopies)
				}
			})
		}
	}
}

func TestResolve_PE_Module(t *testing.T) {
	t.Parallel()

	target := LibraryTarget{Name: "plugin", Spec: version.Spec{Version: "2.0"}, Kind: KindModule, Install: true}
	res := mustResolve(t, target, platform.KindPE)
	if res.RuntimeFile != "plugin.dll" {
		t.Errorf("RuntimeFile = %q, want plugin.dll", res.RuntimeFile)
	}
	want := []InstallCopy{{Role: RoleRuntime, File: "plugin.dll", Dir: "lib"}}
	if !reflect.DeepEqual(res.InstallCopies, want) {
		t.Errorf("InstallCopies = %+v, want %+v", res.InstallCopies, want)
	}
}

func TestResolve_InstallGatingKeepsNames(t *testing.T) {
	t.Parallel()

	for _, kind := range platform.Kinds() {
		for _, combo := range versionCombos {
			t.Run(kind.String()+"/"+combo.name, func(t *testing.T) {
				t.Parallel()
				installed := shared("lib1", combo.spec)
				notInstalled := installed
				notInstalled.Install = false

				a := mustResolve(t, installed, kind)
				b := mustResolve(t, notInstalled, kind)

				if len(b.InstallCopies) != 0 {
					t.Errorf("InstallCopies = %+v, want none", b.InstallCopies)
				}
				if a.RuntimeFile != b.RuntimeFile {
					t.Errorf("RuntimeFile changed with install gating: %q vs %q", a.RuntimeFile, b.RuntimeFile)
				}
				if !reflect.DeepEqual(a.LinkNameCandidates, b.LinkNameCandidates) {
					t.Errorf("LinkNameCandidates changed with install gating: %v vs %v", a.LinkNameCandidates, b.LinkNameCandidates)
				}
				if !reflect.DeepEqual(a.Aliases, b.Aliases) {
					t.Errorf("Aliases changed with install gating: %v vs %v", a.Aliases, b.Aliases)
				}
			})
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	target := shared("some", version.Spec{Version: "1.2.3", SoVersion: "0"})
	for _, kind := range platform.Kinds() {
		first := mustResolve(t, target, kind)
		second := mustResolve(t, target, kind)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: Resolve is not idempotent: %+v vs %+v", kind, first, second)
		}
	}
}

func TestResolve_ConcurrentCallsAgree(t *testing.T) {
	t.Parallel()

	target := shared("some", version.Spec{Version: "1.2.3", SoVersion: "0"})
	want := mustResolve(t, target, platform.KindELF)

	var wg sync.WaitGroup
	results := make([]ResolvedArtifacts, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Resolve(target, platform.KindELF)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("goroutine %d got %+v, want %+v", i, got, want)
		}
	}
}

func TestResolve_UnsupportedPlatform(t *testing.T) {
	t.Parallel()

	for _, kind := range []platform.Kind{"", "coff", "PE"} {
		_, err := Resolve(shared("some", version.Spec{}), kind)
		if !errors.Is(err, platform.ErrUnsupportedPlatform) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnsupportedPlatform", kind, err)
		}
		var pErr *platform.UnsupportedPlatformError
		if !errors.As(err, &pErr) || pErr.Value != kind {
			t.Errorf("Resolve(%q) error should carry the platform value, got %v", kind, err)
		}
	}
}

func TestResolve_InvalidTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   LibraryTarget
		sentinel error
	}{
		{"empty name", LibraryTarget{Kind: KindShared}, ErrInvalidBaseName},
		{"path in name", LibraryTarget{Name: "a/b", Kind: KindShared}, ErrInvalidBaseName},
		{"space in name", LibraryTarget{Name: "a b", Kind: KindShared}, ErrInvalidBaseName},
		{"missing kind", LibraryTarget{Name: "a"}, ErrInvalidKind},
		{"bad version", LibraryTarget{Name: "a", Kind: KindShared, Spec: version.Spec{Version: "1.x"}}, version.ErrInvalidVersionFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(tt.target, platform.KindPE)
			if !errors.Is(err, ErrInvalidTarget) {
				t.Errorf("error should wrap ErrInvalidTarget, got: %v", err)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error should wrap %v, got: %v", tt.sentinel, err)
			}
		})
	}
}

func TestResolve_FixtureLibraries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		version     version.Version
		soversion   version.SoVersionToken
		wantRuntime string
	}{
		{"some", "1.2.3", version.StringToken("0"), "some-0.dll"},
		{"noversion", "", nil, "noversion.dll"},
		{"onlyversion", "1.4.5", nil, "onlyversion-1.dll"},
		{"onlysoversion", "", version.IntegerToken(5), "onlysoversion-5.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec, err := version.Normalize(tt.version, tt.soversion)
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			res := mustResolve(t, shared(tt.name, spec), platform.KindPE)
			if want := []string{tt.name + ".lib"}; !reflect.DeepEqual(res.LinkNameCandidates, want) {
				t.Errorf("LinkNameCandidates = %v, want %v", res.LinkNameCandidates, want)
			}
			if res.RuntimeFile != tt.wantRuntime {
				t.Errorf("RuntimeFile = %q, want %q", res.RuntimeFile, tt.wantRuntime)
			}
		})
	}
}

func TestNewNamer_Layout(t *testing.T) {
	t.Parallel()

	n, err := NewNamer(WithLayout(Layout{BinDir: "usr/bin", LibDir: "usr/lib64", ModuleDir: "usr/lib64/plugins"}))
	if err != nil {
		t.Fatalf("NewNamer() error: %v", err)
	}
	res, err := n.Resolve(shared("some", version.Spec{SoVersion: "0"}), platform.KindPE)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.InstallCopies[0].Dir != "usr/bin" || res.InstallCopies[1].Dir != "usr/lib64" {
		t.Errorf("InstallCopies = %+v, want custom layout dirs", res.InstallCopies)
	}

	_, err = NewNamer(WithLayout(Layout{BinDir: "bin", LibDir: " ", ModuleDir: ""}))
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("NewNamer() with blank dirs error = %v, want ErrInvalidLayout", err)
	}
	var lErr *InvalidLayoutError
	if !errors.As(err, &lErr) || lErr.Field != "libdir" {
		t.Errorf("first layout error should name libdir, got %v", err)
	}
}
