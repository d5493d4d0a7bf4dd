// SPDX-License-Identifier: MPL-2.0

package artifact

import (
	"github.com/libart/libart/pkg/platform"
)

type (
	// Namer resolves library targets into platform-specific file names and
	// install instructions. A Namer is immutable after construction and safe
	// for concurrent use.
	Namer struct {
		layout Layout
	}

	// Option configures a Namer.
	Option func(*Namer)

	// file is one entry of a naming plan. target is set for symbolic links.
	file struct {
		role   Role
		name   string
		dir    string
		target string
	}

	// plan is the output of a naming function, before install gating.
	plan struct {
		runtime   string
		importLib string
		link      []string
		files     []file
	}

	// namingFunc computes the file plan for one platform family.
	namingFunc func(t LibraryTarget, l Layout) plan
)

// strategies holds one naming function per platform family.
var strategies = map[platform.Kind]namingFunc{
	platform.KindPE:    peNaming("", ".lib"),
	platform.KindPEGNU: peNaming("lib", ".dll.a"),
	platform.KindELF:   nameELF,
	platform.KindMachO: nameMachO,
}

// defaultNamer backs the package-level Resolve.
var defaultNamer = &Namer{layout: DefaultLayout()}

// WithLayout sets the default install destinations.
func WithLayout(l Layout) Option {
	return func(n *Namer) {
		n.layout = l
	}
}

// NewNamer creates a Namer. Without options it uses DefaultLayout.
func NewNamer(opts ...Option) (*Namer, error) {
	n := &Namer{layout: DefaultLayout()}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.layout.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// Layout returns the Namer's install layout.
func (n *Namer) Layout() Layout {
	return n.layout
}

// Resolve computes the files for target on the given platform.
//
// It fails with platform.ErrUnsupportedPlatform for an unknown platform and
// with ErrInvalidTarget for a malformed target. Missing version metadata is
// never an error. Resolve is pure: identical inputs give identical results.
func (n *Namer) Resolve(target LibraryTarget, kind platform.Kind) (ResolvedArtifacts, error) {
	naming, ok := strategies[kind]
	if !ok {
		return ResolvedArtifacts{}, &platform.UnsupportedPlatformError{Value: kind}
	}
	if err := target.Validate(); err != nil {
		return ResolvedArtifacts{}, err
	}
	return naming(target, n.layout).resolve(target), nil
}

// Resolve resolves target with the default layout.
func Resolve(target LibraryTarget, kind platform.Kind) (ResolvedArtifacts, error) {
	return defaultNamer.Resolve(target, kind)
}

// resolve applies aliasing and install gating to the plan.
func (p plan) resolve(t LibraryTarget) ResolvedArtifacts {
	res := ResolvedArtifacts{
		RuntimeFile:        p.runtime,
		ImportLibrary:      p.importLib,
		LinkNameCandidates: append([]string{}, p.link...),
		Aliases:            []Alias{},
		InstallCopies:      []InstallCopy{},
	}
	for _, f := range p.files {
		if f.target != "" {
			res.Aliases = append(res.Aliases, Alias{Role: f.role, Name: f.name, Target: f.target})
		}
	}
	if !t.Install {
		return res
	}
	for _, f := range p.files {
		dir := f.dir
		if t.InstallDir != "" {
			dir = t.InstallDir
		}
		res.InstallCopies = append(res.InstallCopies, InstallCopy{
			Role:       f.role,
			File:       f.name,
			Dir:        dir,
			LinkTarget: f.target,
		})
	}
	return res
}
