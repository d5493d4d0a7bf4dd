// SPDX-License-Identifier: MPL-2.0

package artifact

// peNaming returns the PE naming function for a toolchain flavor. MSVC uses
// no prefix and "NAME.lib"; GNU toolchains use the "lib" prefix and
// "libNAME.dll.a".
//
// The import library name never depends on version metadata: "-lNAME" must
// resolve to the same file whatever version or soversion was declared. Only
// the runtime DLL carries the effective soversion ("NAME-0.dll").
func peNaming(prefix, importSuffix string) namingFunc {
	return func(t LibraryTarget, l Layout) plan {
		stem := prefix + string(t.Name)

		if t.Kind == KindModule {
			dll := stem + ".dll"
			return plan{
				runtime: dll,
				files:   []file{{role: RoleRuntime, name: dll, dir: l.ModuleDir}},
			}
		}

		dll := stem + ".dll"
		if so, ok := t.Spec.EffectiveSoVersion(); ok {
			dll = stem + "-" + string(so) + ".dll"
		}
		imp := stem + importSuffix
		return plan{
			runtime:   dll,
			importLib: imp,
			link:      []string{imp},
			files: []file{
				{role: RoleRuntime, name: dll, dir: l.BinDir},
				{role: RoleImport, name: imp, dir: l.LibDir},
			},
		}
	}
}

// nameELF names shared objects "libNAME.so.VERSION" with a
// "libNAME.so.SOVERSION" alias and a "libNAME.so" link.
func nameELF(t LibraryTarget, l Layout) plan {
	if t.Kind == KindModule {
		return modulePlan("lib"+string(t.Name)+".so", l)
	}
	return versionedChain(t, l, func(suffix string) string {
		if suffix == "" {
			return "lib" + string(t.Name) + ".so"
		}
		return "lib" + string(t.Name) + ".so." + suffix
	})
}

// nameMachO names dynamic libraries "libNAME.VERSION.dylib" with a
// "libNAME.SOVERSION.dylib" alias and a "libNAME.dylib" link.
func nameMachO(t LibraryTarget, l Layout) plan {
	if t.Kind == KindModule {
		return modulePlan("lib"+string(t.Name)+".so", l)
	}
	return versionedChain(t, l, func(suffix string) string {
		if suffix == "" {
			return "lib" + string(t.Name) + ".dylib"
		}
		return "lib" + string(t.Name) + "." + suffix + ".dylib"
	})
}

func modulePlan(name string, l Layout) plan {
	return plan{
		runtime: name,
		files:   []file{{role: RoleRuntime, name: name, dir: l.ModuleDir}},
	}
}

// versionedChain builds the symlink chain used where the loader and the
// linker share one file: link -> soversion alias -> real file. Links that
// would point at themselves are omitted.
func versionedChain(t LibraryTarget, l Layout, fileFor func(suffix string) string) plan {
	so, hasSo := t.Spec.EffectiveSoVersion()
	realSuffix := string(t.Spec.Version)
	if realSuffix == "" {
		realSuffix = string(so)
	}

	realFile := fileFor(realSuffix)
	link := fileFor("")
	files := []file{{role: RoleRuntime, name: realFile, dir: l.LibDir}}
	if realFile == link {
		return plan{runtime: realFile, link: []string{link}, files: files}
	}

	linkTarget := realFile
	if hasSo && string(so) != realSuffix {
		alias := fileFor(string(so))
		files = append(files, file{role: RoleAlias, name: alias, dir: l.LibDir, target: realFile})
		linkTarget = alias
	}
	files = append(files, file{role: RoleLink, name: link, dir: l.LibDir, target: linkTarget})

	return plan{runtime: realFile, link: []string{link}, files: files}
}
