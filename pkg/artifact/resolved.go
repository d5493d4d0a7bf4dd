// SPDX-License-Identifier: MPL-2.0

package artifact

const (
	// RoleRuntime is the file the loader locates at run time.
	RoleRuntime Role = "runtime"
	// RoleImport is a link-time-only import library (PE).
	RoleImport Role = "import"
	// RoleAlias is a soversion-suffixed symbolic link to the runtime file.
	RoleAlias Role = "alias"
	// RoleLink is the unversioned symbolic link "-lNAME" resolves to.
	RoleLink Role = "link"
)

type (
	// Role names the purpose of a resolved file.
	Role string

	// Alias is a symbolic link that must exist next to the runtime file.
	Alias struct {
		Role   Role   `json:"role" toml:"role"`
		Name   string `json:"name" toml:"name"`
		Target string `json:"target" toml:"target"`
	}

	// InstallCopy is one installation instruction. When LinkTarget is set the
	// installer creates a symbolic link named File pointing at LinkTarget
	// instead of copying a build output.
	InstallCopy struct {
		Role       Role   `json:"role" toml:"role"`
		File       string `json:"file" toml:"file"`
		Dir        string `json:"dir" toml:"dir"`
		LinkTarget string `json:"link_target,omitempty" toml:"link_target,omitempty"`
	}

	// ResolvedArtifacts is everything the linker-invocation layer and the
	// installer need to know about one library on one platform.
	ResolvedArtifacts struct {
		// RuntimeFile is the file the loader locates at run time.
		RuntimeFile string `json:"runtime_file" toml:"runtime_file"`
		// ImportLibrary is the link-time import library, empty when the
		// platform links against the runtime file directly.
		ImportLibrary string `json:"import_library,omitempty" toml:"import_library,omitempty"`
		// LinkNameCandidates are the file names "-lNAME" must find. Never
		// empty for shared libraries, always empty for modules.
		LinkNameCandidates []string `json:"link_name_candidates" toml:"link_name_candidates"`
		// Aliases are the symbolic links to create beside RuntimeFile, in
		// creation order.
		Aliases []Alias `json:"aliases" toml:"aliases"`
		// InstallCopies is empty when the target is not installed.
		InstallCopies []InstallCopy `json:"install_copies" toml:"install_copies"`
	}
)

// String returns the string representation of the Role.
func (r Role) String() string { return string(r) }

// Files returns every file name the build produces or links for the target,
// runtime file first.
func (r ResolvedArtifacts) Files() []string {
	files := []string{r.RuntimeFile}
	if r.ImportLibrary != "" {
		files = append(files, r.ImportLibrary)
	}
	for _, a := range r.Aliases {
		files = append(files, a.Name)
	}
	return files
}
