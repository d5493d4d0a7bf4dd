// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	BuildfileNotFoundId Id = iota + 1
	BuildfileInvalidId
	InvalidVersionId
	UnsupportedPlatformId
	ConfigLoadFailedId
	ReservedNameId
	LinkCheckFailedId
	UnknownFormatId
)

type (
	// Id identifies a catalog page.
	Id int

	// MarkdownMsg is the page body.
	MarkdownMsg string

	// Issue is one catalog page explaining a class of failure.
	Issue struct {
		id    Id
		slug  string
		title string
		mdMsg MarkdownMsg
	}
)

// Id returns the page identifier.
func (i *Issue) Id() Id { return i.id }

// Slug returns the name accepted by "libart explain".
func (i *Issue) Slug() string { return i.slug }

// Title returns the one-line summary.
func (i *Issue) Title() string { return i.title }

// MarkdownMsg returns the raw page body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the page for a terminal using the glamour style at stylePath
// ("dark", "light", "notty" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	buildfileNotFoundIssue = &Issue{
		id:    BuildfileNotFoundId,
		slug:  "buildfile-not-found",
		title: "No libart.cue in the project directory",
		mdMsg: `
# No buildfile found

libart reads the libraries of a project from **libart.cue**. None was found
at the path given, or in the current directory.

## Things you can try
- Create a starter buildfile:
~~~
$ libart init
~~~
- Point libart at the project:
~~~
$ libart resolve path/to/project
~~~`,
	}

	buildfileInvalidIssue = &Issue{
		id:    BuildfileInvalidId,
		slug:  "buildfile",
		title: "The buildfile does not match the schema",
		mdMsg: `
# Buildfile format

A buildfile declares a list of libraries:

~~~cue
project: "demo"
platform: "pe" // optional: pe, pe-gnu, elf, macho

libraries: [
	{name: "some", version: "1.2.3", soversion: "0"},
	{name: "plugin", kind: "module", install: false},
	{name: "tools", install_dir: "/opt/tools/bin"},
]
~~~

| Field | Default | Meaning |
|---|---|---|
| name | required | base name, as in -lNAME |
| version | none | dot-separated integers |
| soversion | none | ABI token, integer or string |
| kind | shared | shared or module |
| install | true | produce install instructions |
| install_dir | platform default | replaces every destination |

Errors name the offending field, e.g. libraries[1].kind.`,
	}

	invalidVersionIssue = &Issue{
		id:    InvalidVersionId,
		slug:  "invalid-version",
		title: "A version is not dot-separated integers",
		mdMsg: `
# Invalid version

A version must be one or more non-negative integers separated by dots:
**1**, **1.2**, **1.2.3**. Prefixes such as **v1.0** and suffixes such as
**1.0-rc1** are rejected.

The soversion is not checked: it is an opaque ABI token.

## Things you can try
- Drop any prefix or suffix from the version.
- Move a textual ABI marker to the soversion field.`,
	}

	unsupportedPlatformIssue = &Issue{
		id:    UnsupportedPlatformId,
		slug:  "unsupported-platform",
		title: "The platform family is unknown",
		mdMsg: `
# Unsupported platform

libart knows four platform families:

| Name | Aliases | Runtime | Link with |
|---|---|---|---|
| pe | windows, msvc | NAME[-SOVERSION].dll | NAME.lib |
| pe-gnu | mingw | libNAME[-SOVERSION].dll | libNAME.dll.a |
| elf | linux | libNAME.so.VERSION | libNAME.so |
| macho | darwin, macos | libNAME.VERSION.dylib | libNAME.dylib |

## Things you can try
- Pass one of the names above with --platform.
- Set platform: "auto" in the configuration to use the host family.`,
	}

	configLoadFailedIssue = &Issue{
		id:    ConfigLoadFailedId,
		slug:  "config",
		title: "The configuration file could not be loaded",
		mdMsg: `
# Configuration

The configuration file is **config.cue** in the libart configuration
directory (see "libart config path").

~~~cue
platform: "auto"      // or pe, pe-gnu, elf, macho
output_format: "text" // or json, toml
install: {
	bindir: "bin"
	libdir: "lib"
	moduledir: "lib"
}
ui: {
	color_scheme: "auto"
	verbose: false
}
~~~

Every key can be overridden from the environment, e.g. LIBART_PLATFORM=elf
or LIBART_INSTALL_LIBDIR=lib64.

## Things you can try
- Print the effective configuration: libart config show
- Recreate the file: libart config init --force`,
	}

	reservedNameIssue = &Issue{
		id:    ReservedNameId,
		slug:  "reserved-name",
		title: "A file name is a reserved Windows device name",
		mdMsg: `
# Reserved device name

Windows reserves CON, PRN, AUX, NUL, COM1-COM9 and LPT1-LPT9 regardless of
extension: **nul.dll** cannot be created. libart still resolves the names
but the build will fail on Windows hosts.

## Things you can try
- Rename the library.`,
	}

	linkCheckFailedIssue = &Issue{
		id:    LinkCheckFailedId,
		slug:  "link-check",
		title: "A library cannot be found by its link name",
		mdMsg: `
# Link check failed

"libart check" stages the resolved files of each shared library in one
directory and searches it the way the platform linker would for
**-L<dir> -l<name>**. A failure means the produced files do not include
a name the linker looks for.

Loadable modules are never linked against and are skipped.`,
	}

	unknownFormatIssue = &Issue{
		id:    UnknownFormatId,
		slug:  "output-format",
		title: "The output format is unknown",
		mdMsg: `
# Output formats

| Format | Content |
|---|---|
| text | one table per library |
| json | machine-readable report |
| toml | machine-readable report |`,
	}

	issues = map[Id]*Issue{
		buildfileNotFoundIssue.Id():   buildfileNotFoundIssue,
		buildfileInvalidIssue.Id():    buildfileInvalidIssue,
		invalidVersionIssue.Id():      invalidVersionIssue,
		unsupportedPlatformIssue.Id(): unsupportedPlatformIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		reservedNameIssue.Id():        reservedNameIssue,
		linkCheckFailedIssue.Id():     linkCheckFailedIssue,
		unknownFormatIssue.Id():       unknownFormatIssue,
	}
)

// Values returns every catalog page ordered by Id.
func Values() []*Issue {
	vals := make([]*Issue, 0, len(issues))
	for _, is := range issues {
		vals = append(vals, is)
	}
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

// Get returns the page for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// Lookup returns the page whose slug matches name, ignoring case.
func Lookup(name string) *Issue {
	name = strings.ToLower(strings.TrimSpace(name))
	vals := Values()
	idx := slices.IndexFunc(vals, func(i *Issue) bool { return i.slug == name })
	if idx < 0 {
		return nil
	}
	return vals[idx]
}
