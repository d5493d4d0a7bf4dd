// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	"fmt"
	"strconv"
)

// Generate returns a starter buildfile for project. It declares one library
// for each combination of version metadata, so resolving it shows every
// naming rule of the selected platform.
func Generate(project string) []byte {
	if project == "" {
		project = "example"
	}
	return fmt.Appendf(nil, `// libart buildfile. See "libart explain buildfile" for the format.

project: %s

libraries: [
	// Version and soversion: the runtime file carries the soversion.
	{name: "some", version: "1.2.3", soversion: "0"},
	// No version metadata at all.
	{name: "noversion"},
	// Version only: the major component stands in for the soversion.
	{name: "onlyversion", version: "1.4.5"},
	// Soversion only, written as an integer.
	{name: "onlysoversion", soversion: 5},
]
`, strconv.Quote(project))
}
