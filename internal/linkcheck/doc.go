// SPDX-License-Identifier: MPL-2.0

// Package linkcheck verifies that resolved artifacts can be linked by base
// name. It stages the files of every library into one directory of an afero
// filesystem and searches it the way the platform linker searches for
// "-L<dir> -l<name>".
package linkcheck
