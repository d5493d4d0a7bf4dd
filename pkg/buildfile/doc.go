// SPDX-License-Identifier: MPL-2.0

// Package buildfile reads libart.cue, the CUE file declaring a project's
// libraries, and turns each declaration into an artifact.LibraryTarget.
package buildfile
