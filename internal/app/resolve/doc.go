// SPDX-License-Identifier: MPL-2.0

// Package resolve orchestrates the libart commands: it loads a buildfile,
// selects the target platform family, resolves every library concurrently
// and assembles the report. Failures are returned as issue.ActionableError
// values that the CLI layer renders.
package resolve
