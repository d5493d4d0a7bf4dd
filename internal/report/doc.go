// SPDX-License-Identifier: MPL-2.0

// Package report encodes resolved artifacts for terminals (lipgloss tables)
// and for tools (JSON, TOML).
package report
