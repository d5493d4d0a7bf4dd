// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors with remediation hints, and the
// catalog of pages shown by "libart explain".
package issue
