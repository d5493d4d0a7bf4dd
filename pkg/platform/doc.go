// SPDX-License-Identifier: MPL-2.0

// Package platform identifies the binary-format family a library is built
// for and carries the platform-specific naming constraints that go with it.
//
// The platform is always an explicit input. Callers that want to follow the
// host toolchain probe it once (see ForGOOS) and thread the resulting Kind
// through every call; nothing in this module reads process-wide platform state.
package platform
