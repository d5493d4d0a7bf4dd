// SPDX-License-Identifier: MPL-2.0

// Package artifact turns a logical library target into the concrete files a
// linker and loader expect on a given platform, and into the install
// destinations for those files.
//
// Naming is a pure function of the target and the platform: Namer.Resolve
// performs no I/O, holds no mutable state and may be called concurrently.
// Each platform family is one naming function in a table keyed by
// platform.Kind; adding a platform means adding a Kind and a table entry.
//
// The Windows PE convention is exact: a shared library "some" with version
// "1.2.3" and soversion "0" produces the runtime file "some-0.dll" and the
// import library "some.lib", and "some.lib" is what "-lsome" resolves to no
// matter which version metadata was declared.
package artifact
