// SPDX-License-Identifier: MPL-2.0

// Package version captures the optional version and soversion metadata
// declared for a shared-library target.
//
// A Spec is built once per target through Normalize and is immutable
// afterwards. The soversion may be declared as an integer or a string; it is
// converted to its canonical string form at the boundary so that naming code
// only ever sees a SoVersion.
//
//	spec, err := version.Normalize("1.2.3", version.IntegerToken(0))
//	if err != nil {
//	    return err // wraps version.ErrInvalidVersionFormat
//	}
//	so, ok := spec.EffectiveSoVersion() // "0", true
package version
