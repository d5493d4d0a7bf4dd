// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the libart command tree. Commands are built by
// constructor functions that receive the App composition root, and the tree
// is executed through fang for styled help and version output.
package cmd
