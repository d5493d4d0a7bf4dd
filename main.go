// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/libart/libart/cmd/libart"

func main() {
	cmd.Execute()
}
