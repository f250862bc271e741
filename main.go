// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/namekit/cmd/namekit"

func main() {
	cmd.Execute()
}
