// SPDX-License-Identifier: MPL-2.0

package main

import cmd "gsjsprep/cmd/gsjsprep"

func main() {
	cmd.Execute()
}
