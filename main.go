// SPDX-License-Identifier: MPL-2.0

package main

import cmd "sdkwipe/cmd/sdkwipe"

func main() {
	cmd.Execute()
}
