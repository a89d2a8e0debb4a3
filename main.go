// Copyright
// SPDX-License-Identifier: MIT
// txtpad: terminal notepad with named/unnamed, clean/dirty save tracking
package main

import "txtpad/cmd"

func main() {
	cmd.Execute()
}
