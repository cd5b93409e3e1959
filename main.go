// SPDX-License-Identifier: MPL-2.0

// Command emojipack packs emoji images into resource pack bitmap fonts.
package main

import (
	"os"

	cmd "github.com/emojipack/emojipack/cmd/emojipack"
)

func main() {
	os.Exit(cmd.Main())
}
