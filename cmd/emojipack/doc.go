// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for emojipack.
//
// The root command packs an input directory into a resource pack; validate
// checks an input directory without writing anything, and config inspects
// and initializes settings.
package cmd
