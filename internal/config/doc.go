// SPDX-License-Identifier: MPL-2.0

// Package config handles the emojipack tool settings using Viper with CUE as
// the file format.
//
// Settings are layered, lowest first: built-in defaults, the user config file
// (config.cue under the platform config directory, e.g.
// ~/.config/emojipack/config.cue), the pack config file (emojipack.cue in the
// input directory, or the file given with --config), EMOJIPACK_* environment
// variables, and finally command-line overrides.
//
// Every file is validated against the embedded CUE schema (config_schema.cue)
// before it is merged, so errors point at the offending field.
package config
