// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Besides the Must* helpers for the filesystem and the environment, it builds
// emoji pack fixtures: solid-colour PNG files (WritePNG) and whole input
// directories with a manifest and one image per emoji (WritePack).
package testutil
