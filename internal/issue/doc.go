// SPDX-License-Identifier: MPL-2.0

// Package issue holds the error types the CLI renders for users.
//
// ActionableError carries the failed operation, the file involved and
// suggestions; the issue catalog maps failure classes (broken manifest,
// unreadable image, size mismatch, unwritable output, bad settings, usage)
// to markdown help pages rendered with glamour.
package issue
