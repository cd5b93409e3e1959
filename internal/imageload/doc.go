// SPDX-License-Identifier: MPL-2.0

// Package imageload reads the source images of a category and checks that
// they can share one atlas grid.
//
// Images are loaded concurrently, one goroutine per emoji, and returned in
// manifest declaration order. Every image of a category must have the size
// of the first declared image.
package imageload
