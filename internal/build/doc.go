// SPDX-License-Identifier: MPL-2.0

// Package build turns an input directory into an emoji resource pack.
//
// Categories are processed one at a time in manifest order. For each one the
// source images are loaded concurrently, checked for a common size, and then
// BuildCategory derives the atlas, the font descriptor and the metadata
// descriptor without touching the filesystem. Only a fully built category is
// written, so a failing category leaves no files of its own behind. Files of
// categories written before the failure are kept.
package build
