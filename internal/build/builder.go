// SPDX-License-Identifier: MPL-2.0

package build

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"path/filepath"

	"github.com/emojipack/emojipack/internal/imageload"
	"github.com/emojipack/emojipack/internal/issue"
	"github.com/emojipack/emojipack/pkg/manifest"
	"github.com/emojipack/emojipack/pkg/resourcepack"

	"github.com/charmbracelet/log"
)

// Operations reported by the actionable errors of a run.
const (
	OpLoadManifest = "load emoji manifest"
	OpLoadImages   = "load emoji images"
	OpPackCategory = "pack category"
	OpWriteOutput  = "write resource pack"
)

// DefaultNamespace is the resource namespace used when none is configured.
const DefaultNamespace = "figura"

// Builder runs the pipeline over an input directory.
type Builder struct {
	// Namespace prefixes the texture location in font descriptors.
	Namespace string
	// Compression is the PNG compression level of the atlases.
	Compression png.CompressionLevel
	// Loader loads source images; nil loads every image of a category at once.
	Loader *imageload.Loader
	// Logger receives progress; nil discards it.
	Logger *log.Logger
}

// ManifestPath returns <inputDir>/emojis.toml.
func ManifestPath(inputDir string) string {
	return filepath.Join(inputDir, manifest.FileName)
}

// Run builds and writes every category in declaration order. A failing
// category stops the run; files of earlier categories stay on disk.
func (b *Builder) Run(ctx context.Context, inputDir, outputDir string) (*Report, error) {
	return b.run(ctx, inputDir, outputDir, true)
}

// Check goes through the same steps as Run without writing any file.
func (b *Builder) Check(ctx context.Context, inputDir string) (*Report, error) {
	return b.run(ctx, inputDir, "", false)
}

func (b *Builder) run(ctx context.Context, inputDir, outputDir string, write bool) (*Report, error) {
	logger := b.logger()

	m, err := manifest.Load(ManifestPath(inputDir))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(OpLoadManifest).
			WithResource(ManifestPath(inputDir)).
			WithSuggestion("Every category needs an [<category>.emojis] table with at least one emoji").
			WithSuggestion("An emoji is either a list of names or { names = [...], shortcuts = [...], blacklisted = true, frames = { count = N, time = N } }").
			Wrap(err).
			BuildError()
	}
	logger.Debug("manifest loaded", "path", m.FilePath, "categories", len(m.Categories), "emojis", m.EmojiCount())

	layout := resourcepack.NewLayout(outputDir)
	if write {
		if err := layout.EnsureDirs(); err != nil {
			return nil, writeError(outputDir, err)
		}
	}

	report := &Report{InputDir: inputDir, OutputDir: outputDir, Namespace: b.namespace(), Written: write}
	for _, category := range m.Categories {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		artifacts, err := b.buildCategory(ctx, inputDir, category)
		if err != nil {
			return report, err
		}

		entry := newCategoryReport(category, artifacts)
		if write {
			if err := artifacts.Write(layout, b.Compression); err != nil {
				return report, writeError(outputDir, err)
			}
			entry.Files = artifacts.Files(layout)
		}
		report.Categories = append(report.Categories, entry)

		logger.Info("packed category",
			"category", category.Name,
			"emojis", len(category.Entries),
			"grid", artifacts.Grid.String())
		for _, f := range entry.Files {
			logger.Debug("wrote", "path", f)
		}
	}

	return report, nil
}

func (b *Builder) buildCategory(ctx context.Context, inputDir string, category manifest.Category) (*Artifacts, error) {
	images, err := b.Loader.LoadCategory(ctx, inputDir, category)
	if err != nil {
		ec := issue.NewErrorContext().
			WithOperation(fmt.Sprintf("%s of %s", OpLoadImages, category.Name)).
			WithSuggestion(fmt.Sprintf("Every emoji of %s needs a PNG file at %s", category.Name,
				filepath.Join(imageload.SourceDir, string(category.Name), "<key>.png")))
		var loadErr *imageload.LoadError
		if errors.As(err, &loadErr) {
			ec = ec.WithResource(loadErr.Path)
		}
		return nil, ec.Wrap(err).BuildError()
	}

	artifacts, err := BuildCategory(b.namespace(), category, images)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("%s %s", OpPackCategory, category.Name)).
			WithSuggestion("All images of a category must have the width and height of its first emoji").
			Wrap(err).
			BuildError()
	}
	return artifacts, nil
}

func writeError(outputDir string, err error) error {
	return issue.NewErrorContext().
		WithOperation(OpWriteOutput).
		WithResource(outputDir).
		WithSuggestion("Check that the output directory is writable").
		Wrap(err).
		BuildError()
}

func (b *Builder) namespace() string {
	if b.Namespace == "" {
		return DefaultNamespace
	}
	return b.Namespace
}

func (b *Builder) logger() *log.Logger {
	if b.Logger == nil {
		return log.New(io.Discard)
	}
	return b.Logger
}
