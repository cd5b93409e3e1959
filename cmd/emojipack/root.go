// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/emojipack/emojipack/internal/build"
	"github.com/emojipack/emojipack/internal/issue"
	"github.com/emojipack/emojipack/pkg/types"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// errMissingArgs is reported when the input or output directory is omitted.
var errMissingArgs = errors.New("expected an input directory and an output directory")

// newRootCommand builds the command tree.
func newRootCommand(app *App) *cobra.Command {
	flags := &globalFlags{}
	var summary bool

	rootCmd := &cobra.Command{
		Use:   "emojipack <input> <output>",
		Short: "Pack emoji images into a resource pack font",
		Long: TitleStyle.Render("emojipack") + SubtitleStyle.Render(" - pack emoji images into a resource pack font") + `

emojipack reads emojis.toml and the PNG images under emojis/<category>/
from the input directory. For every category it writes a square atlas
texture, a bitmap font mapping private use codepoints to atlas cells, and
a metadata file with names, shortcuts and animation data.

` + SubtitleStyle.Render("Examples:") + `
  emojipack ./pack ./resourcepack            Pack every category
  emojipack ./pack ./out --namespace myns    Use a custom texture namespace
  emojipack validate ./pack                  Check the input without writing
  emojipack config show ./pack               Show effective settings`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError(cmd, errMissingArgs)
			}
			input, output := types.FilesystemPath(args[0]), types.FilesystemPath(args[1])
			if valid, errs := input.IsValid("input"); !valid {
				return usageError(cmd, errs[0])
			}
			if valid, errs := output.IsValid("output"); !valid {
				return usageError(cmd, errs[0])
			}
			return app.runBuild(cmd, flags, input.String(), output.String())
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "settings file (default is <input>/emojipack.cue)")
	rootCmd.PersistentFlags().StringVar(&flags.namespace, "namespace", "", "resource namespace of atlas textures (default \"figura\")")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "render a build report after packing")

	rootCmd.AddCommand(newValidateCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// usageError reports a malformed invocation with the usage line and exit
// code 1.
func usageError(cmd *cobra.Command, err error) error {
	msg := fmt.Sprintf("\n%s %s\n\n%s %s\n\n",
		ErrorStyle.Render("Error:"), err,
		SubtitleStyle.Render("Usage:"), CmdStyle.Render(cmd.UseLine()))
	return newServiceError(&ExitError{Code: types.ExitFailure, Err: err}, issue.UsageId, msg)
}

// runBuild packs inputDir into outputDir.
func (a *App) runBuild(cmd *cobra.Command, flags *globalFlags, inputDir, outputDir string) error {
	loaded, err := a.loadConfig(cmd, flags, inputDir)
	if err != nil {
		return err
	}
	cfg := loaded.Config

	report, err := a.newBuilder(cfg).Run(cmd.Context(), inputDir, outputDir)
	if err != nil {
		issueID, msg := classifyError(err, cfg.UI.Verbose)
		return newServiceError(err, issueID, msg)
	}

	fmt.Fprintf(a.stdout, "%s Packed %s in %s into %s\n",
		SuccessStyle.Render("✓"),
		plural(report.EmojiCount(), "emoji", "emojis"),
		plural(len(report.Categories), "category", "categories"),
		CmdStyle.Render(outputDir))

	if cfg.UI.Summary {
		return a.renderReport(report)
	}
	return nil
}

// renderReport prints the markdown build report through glamour.
func (a *App) renderReport(report *build.Report) error {
	rendered, err := glamour.Render(report.Markdown(), issueStyle(a.stdout))
	if err != nil {
		return fmt.Errorf("failed to render build report: %w", err)
	}
	fmt.Fprint(a.stdout, rendered)
	return nil
}
