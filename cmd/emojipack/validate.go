// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input>",
		Short: "Check an input directory without writing anything",
		Long: `Check an input directory without writing anything.

validate parses emojis.toml, loads every image and checks that the images of
each category share one size. It reports the grid each category would get.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runValidate(cmd, flags, args[0])
		},
	}
}

func (a *App) runValidate(cmd *cobra.Command, flags *globalFlags, inputDir string) error {
	loaded, err := a.loadConfig(cmd, flags, inputDir)
	if err != nil {
		return err
	}
	cfg := loaded.Config

	report, err := a.newBuilder(cfg).Check(cmd.Context(), inputDir)
	if err != nil {
		issueID, msg := classifyError(err, cfg.UI.Verbose)
		return newServiceError(err, issueID, msg)
	}

	for _, c := range report.Categories {
		fmt.Fprintf(a.stdout, "%s %s: %s, %dx%d grid of %dx%d tiles (atlas %dx%d)\n",
			SuccessStyle.Render("✓"),
			CmdStyle.Render(c.Name.String()),
			plural(c.Emojis, "emoji", "emojis"),
			c.Rows, c.Cols, c.Tile.X, c.Tile.Y, c.Atlas.X, c.Atlas.Y)
	}
	fmt.Fprintf(a.stdout, "\n%s %s is valid\n", SuccessStyle.Render("✓"), inputDir)
	return nil
}
