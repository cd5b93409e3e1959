// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/emojipack/emojipack/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the `emojipack config` command tree.
func newConfigCommand(app *App, flags *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize emojipack settings",
		Long: `Inspect and initialize emojipack settings.

Settings are merged from, in increasing precedence:
  - built-in defaults
  - the user config file (` + "`emojipack config path`" + ` shows where)
  - <input>/emojipack.cue, or the file given with --config
  - EMOJIPACK_* environment variables (EMOJIPACK_PNG_COMPRESSION=best)
  - command-line flags`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show [input]",
		Short: "Print the effective settings as TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var inputDir string
			if len(args) == 1 {
				inputDir = args[0]
			}
			return app.showConfig(cmd, flags, inputDir)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init <input>",
		Short: "Write emojipack.cue with default settings into an input directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig(args[0])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the user config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.UserConfigPath("")
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

// showConfig prints the merged settings as TOML, preceded by comments
// naming the files they came from.
func (a *App) showConfig(cmd *cobra.Command, flags *globalFlags, inputDir string) error {
	loaded, err := a.loadConfig(cmd, flags, inputDir)
	if err != nil {
		return err
	}

	out, err := toml.Marshal(loaded.Config)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if len(loaded.Sources) == 0 {
		fmt.Fprintln(a.stdout, "# no config files found, using defaults")
	}
	for _, source := range loaded.Sources {
		fmt.Fprintf(a.stdout, "# from %s\n", source)
	}
	fmt.Fprint(a.stdout, string(out))
	return nil
}

func (a *App) initConfig(inputDir string) error {
	path, created, err := config.WriteDefault(inputDir)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(a.stdout, "%s already exists, leaving it untouched\n", CmdStyle.Render(path))
		return nil
	}
	fmt.Fprintf(a.stdout, "%s Created default settings at %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(path))
	return nil
}
