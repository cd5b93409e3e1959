// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/emojipack/emojipack/internal/build"
	"github.com/emojipack/emojipack/internal/config"
	"github.com/emojipack/emojipack/internal/imageload"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// App wires CLI services and shared dependencies. Cobra handlers receive
	// an App and reach settings through its Config provider.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	// globalFlags holds the persistent flags shared by every command.
	globalFlags struct {
		configPath string
		namespace  string
		verbose    bool
	}
)

// NewApp creates an App, filling nil dependencies with defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	return &App{Config: deps.Config, stdout: deps.Stdout, stderr: deps.Stderr}
}

// Main runs the CLI with the process arguments and returns the exit code.
func Main() int {
	return Execute(context.Background(), NewApp(Dependencies{}), os.Args[1:])
}

// Execute runs the command tree of app with args and returns the exit code.
func Execute(ctx context.Context, app *App, args []string) int {
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	// fang overrides root.Version, so the version goes through WithVersion.
	err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	return exitCodeOf(err).Int()
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// handleError renders service errors with their issue page. Bare exit
// errors were already reported by the command; everything else (cobra flag
// and argument errors) goes to fang's default handler.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(w, svcErr, issueStyle(a.stderr))
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// loadConfig loads settings for inputDir and applies the flags the user set
// explicitly on cmd.
func (a *App) loadConfig(cmd *cobra.Command, flags *globalFlags, inputDir string) (*config.Loaded, error) {
	overrides := map[string]any{}
	if cmd.Flags().Changed("namespace") {
		overrides["namespace"] = flags.namespace
	}
	if cmd.Flags().Changed("verbose") {
		overrides["ui.verbose"] = flags.verbose
	}
	if f := cmd.Flags().Lookup("summary"); f != nil && f.Changed {
		overrides["ui.summary"] = f.Value.String() == "true"
	}

	loaded, err := a.Config.LoadWithSources(cmd.Context(), config.LoadOptions{
		ConfigFilePath: flags.configPath,
		InputDir:       inputDir,
		Overrides:      overrides,
	})
	if err != nil {
		issueID, msg := classifyError(err, flags.verbose)
		return nil, newServiceError(err, issueID, msg)
	}
	return loaded, nil
}

// newBuilder configures a pipeline run from settings.
func (a *App) newBuilder(cfg *config.Config) *build.Builder {
	return &build.Builder{
		Namespace:   cfg.Namespace.String(),
		Compression: cfg.PNG.Compression.Level(),
		Loader:      &imageload.Loader{MaxParallel: cfg.MaxParallelLoads},
		Logger:      newLogger(a.stderr, cfg.UI.Verbose),
	}
}

// newLogger returns the progress logger: Info by default, Debug when verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: config.AppName})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// plural formats a count with a singular or plural noun.
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
