// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emojipack/emojipack/internal/build"
	"github.com/emojipack/emojipack/internal/config"
	"github.com/emojipack/emojipack/internal/imageload"
	"github.com/emojipack/emojipack/internal/issue"
	"github.com/emojipack/emojipack/pkg/atlas"
	"github.com/emojipack/emojipack/pkg/manifest"
)

// classifyError maps a failed run to an issue catalog ID and returns a styled
// message for CLI rendering. It preserves actionable error details.
func classifyError(err error, verbose bool) (issueID issue.Id, styledMsg string) {
	switch {
	case errors.Is(err, imageload.ErrDimensionMismatch), errors.Is(err, imageload.ErrMissingDimensions):
		issueID = issue.DimensionMismatchId
	case errors.Is(err, imageload.ErrLoadImage):
		issueID = issue.ImageLoadFailedId
	case errors.Is(err, manifest.ErrInvalidManifest), errors.Is(err, atlas.ErrTooManyTiles):
		issueID = issue.ManifestInvalidId
	case errors.Is(err, config.ErrInvalidConfig):
		issueID = issue.SettingsLoadFailedId
	default:
		var ae *issue.ActionableError
		if errors.As(err, &ae) {
			issueID = issueForOperation(ae.Operation)
		}
	}

	return issueID, fmt.Sprintf("\n%s %s\n\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

// issueForOperation classifies by the operation of the outermost actionable
// error. Operations naming a category carry it as a suffix.
func issueForOperation(op string) issue.Id {
	switch {
	case op == build.OpLoadManifest:
		return issue.ManifestInvalidId
	case strings.HasPrefix(op, build.OpLoadImages):
		return issue.ImageLoadFailedId
	case op == build.OpWriteOutput:
		return issue.OutputWriteFailedId
	case op == config.OpLoadConfig, op == config.OpValidateConfig:
		return issue.SettingsLoadFailedId
	default:
		return 0
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// list their suggestions, and in verbose mode the full error chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
