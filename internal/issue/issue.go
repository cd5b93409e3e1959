// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

// Id identifies an entry of the issue catalog.
type Id int

const (
	ManifestInvalidId Id = iota + 1
	ImageLoadFailedId
	DimensionMismatchId
	OutputWriteFailedId
	SettingsLoadFailedId
	UsageId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

// Issue is a catalog entry: a markdown page explaining a class of failures
// and how to fix them.
type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // project documentation about the issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the markdown page with glamour using the given style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	manifestInvalidIssue = &Issue{
		id: ManifestInvalidId,
		mdMsg: `
# The emoji manifest is invalid

emojipack reads every category from ` + "`emojis.toml`" + ` in the input directory.
The file must be valid TOML and match the manifest schema.

## Expected shape
~~~toml
[smileys.emojis]
grin = ["grin", "grinning"]                       # list of names
wink = { names = ["wink"], shortcuts = [";)"] }   # explicit entry
blush = { names = ["blush"], blacklisted = true }
party = { names = ["party"], frames = { count = 4, time = 2 } }
~~~

## Things you can try
- Every category needs at least one emoji under ` + "`[<category>.emojis]`" + `.
- ` + "`names`" + ` must hold at least one string; ` + "`frames.count`" + ` and ` + "`frames.time`" + ` must be positive.
- Category names and emoji keys become file names: avoid ` + "`/`" + ` and ` + "`\\`" + `.
- Check the whole input without writing anything:
~~~
$ emojipack validate <input>
~~~`,
	}

	imageLoadFailedIssue = &Issue{
		id: ImageLoadFailedId,
		mdMsg: `
# An emoji image could not be loaded

Every emoji key needs a PNG file named after it:

~~~
<input>/emojis/<category>/<key>.png
~~~

## Things you can try
- Check the spelling of the key in ` + "`emojis.toml`" + ` against the file name (keys are case sensitive).
- Make sure the file is a real PNG, not a renamed JPEG or WebP.
- Check that the file is readable by the current user.`,
	}

	dimensionMismatchIssue = &Issue{
		id: DimensionMismatchId,
		mdMsg: `
# Emojis of a category have different sizes

All emojis of a category share one atlas grid, so every image must have the
width and height of the first emoji declared in the category.

## Things you can try
- Resize the offending image to the size named in the error.
- Move differently sized emojis into their own category.`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# The resource pack could not be written

emojipack writes three files per category:

~~~
<output>/textures/font/emojis/<category>.png
<output>/font/<category>.json
<output>/emojis/<category>.json
~~~

## Things you can try
- Check that the output directory is writable and that no regular file is in the way.
- Categories packed before the failure were written; run again once the problem is fixed.`,
	}

	settingsLoadFailedIssue = &Issue{
		id: SettingsLoadFailedId,
		mdMsg: `
# Failed to load configuration

Settings come from, in increasing precedence: defaults, the user config file,
` + "`emojipack.cue`" + ` in the input directory (or ` + "`--config`" + `), ` + "`EMOJIPACK_*`" + `
environment variables, and flags.

## Example emojipack.cue
~~~cue
namespace: "figura"
max_parallel_loads: 0
png: compression: "default" // default | none | speed | best
ui: {
	verbose: false
	summary: false
}
~~~

## Things you can try
- Show the effective settings:
~~~
$ emojipack config show
~~~`,
	}

	usageIssue = &Issue{
		id: UsageId,
		mdMsg: `
# Missing arguments

~~~
$ emojipack <input> <output>
~~~

- ` + "`<input>`" + ` holds ` + "`emojis.toml`" + ` and the ` + "`emojis/`" + ` image directory.
- ` + "`<output>`" + ` receives the resource pack; it is created if missing.`,
	}

	issues = map[Id]*Issue{
		manifestInvalidIssue.Id():    manifestInvalidIssue,
		imageLoadFailedIssue.Id():    imageLoadFailedIssue,
		dimensionMismatchIssue.Id():  dimensionMismatchIssue,
		outputWriteFailedIssue.Id():  outputWriteFailedIssue,
		settingsLoadFailedIssue.Id(): settingsLoadFailedIssue,
		usageIssue.Id():              usageIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
