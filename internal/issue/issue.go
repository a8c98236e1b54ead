// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidModalityNameId Id = iota + 1
	InvalidModalityBitsId
	ModalityDocumentInvalidId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation pages for this issue
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

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	invalidModalityNameIssue = &Issue{
		id: InvalidModalityNameId,
		mdMsg: `
# Invalid modality name!

One of the names you passed is not a known modality. Names are matched
exactly and are case-sensitive.

## Valid names (in declaration order):
- **audio**
- **image**
- **text**
- **video**
- **other**

## Things you can try:
- Check for typos or capital letters (` + "`Audio`" + ` is not ` + "`audio`" + `)
- Pass several names to ` + "`names`" + ` or ` + "`show`" + ` as separate arguments:
~~~
$ modality show audio text
~~~

- Set arguments of ` + "`union`" + `, ` + "`intersect`" + ` and ` + "`contains`" + ` join names with ` + "`|`" + ` or ` + "`,`" + `:
~~~
$ modality union "audio | text" video
$ modality contains audio,text text
~~~

- Use ` + "`none`" + ` on its own for the empty set:
~~~
$ modality union none video
~~~`,
	}

	invalidModalityBitsIssue = &Issue{
		id: InvalidModalityBitsId,
		mdMsg: `
# Invalid modality bits!

The number you passed has bits set that do not belong to any modality.
Only the lowest five bits are defined, so valid values are 0 through 31.

## Bit assignments:
| bit | value | name  |
|-----|-------|-------|
| 0   | 1     | audio |
| 1   | 2     | image |
| 2   | 4     | text  |
| 3   | 8     | video |
| 4   | 16    | other |

## Things you can try:
- List the defined modalities and their values:
~~~
$ modality list
~~~`,
	}

	modalityDocumentInvalidIssue = &Issue{
		id: ModalityDocumentInvalidId,
		mdMsg: `
# Failed to parse modality document!

The CUE file you passed does not match the expected shape.

## Expected shape:
~~~cue
modalities: ["audio", "text"]
~~~

## Common issues:
- Unknown or misspelled modality names
- A single string instead of a list
- Extra fields next to ` + "`modalities`" + `

## Things you can try:
- Check the CUE path in the error message above
- Run with verbose mode for the full error chain:
~~~
$ modality --verbose show --file inputs.cue
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Configuration locations (in order of precedence):
1. The file passed with ` + "`--config`" + `
2. ~/.config/modality/config.cue (Linux), ~/Library/Application Support/modality/config.cue (macOS), %APPDATA%\modality\config.cue (Windows)
3. ./config.cue

## Example configuration:
~~~cue
default_modalities: ["text"]
output: {
	format: "text" // or "json", "toml"
}
ui: {
	color_scheme: "auto"
	verbose: false
}
~~~

## Things you can try:
- Show where the configuration is read from:
~~~
$ modality config path
~~~

- Write a fresh default configuration:
~~~
$ modality config init
~~~`,
	}

	issues = map[Id]*Issue{
		invalidModalityNameIssue.Id():     invalidModalityNameIssue,
		invalidModalityBitsIssue.Id():     invalidModalityBitsIssue,
		modalityDocumentInvalidIssue.Id(): modalityDocumentInvalidIssue,
		configLoadFailedIssue.Id():        configLoadFailedIssue,
	}
)

// Values returns every registered issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
