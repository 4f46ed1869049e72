// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

const (
	ConfigLoadFailedId Id = iota + 1
	RemoveFailedId
	PermissionDeniedId
	NotDirectoryId
	UnknownModuleId
	InvalidModuleNameId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	// Issue is a Markdown troubleshooting guide for one failure class.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render returns the guide rendered for the terminal with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "\n- " + string(link)
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The sdkwipe configuration file could not be read or does not match the schema.

## Things you can try:
- Print the effective configuration and its location:
~~~
$ sdkwipe config show
$ sdkwipe config path
~~~
- Regenerate a default file and re-apply your changes:
~~~
$ sdkwipe config init --force
~~~

## Example configuration:
~~~cue
wipe: {
  continue_on_error: false
  extra_modules: ["aws-cpp-sdk-custom"]
}
ui: verbose: false
~~~`,
	}

	removeFailedIssue = &Issue{
		id: RemoveFailedId,
		mdMsg: `
# Failed to wipe generated code!

A generated SDK module directory exists but could not be deleted.
Regenerating on top of it would mix stale and fresh sources.

## Things you can try:
- Close editors, IDE indexers or build processes holding files open
- Re-run the wipe; already removed directories are skipped:
~~~
$ sdkwipe wipe
~~~
- Keep going past failures to see every directory that is stuck:
~~~
$ sdkwipe wipe --continue-on-error
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

The current user cannot delete one of the generated module directories.

## Things you can try:
- Check ownership of the directory tree:
~~~
$ ls -ld aws-cpp-sdk-*
~~~
- Fix ownership or permissions left behind by a container or root build
- Run the wipe as the user that runs code generation`,
	}

	notDirectoryIssue = &Issue{
		id: NotDirectoryId,
		mdMsg: `
# Expected a directory!

A path named after a generated SDK module exists, but it is a regular file,
a symbolic link or something else that is not a directory. It was left in place.

## Things you can try:
- Inspect the file or link and move it out of the way if it is not needed
- Make sure nothing else writes into the generator output root`,
	}

	unknownModuleIssue = &Issue{
		id: UnknownModuleId,
		mdMsg: `
# Module not in catalog!

Only directories listed in the SDK catalog can be wiped.

## Things you can try:
- List the catalog:
~~~
$ sdkwipe catalog
~~~
- Add the directory to ` + "`wipe.extra_modules`" + ` in your configuration`,
	}

	invalidModuleNameIssue = &Issue{
		id: InvalidModuleNameId,
		mdMsg: `
# Invalid module name!

Module names are single directory names such as ` + "`aws-cpp-sdk-s3`" + `.
They cannot be empty, contain path separators, or be ` + "`.`" + ` / ` + "`..`" + `.

## Things you can try:
- Fix the entry in ` + "`wipe.extra_modules`" + ` or on the command line`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		removeFailedIssue.Id():      removeFailedIssue,
		permissionDeniedIssue.Id():  permissionDeniedIssue,
		notDirectoryIssue.Id():      notDirectoryIssue,
		unknownModuleIssue.Id():     unknownModuleIssue,
		invalidModuleNameIssue.Id(): invalidModuleNameIssue,
	}
)

// Values returns every known issue ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}
