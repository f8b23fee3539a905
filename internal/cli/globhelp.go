package cli

import (
	"fmt"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/console"
	"github.com/spf13/cobra"
)

const globHelp = `# Glob patterns

Patterns are matched against the path of each file **relative to the
searched directory**, with ` + "`/`" + ` as separator on every platform.

| Pattern | Matches |
|---|---|
| ` + "`*`" + ` | any run of characters inside one directory level |
| ` + "`**`" + ` | any run of characters, crossing directories |
| ` + "`**/`" + ` | zero or more leading directories |

The whole relative path must match. Matching ignores letter case unless
` + "`--case-sensitive`" + ` is given. A backslash is read as a separator.

## Examples

- ` + "`*.txt`" + ` matches ` + "`notes.txt`" + ` but not ` + "`docs/notes.txt`" + `
- ` + "`**/*.txt`" + ` matches both
- ` + "`src/**/test_*.go`" + ` matches ` + "`src/a/b/test_io.go`" + `

Other characters such as ` + "`[abc]`" + ` or ` + "`(a|b)`" + ` are passed to the
regular expression engine as written.
`

func newGlobHelpCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "glob-help",
		Short: "Explain the glob syntax used by search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := console.RenderMarkdown(globHelp, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap the text at this many columns")
	return cmd
}
