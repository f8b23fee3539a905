package cli

import (
	"fmt"

	theme "github.com/ImGajeed76/pathkit/internal"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/console"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/spf13/cobra"
)

// confirm is swapped in tests.
var confirm = console.Confirm

// movable is satisfied by both *path.File and *path.Directory.
type movable interface {
	FullPath() string
	Destination(parts ...string) (string, error)
	Move(parts ...string) error
}

func newMoveCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "move SRC DEST...",
		Short: "Move a file or a whole directory tree",
		Long: `Move SRC with the same destination rule as copy, in a single rename on the
filesystem. Moves across devices fail instead of falling back to copying.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := a.fs(cmd.Context())
			if err != nil {
				return err
			}

			var source movable
			if file := path.NewFileOn(fs, args[0]); file.Exists() {
				source = file
			} else if dir := path.NewDirectoryOn(fs, args[0]); dir.Exists() {
				source = dir
			} else {
				return &pathmodels.PathError{Op: "move", Path: args[0], Err: pathmodels.ErrNotExist}
			}

			from := source.FullPath()
			target, err := source.Destination(args[1:]...)
			if err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(console.ConfirmOptions{
					Prompt:  "Move?",
					Detail:  from + " -> " + target,
					YesText: "Move",
					NoText:  "Cancel",
				})
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), theme.MutedStyle.Render("nothing moved"))
					return nil
				}
			}

			if err := source.Move(args[1:]...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("moved "+from+" -> "+source.FullPath()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
