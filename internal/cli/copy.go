package cli

import (
	"errors"
	"fmt"
	"io"

	theme "github.com/ImGajeed76/pathkit/internal"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/console"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/spf13/cobra"
)

func newCopyCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "copy SRC DEST...",
		Short: "Copy a file or a whole directory tree",
		Long: `Copy SRC to the path formed by joining the DEST parts. When that path is an
existing directory the copy is placed inside it under SRC's name,
otherwise it becomes the copy itself. Directory trees keep their
structure, empty directories included.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := a.fs(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if file := path.NewFileOn(fs, args[0]); file.Exists() {
				copied, err := file.Copy(args[1:]...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, theme.SuccessStyle.Render("copied "+file.FullPath()+" -> "+copied.FullPath()))
				return nil
			}

			dir := path.NewDirectoryOn(fs, args[0])
			if dir.DoesNotExist() {
				return &pathmodels.PathError{Op: "copy", Path: args[0], Err: pathmodels.ErrNotExist}
			}
			target, err := dir.Destination(args[1:]...)
			if err != nil {
				return err
			}

			if err := copyTree(dir, target, quiet, out); err != nil {
				return err
			}
			fmt.Fprintln(out, theme.SuccessStyle.Render("copied "+dir.FullPath()+" -> "+target))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not show a progress bar")
	return cmd
}

func copyTree(dir *path.Directory, target string, quiet bool, out io.Writer) error {
	if quiet {
		return dir.CopyToExactPath(target)
	}

	bar := console.NewProgress("Copying "+dir.Name(), console.ProgressOptions{
		Width:   40,
		Padding: 2,
		Output:  out,
	})
	err := dir.CopyToExactPath(target, path.ReplicateOptions{
		Progress: func(done, total int, file *path.File) {
			bar.Update(done, total, file.Name())
		},
	})
	if err != nil {
		return errors.Join(err, bar.Close())
	}
	return bar.Finish()
}
