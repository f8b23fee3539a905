package cli

import (
	"fmt"
	"sort"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
	"github.com/spf13/cobra"
)

func newLsCmd(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "ls DIR",
		Short: "List a directory, directories marked with a trailing separator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := a.fs(cmd.Context())
			if err != nil {
				return err
			}

			dir := path.NewDirectoryOn(fs, args[0])
			if dir.DoesNotExist() {
				return fmt.Errorf("%s is not a directory", args[0])
			}

			var entries []string
			if recursive {
				entries, err = listTree(dir)
			} else {
				entries, err = listChildren(dir)
			}
			if err != nil {
				return err
			}

			for _, entry := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entry)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "List the whole tree")
	return cmd
}

func listChildren(dir *path.Directory) ([]string, error) {
	subDirs, err := dir.SubDirectories()
	if err != nil {
		return nil, err
	}
	files, err := dir.Files()
	if err != nil {
		return nil, err
	}

	fs := dir.Provider()
	root := dir.FullPath()
	entries := make([]string, 0, len(subDirs)+len(files))
	for _, d := range subDirs {
		entries = append(entries, d.Name()+fs.Separator())
	}
	for _, f := range files {
		if parent, ok := fs.Parent(f.FullPath()); ok && parent == root {
			entries = append(entries, f.Name())
		}
	}
	sort.Strings(entries)
	return entries, nil
}

func listTree(dir *path.Directory) ([]string, error) {
	dirs, err := dir.Directories()
	if err != nil {
		return nil, err
	}
	files, err := dir.Files()
	if err != nil {
		return nil, err
	}

	sep := dir.Provider().Separator()
	entries := make([]string, 0, len(dirs)+len(files))
	for _, d := range dirs {
		if rel, ok := dir.Relative(d); ok {
			entries = append(entries, rel+sep)
		}
	}
	for _, f := range files {
		if rel, ok := dir.Relative(f); ok {
			entries = append(entries, rel)
		}
	}
	sort.Strings(entries)
	return entries, nil
}
