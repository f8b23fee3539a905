package cli

import (
	"fmt"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var options path.SearchOptions

	cmd := &cobra.Command{
		Use:   "search DIR GLOB",
		Short: "List the files below DIR whose relative path matches GLOB",
		Example: `  pathkit search . '**/*.go'
  pathkit search --host web /var/www 'assets/*.css'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := a.fs(cmd.Context())
			if err != nil {
				return err
			}

			files, err := path.NewDirectoryOn(fs, args[0]).Search(args[1], options)
			if err != nil {
				return err
			}
			for _, file := range files {
				fmt.Fprintln(cmd.OutOrStdout(), file.FullPath())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&options.CaseSensitive, "case-sensitive", false, "Match letter case exactly")
	return cmd
}
